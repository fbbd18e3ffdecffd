package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pathfound/projectzero/internal/pagination"
	"github.com/pathfound/projectzero/internal/service"
	"github.com/pathfound/projectzero/pkg/response"
)

type GreetingHandler struct {
	svc service.GreetingService
}

func NewGreetingHandler(svc service.GreetingService) *GreetingHandler {
	return &GreetingHandler{svc: svc}
}

// RegisterLegacy mounts the original unversioned greeting route.
func (h *GreetingHandler) RegisterLegacy(r *gin.RouterGroup) {
	r.GET("/greeting", h.greet)
}

func (h *GreetingHandler) Register(r *gin.RouterGroup) {
	r.GET("/greeting", h.greet)
	r.GET("/names", h.listNames)
	r.GET("/salutations", h.listSalutations)
}

func (h *GreetingHandler) greet(c *gin.Context) {
	name, ok := c.GetQuery("name")
	if !ok {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "name", Message: "is required"}}))
		return
	}
	greeting, err := h.svc.Greet(c.Request.Context(), name)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.String(http.StatusOK, greeting)
}

func (h *GreetingHandler) listNames(c *gin.Context) {
	req, err := pageRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListNames(c.Request.Context(), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *GreetingHandler) listSalutations(c *gin.Context) {
	req, err := pageRequest(c)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListSalutations(c.Request.Context(), c.Query("name"), req)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

// pageRequest reads ?page= (one-based) or ?cursor= (zero-based, wins when both are set) and ?size=.
// Page values are passed through raw; the paginator falls back to the first page on garbage.
func pageRequest(c *gin.Context) (service.PageRequest, error) {
	req := service.PageRequest{Strategy: pagination.Default, Number: c.Query(pagination.Default.Alias())}
	if cursor, ok := c.GetQuery(pagination.Cursor.Alias()); ok {
		req = service.PageRequest{Strategy: pagination.Cursor, Number: cursor}
	}

	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return req, service.NewInvalidInputError([]service.FieldError{{Field: "size", Message: "must be a valid integer"}})
		}
		req.Size = size
	}
	return req, nil
}
