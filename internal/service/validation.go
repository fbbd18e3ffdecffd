package service

import "strings"

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// normalizeSize fills in the default and clamps to the maximum.
// Negative sizes pass through so the paginator can reject them.
func normalizeSize(size, defaultSize, maxSize int) int {
	if size == 0 {
		return defaultSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}

func validateName(name string) []FieldError {
	s := strings.TrimSpace(name)
	if s == "" {
		return []FieldError{{Field: "name", Message: "must not be empty"}}
	}
	if ln := len([]rune(s)); ln > 100 {
		return []FieldError{{Field: "name", Message: "length must be at most 100"}}
	}
	return nil
}
