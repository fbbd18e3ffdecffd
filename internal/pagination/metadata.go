package pagination

// Metadata describes where a page sits within the paginated collection.
// NextPage is nil when the returned page is the last one.
type Metadata struct {
	Size            int  `json:"size"`
	CurrentPage     int  `json:"current_page"`
	NextPage        *int `json:"next_page"`
	TotalItemsCount int  `json:"total_items_count"`
}

// EmptyMetadata is returned alongside the empty items of a paginator without pages.
func EmptyMetadata() Metadata { return Metadata{} }

// HasNext reports whether another page follows the current one.
func (m Metadata) HasNext() bool { return m.NextPage != nil }

// PagedResult pairs the items of one page with its metadata.
// Both are owned by the caller; mutating them does not affect the paginator.
type PagedResult[T any] struct {
	Items    T        `json:"items"`
	Metadata Metadata `json:"paging_metadata"`
}
