package category

type CategoryResponse struct {
	ID            uint64  `json:"id"`
	Slug          string  `json:"slug"`
	CategoryName  string  `json:"category_name"`
	Description   *string `json:"description,omitempty"`
	ThumbnailPath *string `json:"thumbnail_path,omitempty"`
	DisplayOrder  *int    `json:"display_order,omitempty"`
}
