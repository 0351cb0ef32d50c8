package models

// Product is a catalog item. Rating defaults to 0 on create and is
// recomputed by the catalog, never supplied by callers.
type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	Rating      float64 `json:"rating"`
}

// CreateProductRequest carries the caller-supplied fields for a new product.
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `json:"stock,omitempty"`
}

// UpdateProductRequest is a partial update: nil fields are left untouched.
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
}
