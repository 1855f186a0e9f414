package transport

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCategoryRequest is a partial patch: an empty or absent field keeps
// the stored value, only a non-empty value overwrites.
type UpdateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateProductRequest struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	Price      string `json:"price"`
	CategoryID string `json:"categoryId"`
}

// UpdateProductRequest follows the same merge rule as the category patch.
type UpdateProductRequest struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Price string `json:"price"`
}

type BulkUploadRequest struct {
	Products []CreateProductRequest `json:"products"`
}
