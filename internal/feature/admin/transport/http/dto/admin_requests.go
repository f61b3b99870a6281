// Package dto defines data transfer objects for the admin feature's HTTP transport layer.
package dto

// AdminCreateUserReq represents the request body for POST /admin/users.
type AdminCreateUserReq struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminUpdateUserReq represents the request body for PUT /admin/users/:id.
// All fields are optional; empty fields keep their current value. A non-empty
// password is re-hashed before storage. The digest itself is not editable.
type AdminUpdateUserReq struct {
	Username  string `json:"username" binding:"omitempty,min=3,max=50"`
	Email     string `json:"email" binding:"omitempty,email"`
	ImageFile string `json:"image_file" binding:"omitempty,max=255"`
	Password  string `json:"password"`
}
