package dto

// UpdateAccountReq represents the request body for PUT /account.
// ImageFile is optional; an empty value keeps the current picture.
type UpdateAccountReq struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	ImageFile string `json:"image_file" binding:"omitempty,max=255"`
}

// ChangePasswordReq represents the request body for PUT /account/password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}
