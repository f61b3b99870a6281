package dto

// LoginReq represents the request body for the /login endpoint. Missing or
// malformed fields fail binding validation, which is distinct from a
// credential failure.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
