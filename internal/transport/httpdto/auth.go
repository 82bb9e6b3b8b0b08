package httpdto

// RegisterRequest is bound from the multipart form posted to /auth/register.
// The optional picture file travels in a separate form field and is handled
// by the upload middleware, not by this binding.
type RegisterRequest struct {
	FirstName  string `form:"firstName" binding:"required"`
	LastName   string `form:"lastName" binding:"required"`
	Email      string `form:"email" binding:"required,email"`
	Password   string `form:"password" binding:"required,min=5"`
	Location   string `form:"location"`
	Occupation string `form:"occupation"`
}

// LoginRequest is used for POST /auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned on successful login
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
