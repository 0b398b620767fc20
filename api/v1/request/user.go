package request

type RegisterRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required,phone"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest binds the multipart form fields of a profile update.
// The avatar file itself is read from the form separately.
type UpdateUserRequest struct {
	Name           string `form:"name"`
	PhoneNumber    string `form:"phoneNumber"`
	Role           string `form:"role"`
	Specialisation string `form:"specialisation"`
	BirthYear      string `form:"birthYear"` // RFC 3339 date, e.g. 1990-04-01
}
