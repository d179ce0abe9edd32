package request_models

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email     string `form:"email" json:"email" binding:"required"`
	Password  string `form:"password" json:"password" binding:"required,min=8"`
	FirstName string `form:"firstName" json:"firstName" binding:"required"`
	LastName  string `form:"lastName" json:"lastName" binding:"required"`
	Phone     string `form:"phone" json:"phone"`
}

type RequestForgotPassword struct {
	Email string `form:"email" json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	Token       string `form:"token" json:"token" binding:"required"`
	NewPassword string `form:"newPassword" json:"newPassword" binding:"required,min=8"`
}
