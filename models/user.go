package models

// ClinicUser is a staff account for the admin dashboard.
type ClinicUser struct {
	UserID     string `json:"UserId"`
	Name       string `json:"Name"`
	Email      string `json:"Email"`
	Password   string `json:"Password,omitempty"`
	IsVerified bool   `json:"IsVerified"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdateRequest struct {
	Name string `json:"name"`
}
