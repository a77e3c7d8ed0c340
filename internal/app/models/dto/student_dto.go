package dto

import "time"

// RegisterStudentRequest carries a student registration
type RegisterStudentRequest struct {
	Name       string `json:"name" binding:"required" example:"Asha"`
	Department string `json:"department" example:"CSE"`
	Year       string `json:"year" example:"3"`
	RollNo     string `json:"rollno" example:"21CS042"`
	Email      string `json:"email" binding:"required,email" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required,min=6"`
}

// RegisterStudentResponse confirms a successful registration
type RegisterStudentResponse struct {
	Message   string `json:"message" example:"Student registered successfully"`
	StudentID int64  `json:"studentId" example:"7"`
}

// StudentLoginRequest carries student credentials
type StudentLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginRequest carries the shop operator's credentials
type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the capability token the caller presents on
// subsequent requests
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn" example:"86400"`
	StudentID int64  `json:"studentId,omitempty" example:"7"`
	Name      string `json:"name,omitempty" example:"Asha"`
}

// StudentProfileResponse is the public projection of a student record;
// it never includes credential material
type StudentProfileResponse struct {
	ID         int64     `json:"id" example:"7"`
	Name       string    `json:"name" example:"Asha"`
	Department string    `json:"department,omitempty" example:"CSE"`
	Year       string    `json:"year,omitempty" example:"3"`
	RollNo     string    `json:"rollno,omitempty" example:"21CS042"`
	Email      string    `json:"email" example:"asha@college.edu"`
	CreatedAt  time.Time `json:"createdAt"`
}
