package models

import "time"

// Student defines a registered student based on the 'students' table.
// PasswordHash is a bcrypt hash and never leaves the backend.
type Student struct {
	ID           int64     `json:"id" example:"1"`
	Name         string    `json:"name" example:"Asha"`
	Department   string    `json:"department,omitempty" example:"CSE"`
	Year         string    `json:"year,omitempty" example:"3"`
	RollNo       string    `json:"rollno,omitempty" example:"21CS042"`
	Email        string    `json:"email" example:"asha@college.edu"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
