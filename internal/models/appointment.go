package models

import "time"

type Appointment struct {
	Document

	Name   string    `gorm:"size:60;not null" json:"name" binding:"required,max=60"`
	Email  string    `gorm:"size:255" json:"email,omitempty" binding:"omitempty,email"`
	Date   time.Time `gorm:"not null;index" json:"date" binding:"required"`
	Status string    `gorm:"size:20;default:'pending'" json:"status" binding:"required,oneof=pending approved rejected"`
	Notes  string    `gorm:"type:text" json:"notes,omitempty"`
}
