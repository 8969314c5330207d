package models

type User struct {
	Document

	Username     string `gorm:"size:20;uniqueIndex;not null" json:"username" binding:"required,max=20"`
	PasswordHash string `gorm:"column:password;size:255;not null" json:"-" binding:"required"`
}
