package models

type Game struct {
	Document

	Name        string `gorm:"size:100;not null" json:"name" binding:"required"`
	Key         string `gorm:"size:100;uniqueIndex;not null" json:"key" binding:"required,lowercase"`
	Image       string `gorm:"size:500" json:"image,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}
