package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ResultScore      = "Score"
	ResultKO         = "KO"
	ResultSubmission = "Submission"
	ResultPinfall    = "Pinfall"
	ResultTimeOut    = "TimeOut"
	ResultOther      = "Other"
)

// GameSnapshot is copied from a Game when the entry is recorded and is
// never refreshed afterwards.
type GameSnapshot struct {
	Key  string `gorm:"size:100;not null;index" json:"key" binding:"required,lowercase"`
	Name string `gorm:"size:100;not null" json:"name" binding:"required"`
}

type Player struct {
	Name string     `gorm:"size:100;not null" json:"name" binding:"required"`
	User *uuid.UUID `gorm:"type:uuid" json:"user,omitempty"`
}

type Result struct {
	Type        string `gorm:"size:20;not null;default:'Score'" json:"type" binding:"required,oneof=Score KO Submission Pinfall TimeOut Other"`
	ScoreWinner *int   `json:"scoreWinner,omitempty" binding:"omitempty,min=0"`
	ScoreLoser  *int   `json:"scoreLoser,omitempty" binding:"omitempty,min=0"`
	Description string `gorm:"size:255" json:"description,omitempty"`
}

type Paid struct {
	IsPaid bool    `gorm:"not null;default:false" json:"isPaid"`
	Amount float64 `gorm:"not null;default:0" json:"amount" binding:"min=0"`
}

type HallOfShameEntry struct {
	Document

	Game      GameSnapshot `gorm:"embedded;embeddedPrefix:game_" json:"game"`
	Winner    Player       `gorm:"embedded;embeddedPrefix:winner_" json:"winner"`
	Loser     Player       `gorm:"embedded;embeddedPrefix:loser_" json:"loser"`
	Result    Result       `gorm:"embedded;embeddedPrefix:result_" json:"result"`
	Roast     string       `gorm:"size:280" json:"roast,omitempty" binding:"max=280"`
	Paid      Paid         `gorm:"embedded;embeddedPrefix:paid_" json:"paid"`
	CreatedBy *uuid.UUID   `gorm:"type:uuid" json:"createdBy,omitempty"`
	Date      time.Time    `gorm:"not null;index" json:"date"`
}

func (HallOfShameEntry) TableName() string {
	return "hall_of_shame"
}
