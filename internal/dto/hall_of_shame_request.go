package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/models"
)

// The request shapes mirror the stored sub-documents but carry no binding
// rules, so malformed content reaches the use case and is reported per field.

type GameSnapshotDTO struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type PlayerDTO struct {
	Name string     `json:"name"`
	User *uuid.UUID `json:"user"`
}

type ResultDTO struct {
	Type        string `json:"type"`
	ScoreWinner *int   `json:"scoreWinner"`
	ScoreLoser  *int   `json:"scoreLoser"`
	Description string `json:"description"`
}

type PaidDTO struct {
	IsPaid bool    `json:"isPaid"`
	Amount float64 `json:"amount"`
}

type HallOfShameRequest struct {
	Game   *GameSnapshotDTO `json:"game"`
	Winner *PlayerDTO       `json:"winner"`
	Loser  *PlayerDTO       `json:"loser"`
	Result *ResultDTO       `json:"result"`
	Roast  *string          `json:"roast"`
	Paid   *PaidDTO         `json:"paid"`
	Date   *time.Time       `json:"date"`
}

func (d *GameSnapshotDTO) Model() *models.GameSnapshot {
	if d == nil {
		return nil
	}
	return &models.GameSnapshot{Key: d.Key, Name: d.Name}
}

func (d *PlayerDTO) Model() *models.Player {
	if d == nil {
		return nil
	}
	return &models.Player{Name: d.Name, User: d.User}
}

func (d *ResultDTO) Model() *models.Result {
	if d == nil {
		return nil
	}
	return &models.Result{
		Type:        d.Type,
		ScoreWinner: d.ScoreWinner,
		ScoreLoser:  d.ScoreLoser,
		Description: d.Description,
	}
}

func (d *PaidDTO) Model() *models.Paid {
	if d == nil {
		return nil
	}
	return &models.Paid{IsPaid: d.IsPaid, Amount: d.Amount}
}
