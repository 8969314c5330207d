package dto

type PlayerStatsDTO struct {
	Name         string  `json:"name"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	UnpaidAmount float64 `json:"unpaidAmount"`
}
