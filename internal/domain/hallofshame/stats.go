package hallofshame

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/venue-site/internal/dto"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// Stats folds entries into one row per player name. Names are grouped
// case-insensitively and keep the spelling seen first.
func Stats(entries []models.HallOfShameEntry) []dto.PlayerStatsDTO {
	byName := map[string]*dto.PlayerStatsDTO{}
	var order []string

	row := func(name string) *dto.PlayerStatsDTO {
		k := strings.ToLower(name)
		if r, ok := byName[k]; ok {
			return r
		}
		r := &dto.PlayerStatsDTO{Name: name}
		byName[k] = r
		order = append(order, k)
		return r
	}

	for _, e := range entries {
		row(e.Winner.Name).Wins++

		l := row(e.Loser.Name)
		l.Losses++
		if !e.Paid.IsPaid {
			l.UnpaidAmount += e.Paid.Amount
		}
	}

	out := make([]dto.PlayerStatsDTO, 0, len(order))
	for _, k := range order {
		out = append(out, *byName[k])
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Losses != out[j].Losses {
			return out[i].Losses > out[j].Losses
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}
