package hallofshame

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// Normalize applies the defaults and trimming rules of an entry. Scores
// only survive on a Score result.
func Normalize(e *models.HallOfShameEntry, now time.Time) {
	e.Game.Key = strings.ToLower(strings.TrimSpace(e.Game.Key))
	e.Game.Name = strings.TrimSpace(e.Game.Name)
	e.Winner.Name = strings.TrimSpace(e.Winner.Name)
	e.Loser.Name = strings.TrimSpace(e.Loser.Name)

	if e.Result.Type == "" {
		e.Result.Type = models.ResultScore
	}
	if e.Result.Type != models.ResultScore {
		e.Result.ScoreWinner = nil
		e.Result.ScoreLoser = nil
	}

	if e.Date.IsZero() {
		e.Date = now
	}
}

// ValidateResult enforces the cross-field rule struct tags cannot express.
func ValidateResult(r models.Result) error {
	if r.Type != models.ResultScore {
		return nil
	}

	ve := &httperr.ValidationError{}
	if r.ScoreWinner == nil {
		ve.Add("result.scoreWinner", "Winner score is required for a Score result")
	}
	if r.ScoreLoser == nil {
		ve.Add("result.scoreLoser", "Loser score is required for a Score result")
	}
	return ve.Err()
}
