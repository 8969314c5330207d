package hallofshame

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/hallofshame"
	"github.com/BruksfildServices01/venue-site/internal/models"
)

// UpdateEntryInput replaces whole sub-documents; nil fields are kept.
type UpdateEntryInput struct {
	Game   *models.GameSnapshot
	Winner *models.Player
	Loser  *models.Player
	Result *models.Result
	Roast  *string
	Paid   *models.Paid
	Date   *time.Time
}

type UpdateEntry struct {
	repo domain.Repository
	now  func() time.Time
}

func NewUpdateEntry(repo domain.Repository) *UpdateEntry {
	return &UpdateEntry{repo: repo, now: time.Now}
}

func (uc *UpdateEntry) Execute(
	ctx context.Context,
	id uuid.UUID,
	in UpdateEntryInput,
) (*models.HallOfShameEntry, error) {

	e, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Game != nil {
		e.Game = *in.Game
	}
	if in.Winner != nil {
		e.Winner = *in.Winner
	}
	if in.Loser != nil {
		e.Loser = *in.Loser
	}
	if in.Result != nil {
		e.Result = *in.Result
	}
	if in.Roast != nil {
		e.Roast = strings.TrimSpace(*in.Roast)
	}
	if in.Paid != nil {
		e.Paid = *in.Paid
	}
	if in.Date != nil {
		e.Date = *in.Date
	}

	domain.Normalize(e, uc.now())

	if err := validate(e); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
