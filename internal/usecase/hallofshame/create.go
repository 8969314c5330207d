package hallofshame

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/venue-site/internal/domain/hallofshame"
	"github.com/BruksfildServices01/venue-site/internal/models"
	"github.com/BruksfildServices01/venue-site/internal/validators"
)

type CreateEntryInput struct {
	Game   models.GameSnapshot
	Winner models.Player
	Loser  models.Player
	Result models.Result
	Roast  string
	Paid   *models.Paid
	Date   *time.Time

	CreatedBy *uuid.UUID
}

type CreateEntry struct {
	repo domain.Repository
	now  func() time.Time
}

func NewCreateEntry(repo domain.Repository) *CreateEntry {
	return &CreateEntry{repo: repo, now: time.Now}
}

func (uc *CreateEntry) Execute(ctx context.Context, in CreateEntryInput) (*models.HallOfShameEntry, error) {
	e := &models.HallOfShameEntry{
		Game:      in.Game,
		Winner:    in.Winner,
		Loser:     in.Loser,
		Result:    in.Result,
		Roast:     strings.TrimSpace(in.Roast),
		CreatedBy: in.CreatedBy,
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

	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func validate(e *models.HallOfShameEntry) error {
	if err := validators.Struct(e); err != nil {
		return err
	}
	return domain.ValidateResult(e.Result)
}
