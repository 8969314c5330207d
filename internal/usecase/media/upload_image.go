package media

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
	"github.com/BruksfildServices01/venue-site/internal/imaging"
	"github.com/BruksfildServices01/venue-site/internal/storage"
)

// UploadImage normalizes an uploaded picture to webp and stores it,
// returning the public URL to put on a game.
type UploadImage struct {
	store    storage.ObjectStore
	maxWidth int
}

func NewUploadImage(store storage.ObjectStore, maxWidth int) *UploadImage {
	return &UploadImage{store: store, maxWidth: maxWidth}
}

func (uc *UploadImage) Execute(ctx context.Context, folder string, r io.Reader) (string, error) {
	body, err := imaging.ToWebP(r, uc.maxWidth)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			return "", httperr.Invalid("file", "File must be a gif, jpeg, png or webp image")
		}
		return "", err
	}

	key := folder + "/" + uuid.NewString() + ".webp"
	return uc.store.Put(ctx, key, imaging.ContentType, body)
}
