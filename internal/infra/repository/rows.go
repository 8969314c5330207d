package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-site/internal/httperr"
)

// updateRow writes every column of an existing row. Unlike Save it never
// falls back to an insert, so a row deleted meanwhile stays deleted.
func updateRow(ctx context.Context, db *gorm.DB, row any) error {
	res := db.WithContext(ctx).Model(row).Select("*").Updates(row)
	if res.Error != nil {
		return httperr.FromStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}

// deleteByID reports ErrNotFound when no row matched.
func deleteByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	res := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return httperr.FromStore(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound
	}
	return nil
}
