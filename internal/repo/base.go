package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrStaleVersion is returned by version-checked updates when the row was
// modified since it was loaded. Services translate it into a conflict.
var ErrStaleVersion = errors.New("stale row version")

// Base provides a shared foundation for domain repositories.
type Base struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the GORM connection bound to the supplied context (if any).
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
