package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors for the distinct failure conditions the storage layer can
// report. Anything else that comes back from the database is a storage error
// and is passed through wrapped, never retried here.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("conflict with existing record")
)

// translate maps GORM's translated driver errors onto the repository
// sentinels so callers can branch with errors.Is regardless of the dialect.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	}
	return err
}
