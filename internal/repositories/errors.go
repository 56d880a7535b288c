package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup scoped to a store matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrInUse is returned when a row cannot be deleted because other rows
	// still reference it.
	ErrInUse = errors.New("record still referenced")
)

// isForeignKeyViolation reports whether err is a rejected foreign key on
// either driver. Postgres errors arrive translated by GORM, SQLite ones
// only carry the message.
func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) ||
		strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// deleteUnreferenced deletes the row of model with id unless rows of ref
// still point at it through column.
func deleteUnreferenced(tx *gorm.DB, model interface{}, id string, ref interface{}, column string) error {
	var refs int64
	if err := tx.Model(ref).Where(column+" = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}
	if err := tx.Delete(model, "id = ?", id).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	return nil
}
