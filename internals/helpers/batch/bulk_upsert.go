// file: internals/helpers/batch/bulk_upsert.go
package batch

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultBatchSize = 100

// UpsertAll writes every row in one transaction: insert when the composite
// key (keyCols) is free, otherwise update only updateCols in place. Either
// all rows apply or none do; a single constraint violation rolls the whole
// batch back.
func UpsertAll[T any](ctx context.Context, db *gorm.DB, rows []T, keyCols, updateCols []string) error {
	if len(rows) == 0 {
		return nil
	}

	cols := make([]clause.Column, 0, len(keyCols))
	for _, k := range keyCols {
		cols = append(cols, clause.Column{Name: k})
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Clauses(clause.OnConflict{
				Columns:   cols,
				DoUpdates: clause.AssignmentColumns(updateCols),
			}).
			CreateInBatches(&rows, defaultBatchSize).Error
	})
}
