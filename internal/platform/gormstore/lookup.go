package gormstore

import (
	"context"

	"gorm.io/gorm"
)

// findOneBy returns the first row of M whose column equals value, ordered by
// surrogate key. Absence is not an error: it is reported as found == false.
// column must be a trusted identifier, never client input.
func findOneBy[M any](
	ctx context.Context,
	db *gorm.DB,
	column string,
	value interface{},
	preloads ...string,
) (*M, bool, error) {
	q := db.WithContext(ctx).
		Where(map[string]interface{}{column: value}).
		Order(columnPK).
		Limit(1)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, false, err
	}
	if len(rows) == 0 {
		return nil, false, nil
	}
	return &rows[0], true, nil
}

// listAll returns every row of M ordered by surrogate key.
func listAll[M any](ctx context.Context, db *gorm.DB, preloads ...string) ([]M, error) {
	q := db.WithContext(ctx).Order(columnPK)
	for _, p := range preloads {
		q = q.Preload(p)
	}

	var rows []M
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
