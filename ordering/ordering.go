// Package ordering maintains the display order of items kept in ordered
// collections (sections within a course, lessons within a section). It is
// generic over any model with an id, a parent scope column and an
// order_index column; all mutating helpers expect to run on a transaction
// handle so order reads see the transaction's own writes.
package ordering

import (
	"errors"

	"gorm.io/gorm"
)

// ErrOrphaned is returned when an ordered item's owner chain cannot be
// resolved inside the mutating transaction. This means orphaned rows, not
// a normal miss: the caller must roll back the whole transaction.
var ErrOrphaned = errors.New("ordered item owner not found")

// Sortable is implemented by models that keep a display order within a
// parent scope.
type Sortable interface {
	GetID() string
	GetParentID() string
	GetOrderIndex() int
}

// NextIndex computes the append position for a new item in the parent
// scope: max sibling order + 1, or 0 for an empty scope. Two concurrent
// inserts into the same scope can race and pick the same index; the
// duplicate only causes a tie-break ambiguity in display order and is
// repaired by the next reorder.
func NextIndex(tx *gorm.DB, model interface{}, parentColumn, parentID string) (int, error) {
	var next int
	err := tx.Model(model).
		Where(parentColumn+" = ?", parentID).
		Select("COALESCE(MAX(order_index), -1) + 1").
		Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// ReindexAll assigns order_index 0..n-1 following the exact sequence of
// ids supplied by the caller. Ids that match no live row are skipped; the
// returned slice holds the ids that were actually updated. Must be called
// on a transaction handle.
func ReindexAll(tx *gorm.DB, model interface{}, ids []string) ([]string, error) {
	updated := make([]string, 0, len(ids))
	for idx, id := range ids {
		res := tx.Model(model).Where("id = ?", id).Update("order_index", idx)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected > 0 {
			updated = append(updated, id)
		}
	}
	return updated, nil
}

// MoveTo reparents an ordered item. When newIndex is nil the item is
// appended to the end of the destination scope. Returns the index the
// item ended up at.
func MoveTo(tx *gorm.DB, model interface{}, parentColumn, id, newParentID string, newIndex *int) (int, error) {
	idx := 0
	if newIndex != nil {
		idx = *newIndex
	} else {
		next, err := NextIndex(tx, model, parentColumn, newParentID)
		if err != nil {
			return 0, err
		}
		idx = next
	}

	res := tx.Model(model).Where("id = ?", id).Updates(map[string]interface{}{
		parentColumn:  newParentID,
		"order_index": idx,
	})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return idx, nil
}
