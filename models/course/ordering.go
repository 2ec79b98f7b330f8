package course

import (
	"database/sql"

	"gorm.io/gorm"
)

// OrderColumn is the column every ordered model stores its position in
const OrderColumn = "order_index"

// assignOrder fills *order with the next position inside scope when the caller left it nil.
// The next position is 1 + the highest existing position among rows of model matching every
// column in scope, or 0 when there are none. An explicit value is never touched.
//
// The read and the insert that follows are separate statements, so two concurrent creates in
// the same scope can end up with the same position.
func assignOrder(tx *gorm.DB, model interface{}, order **uint, scope map[string]interface{}) error {
	if *order != nil {
		return nil
	}
	var last sql.NullInt64
	err := tx.Session(&gorm.Session{NewDB: true}).
		Model(model).
		Where(scope).
		Select("MAX(" + OrderColumn + ")").
		Scan(&last).Error
	if err != nil {
		return err
	}
	var next uint
	if last.Valid {
		next = uint(last.Int64) + 1
	}
	*order = &next
	return nil
}
