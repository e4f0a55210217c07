package dbtime

import (
	"time"

	"gorm.io/gorm"
)

// Timestamps is embedded by every entity. Both hooks are promoted to the
// embedding model, so gorm runs them on insert and update.
type Timestamps struct {
	Creato     time.Time `gorm:"column:creato;type:timestamp;not null" json:"creato"`
	Modificato time.Time `gorm:"column:modificato;type:timestamp;not null" json:"modificato"`
}

func (t *Timestamps) BeforeCreate(tx *gorm.DB) error {
	now := Now()
	t.Creato = now
	t.Modificato = now
	return nil
}

// BeforeUpdate refreshes modificato only. SetColumn makes the new value reach
// Updates/UpdateColumns calls that carry a map instead of the struct.
func (t *Timestamps) BeforeUpdate(tx *gorm.DB) error {
	t.Modificato = Now()
	if tx != nil && tx.Statement != nil && tx.Statement.Schema != nil {
		tx.Statement.SetColumn("modificato", t.Modificato)
	}
	return nil
}
