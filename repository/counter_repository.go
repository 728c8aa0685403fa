package repository

import (
	"gorm.io/gorm"
)

type CounterRepository struct{ DB *gorm.DB }

func NewCounterRepository(db *gorm.DB) *CounterRepository { return &CounterRepository{DB: db} }

// NextSequence bumps and returns the per-year counter in one statement, so
// two concurrent callers can never observe the same value.
func (r *CounterRepository) NextSequence(tx *gorm.DB, year int) (int64, error) {
	var seq int64
	err := tx.Raw(`
		INSERT INTO order_counters (year, last_seq) VALUES (?, 1)
		ON CONFLICT(year) DO UPDATE SET last_seq = last_seq + 1
		RETURNING last_seq
	`, year).Scan(&seq).Error
	return seq, err
}
