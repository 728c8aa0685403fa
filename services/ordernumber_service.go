package services

import (
	"fmt"
	"time"

	"github.com/BETACRD01/delibery-sub000/repository"
	"gorm.io/gorm"
)

// OrderNumberService hands out human-readable order numbers, unique within a
// year: DL-2025-000123. The sequence lives in the DB and is bumped with one
// atomic upsert, so concurrent checkouts can never collide.
type OrderNumberService struct {
	Counters *repository.CounterRepository
	Prefix   string
}

func NewOrderNumberService(counters *repository.CounterRepository, prefix string) *OrderNumberService {
	return &OrderNumberService{Counters: counters, Prefix: prefix}
}

func (s *OrderNumberService) Next(tx *gorm.DB) (string, error) {
	year := time.Now().Year()
	seq, err := s.Counters.NextSequence(tx, year)
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return fmt.Sprintf("%s-%d-%06d", s.Prefix, year, seq), nil
}
