package services

import (
	"errors"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
	"gorm.io/gorm"
)

type CourierService struct {
	DB          *gorm.DB
	CourierRepo *repository.CourierRepository
	OrderRepo   *repository.OrderRepository
}

func NewCourierService(db *gorm.DB, cr *repository.CourierRepository, or *repository.OrderRepository) *CourierService {
	return &CourierService{DB: db, CourierRepo: cr, OrderRepo: or}
}

// SetAvailability flips the courier online/offline. Going offline while
// carrying an active order is rejected.
func (s *CourierService) SetAvailability(userID uint, available bool) error {
	c, err := s.CourierRepo.GetByUserID(userID)
	if err != nil {
		return err
	}
	if !available {
		busy, err := s.OrderRepo.HasActiveOrderForCourier(c.ID)
		if err != nil {
			return err
		}
		if busy {
			return errors.New("cannot go offline while carrying an order")
		}
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CourierRepo.SetAvailability(tx, c.ID, available)
	})
}

func (s *CourierService) GetStatus(userID uint) (map[string]any, error) {
	c, err := s.CourierRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	busy, err := s.OrderRepo.HasActiveOrderForCourier(c.ID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"available":  c.Available,
		"working":    busy,
		"deliveries": c.Deliveries,
	}, nil
}

// CurrentWork returns the order the courier is carrying, nil when idle.
func (s *CourierService) CurrentWork(userID uint) (*entity.Order, error) {
	c, err := s.CourierRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	var o entity.Order
	err = s.DB.
		Where("courier_id = ? AND state NOT IN ?", c.ID,
			[]entity.OrderState{entity.StateDelivered, entity.StateCancelled}).
		Order("id DESC").First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

type UpsertCourierProfileIn struct {
	VehiclePlate string `json:"vehiclePlate"`
	Zone         string `json:"zone"`
}

func (s *CourierService) UpsertProfile(userID uint, in *UpsertCourierProfileIn) error {
	return s.CourierRepo.Upsert(&entity.Courier{
		UserID:       userID,
		VehiclePlate: in.VehiclePlate,
		Zone:         in.Zone,
	})
}
