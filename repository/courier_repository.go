package repository

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/gorm"
)

type CourierRepository struct{ DB *gorm.DB }

func NewCourierRepository(db *gorm.DB) *CourierRepository { return &CourierRepository{DB: db} }

func (r *CourierRepository) GetByUserID(userID uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.Where("user_id = ?", userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) GetByID(id uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourierRepository) SetAvailability(tx *gorm.DB, courierID uint, available bool) error {
	return tx.Model(&entity.Courier{}).Where("id = ?", courierID).
		Update("available", available).Error
}

func (r *CourierRepository) IncrementDeliveries(tx *gorm.DB, courierID uint) error {
	return tx.Model(&entity.Courier{}).Where("id = ?", courierID).
		Update("deliveries", gorm.Expr("deliveries + 1")).Error
}

func (r *CourierRepository) Upsert(c *entity.Courier) error {
	var exist entity.Courier
	err := r.DB.Where("user_id = ?", c.UserID).First(&exist).Error
	if err == nil {
		exist.VehiclePlate = c.VehiclePlate
		exist.Zone = c.Zone
		return r.DB.Save(&exist).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.DB.Create(c).Error
}
