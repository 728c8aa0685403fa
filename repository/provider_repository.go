package repository

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/gorm"
)

type ProviderRepository struct{ DB *gorm.DB }

func NewProviderRepository(db *gorm.DB) *ProviderRepository { return &ProviderRepository{DB: db} }

func (r *ProviderRepository) GetByID(id uint) (*entity.Provider, error) {
	var p entity.Provider
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) GetByUserID(userID uint) (*entity.Provider, error) {
	var p entity.Provider
	if err := r.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProviderRepository) IsOwnedBy(providerID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Provider{}).
		Where("id = ? AND user_id = ?", providerID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *ProviderRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Provider{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
