package repository

import (
	"time"

	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) GetByOrder(orderID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.Where("order_id = ?", orderID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// MarkPaidGuard flips pending -> paid. Idempotent at the caller: zero rows
// affected on an already-paid record is not an error.
func (r *PaymentRepository) MarkPaidGuard(tx *gorm.DB, orderID uint, paidAt time.Time) (int64, error) {
	res := tx.Model(&entity.Payment{}).
		Where("order_id = ? AND state = ?", orderID, entity.PayPending).
		Updates(map[string]any{"state": entity.PayPaid, "paid_at": paidAt})
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) MarkRefundedGuard(tx *gorm.DB, orderID uint) (int64, error) {
	res := tx.Model(&entity.Payment{}).
		Where("order_id = ? AND state = ?", orderID, entity.PayPaid).
		Update("state", entity.PayRefunded)
	return res.RowsAffected, res.Error
}
