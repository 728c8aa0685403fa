package repository

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) GetProduct(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBasics fetches just the columns checkout needs to price a line.
func (r *ProductRepository) GetBasics(id uint) (entity.Product, error) {
	var p entity.Product
	err := r.DB.Select("id, name, price, provider_id, available, track_stock, stock").First(&p, id).Error
	return p, err
}

// DecrementStockGuard is the reservation primitive: decrement only while
// enough stock remains, in one statement. Zero rows affected means the
// condition failed and nothing was mutated.
func (r *ProductRepository) DecrementStockGuard(tx *gorm.DB, productID uint, qty int) (int64, error) {
	res := tx.Model(&entity.Product{}).
		Where("id = ? AND track_stock = ? AND stock >= ?", productID, true, qty).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock - ?", qty),
			"times_sold": gorm.Expr("times_sold + ?", qty),
		})
	return res.RowsAffected, res.Error
}

// IncrementStock returns previously reserved units (checkout failure or
// cancellation restock).
func (r *ProductRepository) IncrementStock(tx *gorm.DB, productID uint, qty int) error {
	return tx.Model(&entity.Product{}).
		Where("id = ? AND track_stock = ?", productID, true).
		Updates(map[string]any{
			"stock":      gorm.Expr("stock + ?", qty),
			"times_sold": gorm.Expr("times_sold - ?", qty),
		}).Error
}

// BumpSold records a sale for products that do not track stock.
func (r *ProductRepository) BumpSold(tx *gorm.DB, productID uint, qty int) error {
	return tx.Model(&entity.Product{}).
		Where("id = ?", productID).
		Update("times_sold", gorm.Expr("times_sold + ?", qty)).Error
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Update(id, providerID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Product{}).
		Where("id = ? AND provider_id = ?", id, providerID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *ProductRepository) ListByProvider(providerID uint) ([]entity.Product, error) {
	var out []entity.Product
	err := r.DB.Where("provider_id = ?", providerID).Order("id ASC").Find(&out).Error
	return out, err
}

// ListAvailable is the public browse query, optionally filtered by a name
// substring.
func (r *ProductRepository) ListAvailable(search string, limit int) ([]entity.Product, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	db := r.DB.Where("available = ?", true)
	if search != "" {
		db = db.Where("name LIKE ?", "%"+search+"%")
	}
	var out []entity.Product
	err := db.Order("times_sold DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *ProductRepository) CurrentStock(productID uint) (int, error) {
	var row struct{ Stock int }
	err := r.DB.Model(&entity.Product{}).Select("stock").Where("id = ?", productID).First(&row).Error
	return row.Stock, err
}
