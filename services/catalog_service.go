package services

import (
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/shopspring/decimal"
)

// CatalogService is the provider-facing product management plus the public
// browse surface.
type CatalogService struct {
	Products  *repository.ProductRepository
	Providers *repository.ProviderRepository
}

func NewCatalogService(pr *repository.ProductRepository, pv *repository.ProviderRepository) *CatalogService {
	return &CatalogService{Products: pr, Providers: pv}
}

type ProductIn struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	ImageURL    string          `json:"imageUrl"`
	Available   *bool           `json:"available"`
	TrackStock  bool            `json:"trackStock"`
	Stock       int             `json:"stock"`
}

func (s *CatalogService) Create(userID uint, in *ProductIn) (*entity.Product, error) {
	provider, err := s.Providers.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	available := true
	if in.Available != nil {
		available = *in.Available
	}
	p := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Available:   available,
		TrackStock:  in.TrackStock,
		Stock:       in.Stock,
		ProviderID:  provider.ID,
	}
	if err := s.Products.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) Update(userID, productID uint, updates map[string]any) error {
	provider, err := s.Providers.GetByUserID(userID)
	if err != nil {
		return err
	}
	// ownership is enforced by the provider_id condition in the update
	delete(updates, "provider_id")
	delete(updates, "times_sold")
	if price, ok := updates["price"]; ok {
		d, ok := price.(decimal.Decimal)
		if ok && d.IsNegative() {
			return ErrInvalidPrice
		}
	}
	n, err := s.Products.Update(productID, provider.ID, updates)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrForbidden
	}
	return nil
}

func (s *CatalogService) ListMine(userID uint) ([]entity.Product, error) {
	provider, err := s.Providers.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.Products.ListByProvider(provider.ID)
}

func (s *CatalogService) Browse(search string, limit int) ([]entity.Product, error) {
	return s.Products.ListAvailable(search, limit)
}

func (s *CatalogService) Get(productID uint) (*entity.Product, error) {
	return s.Products.GetProduct(productID)
}
