package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestReserveDecrementsStock(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", true, 10)

	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Reserve(tx, p, 3)
	}))

	stock, err := env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 7, stock)

	got, err := env.ProductRepo.GetProduct(p.ID)
	require.NoError(t, err)
	require.Equal(t, 3, got.TimesSold)
}

func TestReserveInsufficientStock(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", true, 2)

	err := env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Reserve(tx, p, 5)
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	var ise *InsufficientStockError
	require.True(t, errors.As(err, &ise))
	require.Equal(t, p.ID, ise.ProductID)
	require.Equal(t, 5, ise.Requested)
	require.Equal(t, 2, ise.Available)

	// nothing moved
	stock, err := env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 2, stock)
}

func TestReserveExactRemainingStock(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", true, 4)

	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Reserve(tx, p, 4)
	}))

	stock, err := env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stock)

	err = env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Reserve(tx, p, 1)
	})
	require.ErrorIs(t, err, ErrInsufficientStock)
}

func TestReserveUntrackedProductNeverFails(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", false, 0)

	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Reserve(tx, p, 100)
	}))

	got, err := env.ProductRepo.GetProduct(p.ID)
	require.NoError(t, err)
	require.Equal(t, 100, got.TimesSold)
	require.Equal(t, 0, got.Stock)
}

func TestReleaseRestoresUnits(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", true, 10)

	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Reserve(tx, p, 6)
	}))
	require.NoError(t, env.DB.Transaction(func(tx *gorm.DB) error {
		return env.Inventory.Release(tx, p.ID, 6)
	}))

	got, err := env.ProductRepo.GetProduct(p.ID)
	require.NoError(t, err)
	require.Equal(t, 10, got.Stock)
	require.Equal(t, 0, got.TimesSold)
}
