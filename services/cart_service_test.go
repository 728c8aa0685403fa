package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCartAddMergesSameProductLines(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.50", false, 0)
	client := env.createUser(t, "client")

	env.addToCart(t, client.ID, p, 2)
	env.addToCart(t, client.ID, p, 1)

	cart, subtotal, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.Items[0].Qty)
	require.True(t, subtotal.Equal(dec("7.50")), "got %s", subtotal)
}

func TestCartAddKeepsDistinctNotesApart(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.50", false, 0)
	client := env.createUser(t, "client")

	require.NoError(t, env.Carts.Add(client.ID, &AddToCartIn{ProductID: p.ID, Qty: 1, Note: "sin aji"}))
	require.NoError(t, env.Carts.Add(client.ID, &AddToCartIn{ProductID: p.ID, Qty: 1}))

	cart, _, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
}

func TestCartUpdateQtyRecomputesSubtotal(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", false, 0)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 1)

	cart, _, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.NoError(t, env.Carts.UpdateQty(client.ID, cart.Items[0].ID, 4))

	cart, subtotal, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.Equal(t, 4, cart.Items[0].Qty)
	require.True(t, subtotal.Equal(dec("8.00")), "got %s", subtotal)

	// qty zero removes the line
	require.NoError(t, env.Carts.UpdateQty(client.ID, cart.Items[0].ID, 0))
	cart, _, err = env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)
}

func TestCartSnapshotsPriceAtAddTime(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", false, 0)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 1)

	require.NoError(t, env.DB.Model(p).Update("price", dec("9.99")).Error)

	cart, subtotal, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.True(t, cart.Items[0].UnitPrice.Equal(dec("2.00")))
	require.True(t, subtotal.Equal(dec("2.00")))
}

func TestCartAddUnavailableProduct(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "2.00", false, 0)
	require.NoError(t, env.DB.Model(p).Update("available", false).Error)
	client := env.createUser(t, "client")

	err := env.Carts.Add(client.ID, &AddToCartIn{ProductID: p.ID, Qty: 1})
	require.ErrorIs(t, err, ErrProductUnavailable)
}
