package services

import (
	"testing"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/events"
	"github.com/stretchr/testify/require"
)

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	client := env.createUser(t, "client")

	_, err := env.Orders.CheckoutFromCart(client.ID, &CheckoutReq{
		DeliveryAddress: "somewhere",
	})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckoutRequiresAddress(t *testing.T) {
	env := newTestEnv(t)
	client := env.createUser(t, "client")

	_, err := env.Orders.CheckoutFromCart(client.ID, &CheckoutReq{DeliveryAddress: "   "})
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestCheckoutSingleProvider(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "3.50", true, 10)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 2)

	var created []events.Event
	env.Dispatcher.Subscribe(events.OrderCreated, func(e events.Event) {
		created = append(created, e)
	})

	o := env.checkout(t, client.ID, "1.50")

	require.Equal(t, entity.KindSingleProvider, o.Kind)
	require.Equal(t, entity.StateAwaitingCourier, o.State)
	require.NotNil(t, o.ProviderID)
	require.Equal(t, prov.ID, *o.ProviderID)
	require.True(t, o.Subtotal.Equal(dec("7.00")))
	require.True(t, o.ServiceFee.IsZero(), "no service fee for one provider")
	require.True(t, o.Total.Equal(dec("8.50")))
	require.Equal(t, entity.PayPending, o.PaymentState)
	require.Nil(t, o.PlatformProfit, "settlement happens at delivery, not checkout")

	// stock reserved
	stock, err := env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 8, stock)

	// pending payment record with a reference
	payment, err := env.PaymentRepo.GetByOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PayPending, payment.State)
	require.NotEmpty(t, payment.Reference)
	require.True(t, payment.Amount.Equal(o.Total))

	// cart emptied
	cart, _, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.Empty(t, cart.Items)

	// items snapshot the cart prices
	items, err := env.OrderRepo.GetOrderItems(o.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Qty)
	require.True(t, items[0].UnitPrice.Equal(dec("3.50")))

	require.Len(t, created, 1)
	require.Equal(t, o.ID, created[0].OrderID)
}

func TestCheckoutServiceFeeTiers(t *testing.T) {
	env := newTestEnv(t)
	client := env.createUser(t, "client")

	p1 := env.createProduct(t, env.createProvider(t).ID, "1.00", false, 0)
	p2 := env.createProduct(t, env.createProvider(t).ID, "1.00", false, 0)
	env.addToCart(t, client.ID, p1, 1)
	env.addToCart(t, client.ID, p2, 1)

	o := env.checkout(t, client.ID, "1.00")
	require.Equal(t, entity.KindMultiProviderCart, o.Kind)
	require.Nil(t, o.ProviderID)
	require.True(t, o.ServiceFee.Equal(dec("0.25")), "got %s", o.ServiceFee)
	require.True(t, o.Total.Equal(dec("3.25")))

	p3 := env.createProduct(t, env.createProvider(t).ID, "1.00", false, 0)
	env.addToCart(t, client.ID, p1, 1)
	env.addToCart(t, client.ID, p2, 1)
	env.addToCart(t, client.ID, p3, 1)

	o2 := env.checkout(t, client.ID, "1.00")
	require.True(t, o2.ServiceFee.Equal(dec("0.50")), "got %s", o2.ServiceFee)
	require.True(t, o2.Total.Equal(dec("4.50")))
}

func TestCheckoutInsufficientStockRollsBackEverything(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	plenty := env.createProduct(t, prov.ID, "1.00", true, 100)
	scarce := env.createProduct(t, prov.ID, "1.00", true, 1)
	client := env.createUser(t, "client")

	env.addToCart(t, client.ID, plenty, 5)
	env.addToCart(t, client.ID, scarce, 3)

	_, err := env.Orders.CheckoutFromCart(client.ID, &CheckoutReq{
		DeliveryAddress: "somewhere",
		ShippingFee:     dec("1.00"),
	})
	require.ErrorIs(t, err, ErrInsufficientStock)

	// the earlier reservation was rolled back with the transaction
	stock, err := env.ProductRepo.CurrentStock(plenty.ID)
	require.NoError(t, err)
	require.Equal(t, 100, stock)

	// no order, no payment, cart untouched
	var orders int64
	require.NoError(t, env.DB.Model(&entity.Order{}).Count(&orders).Error)
	require.Zero(t, orders)

	cart, _, err := env.Carts.Get(client.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
}

func TestCheckoutRejectsUnavailableProduct(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "1.00", false, 0)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 1)

	require.NoError(t, env.DB.Model(&entity.Product{}).
		Where("id = ?", p.ID).Update("available", false).Error)

	_, err := env.Orders.CheckoutFromCart(client.ID, &CheckoutReq{DeliveryAddress: "somewhere"})
	require.ErrorIs(t, err, ErrProductUnavailable)
}

func TestCreateDirectErrand(t *testing.T) {
	env := newTestEnv(t)
	client := env.createUser(t, "client")

	out, err := env.Orders.CreateDirect(client.ID, &DirectOrderReq{
		Description:     "pick up a parcel at the pharmacy",
		DeliveryAddress: "Calle 2",
		ShippingFee:     dec("2.50"),
	})
	require.NoError(t, err)

	o, err := env.OrderRepo.GetOrder(out.ID)
	require.NoError(t, err)
	require.Equal(t, entity.KindDirectCourier, o.Kind)
	require.Nil(t, o.ProviderID)
	require.True(t, o.Subtotal.IsZero())
	require.True(t, o.Total.Equal(dec("2.50")))

	items, err := env.OrderRepo.GetOrderItems(o.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}
