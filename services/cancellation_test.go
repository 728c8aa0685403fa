package services

import (
	"testing"
	"time"

	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/stretchr/testify/require"
)

func TestCancelRestocksAndRecords(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "4.00", true, 10)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 3)
	o := env.checkout(t, client.ID, "1.00")

	stock, err := env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 7, stock)

	require.NoError(t, env.Orders.Cancel(o.ID, "changed my mind", "client"))

	got, err := env.OrderRepo.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StateCancelled, got.State)
	require.NotNil(t, got.CancelledAt)
	require.Equal(t, "changed my mind", got.CancelReason)
	require.Equal(t, "client", got.CancelledBy)

	stock, err = env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 10, stock)

	history, err := env.OrderRepo.ListHistory(o.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StateCancelled, history[len(history)-1].ToState)
}

func TestCancelRefundsPaidOrder(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "4.00", false, 0)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 1)
	o := env.checkout(t, client.ID, "1.00")

	// simulate an upfront card payment
	now := time.Now()
	_, err := env.PaymentRepo.MarkPaidGuard(env.DB, o.ID, now)
	require.NoError(t, err)
	require.NoError(t, env.DB.Model(&entity.Order{}).Where("id = ?", o.ID).
		Update("payment_state", entity.PayPaid).Error)

	require.NoError(t, env.Orders.Cancel(o.ID, "provider closed", "admin"))

	got, err := env.OrderRepo.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PayRefunded, got.PaymentState)

	payment, err := env.PaymentRepo.GetByOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, entity.PayRefunded, payment.State)
}

func TestCancelTerminalOrderRejected(t *testing.T) {
	env := newTestEnv(t)
	o, prov, courier := placeOrder(t, env)

	require.NoError(t, env.Orders.AcceptByCourier(courier.UserID, o.ID))
	require.NoError(t, env.Orders.ConfirmByProvider(prov.UserID, o.ID))
	require.NoError(t, env.Orders.MarkInTransit(courier.UserID, o.ID))
	require.NoError(t, env.Orders.MarkDelivered(courier.UserID, o.ID))

	require.ErrorIs(t, env.Orders.Cancel(o.ID, "too late", "client"), ErrAlreadyTerminal)

	require.Error(t, env.Orders.Cancel(o.ID+999, "missing", "client"))
}

func TestCancelFreesAssignedCourier(t *testing.T) {
	env := newTestEnv(t)
	o, _, courier := placeOrder(t, env)

	require.NoError(t, env.Orders.AcceptByCourier(courier.UserID, o.ID))
	require.NoError(t, env.Orders.Cancel(o.ID, "client asked", "admin"))

	c, err := env.CourierRepo.GetByID(courier.ID)
	require.NoError(t, err)
	require.True(t, c.Available)
}

func TestCancelRestockPolicyBeforeTransit(t *testing.T) {
	env := newTestEnv(t)
	env.Cfg.RestockOnCancel = configs.RestockBeforeTransit

	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "4.00", true, 10)
	client := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 2)
	o := env.checkout(t, client.ID, "1.00")

	courier := env.createCourier(t)
	require.NoError(t, env.Orders.AcceptByCourier(courier.UserID, o.ID))
	require.NoError(t, env.Orders.ConfirmByProvider(prov.UserID, o.ID))
	require.NoError(t, env.Orders.MarkInTransit(courier.UserID, o.ID))

	// goods already left with the courier; this policy writes them off
	require.NoError(t, env.Orders.Cancel(o.ID, "client refused delivery", "courier"))

	stock, err := env.ProductRepo.CurrentStock(p.ID)
	require.NoError(t, err)
	require.Equal(t, 8, stock)
}

func TestCancelByClientChecksOwnership(t *testing.T) {
	env := newTestEnv(t)
	prov := env.createProvider(t)
	p := env.createProduct(t, prov.ID, "4.00", false, 0)
	client := env.createUser(t, "client")
	other := env.createUser(t, "client")
	env.addToCart(t, client.ID, p, 1)
	o := env.checkout(t, client.ID, "1.00")

	require.Error(t, env.Orders.CancelByClient(other.ID, o.ID, "not mine"))

	got, err := env.OrderRepo.GetOrder(o.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingCourier, got.State)
}
