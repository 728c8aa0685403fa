package services

import (
	"testing"

	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/stretchr/testify/require"
)

func singleProviderOrder(providerID uint, subtotal, shipping, serviceFee string) *entity.Order {
	sub := dec(subtotal)
	shp := dec(shipping)
	fee := dec(serviceFee)
	return &entity.Order{
		OrderNumber: "DL-2025-000001",
		Kind:        entity.KindSingleProvider,
		ProviderID:  &providerID,
		Subtotal:    sub,
		ShippingFee: shp,
		ServiceFee:  fee,
		Total:       sub.Add(shp).Add(fee),
	}
}

func TestSettleSingleProviderDefaults(t *testing.T) {
	env := newTestEnv(t)
	o := singleProviderOrder(1, "10.00", "1.50", "0.00")

	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)

	require.True(t, b.ProviderCommission.Equal(dec("1.50")), "got %s", b.ProviderCommission)
	require.True(t, b.CourierCommission.Equal(dec("1.50")), "got %s", b.CourierCommission)
	require.True(t, b.PlatformProfit.Equal(dec("8.50")), "got %s", b.PlatformProfit)
	require.False(t, b.Clamped)

	// the three figures always add back up to the total
	sum := b.CourierCommission.Add(b.ProviderCommission).Add(b.PlatformProfit)
	require.True(t, sum.Equal(o.Total))
}

func TestSettleRoundsHalfUpOncePerFigure(t *testing.T) {
	env := newTestEnv(t)
	// 15% of 10.05 = 1.5075, which must land on 1.51, not 1.50
	o := singleProviderOrder(1, "10.05", "0.00", "0.00")

	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)
	require.True(t, b.ProviderCommission.Equal(dec("1.51")), "got %s", b.ProviderCommission)
	require.True(t, b.PlatformProfit.Equal(dec("8.54")), "got %s", b.PlatformProfit)
}

func TestSettleProviderFlatRuleOverridesDefault(t *testing.T) {
	env := newTestEnv(t)
	flat := dec("2.00")
	require.NoError(t, env.RuleRepo.Upsert(&entity.CommissionRule{
		Subject: entity.CommissionSubjectProvider, SubjectID: ptrUint(7), Flat: &flat,
	}))

	o := singleProviderOrder(7, "10.00", "1.00", "0.00")
	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)
	require.True(t, b.ProviderCommission.Equal(dec("2.00")), "got %s", b.ProviderCommission)

	// other providers still get the configured default
	other := singleProviderOrder(8, "10.00", "1.00", "0.00")
	b2, err := env.Settlement.Settle(other)
	require.NoError(t, err)
	require.True(t, b2.ProviderCommission.Equal(dec("1.50")), "got %s", b2.ProviderCommission)
}

func TestSettleMultiProviderCartSumsPerProvider(t *testing.T) {
	env := newTestEnv(t)

	o := &entity.Order{
		OrderNumber: "DL-2025-000002",
		Kind:        entity.KindMultiProviderCart,
		Subtotal:    dec("30.00"),
		ShippingFee: dec("2.00"),
		ServiceFee:  dec("0.25"),
		Total:       dec("32.25"),
		Items: []entity.OrderItem{
			{Subtotal: dec("10.00"), Product: entity.Product{ProviderID: 1}},
			{Subtotal: dec("5.00"), Product: entity.Product{ProviderID: 1}},
			{Subtotal: dec("15.00"), Product: entity.Product{ProviderID: 2}},
		},
	}

	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)

	// 15% of 15.00 per provider
	require.True(t, b.PerProvider[1].Equal(dec("2.25")), "got %s", b.PerProvider[1])
	require.True(t, b.PerProvider[2].Equal(dec("2.25")), "got %s", b.PerProvider[2])
	require.True(t, b.ProviderCommission.Equal(dec("4.50")), "got %s", b.ProviderCommission)
	require.True(t, b.CourierCommission.Equal(dec("2.00")), "got %s", b.CourierCommission)
	require.True(t, b.PlatformProfit.Equal(dec("25.75")), "got %s", b.PlatformProfit)
}

func TestSettleMultiProviderRuleAppliesToOneProviderOnly(t *testing.T) {
	env := newTestEnv(t)
	pct := dec("0.20")
	require.NoError(t, env.RuleRepo.Upsert(&entity.CommissionRule{
		Subject: entity.CommissionSubjectProvider, SubjectID: ptrUint(2), Percent: &pct,
	}))

	o := &entity.Order{
		Kind:        entity.KindMultiProviderCart,
		Subtotal:    dec("20.00"),
		ShippingFee: dec("0.00"),
		ServiceFee:  dec("0.25"),
		Total:       dec("20.25"),
		Items: []entity.OrderItem{
			{Subtotal: dec("10.00"), Product: entity.Product{ProviderID: 1}},
			{Subtotal: dec("10.00"), Product: entity.Product{ProviderID: 2}},
		},
	}

	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)
	require.True(t, b.PerProvider[1].Equal(dec("1.50")), "got %s", b.PerProvider[1])
	require.True(t, b.PerProvider[2].Equal(dec("2.00")), "got %s", b.PerProvider[2])
	require.True(t, b.ProviderCommission.Equal(dec("3.50")), "got %s", b.ProviderCommission)
}

func TestSettleDirectErrandHasNoProviderCut(t *testing.T) {
	env := newTestEnv(t)
	o := &entity.Order{
		Kind:        entity.KindDirectCourier,
		Subtotal:    dec("0.00"),
		ShippingFee: dec("3.00"),
		ServiceFee:  dec("0.00"),
		Total:       dec("3.00"),
	}

	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)
	require.True(t, b.ProviderCommission.IsZero())
	require.True(t, b.CourierCommission.Equal(dec("3.00")))
	require.True(t, b.PlatformProfit.IsZero())
	require.False(t, b.Clamped)
}

func TestSettleClampsNegativeProfit(t *testing.T) {
	env := newTestEnv(t)
	flat := dec("50.00")
	require.NoError(t, env.RuleRepo.Upsert(&entity.CommissionRule{
		Subject: entity.CommissionSubjectCourier, Flat: &flat,
	}))

	o := singleProviderOrder(1, "10.00", "1.00", "0.00")
	b, err := env.Settlement.Settle(o)
	require.NoError(t, err)
	require.True(t, b.Clamped)
	require.True(t, b.PlatformProfit.Equal(env.Cfg.MinPlatformProfit))
}

func ptrUint(v uint) *uint { return &v }
