package services

import (
	"log"

	"github.com/BETACRD01/delibery-sub000/configs"
	"github.com/BETACRD01/delibery-sub000/entity"
	"github.com/BETACRD01/delibery-sub000/repository"
	"github.com/shopspring/decimal"
)

// SettlementService computes the three-way money split at delivery. Rates
// come from the commission rule store resolved at settlement time, so a rate
// change applies to every order that has not been delivered yet.
type SettlementService struct {
	Rules *repository.CommissionRuleRepository
	Cfg   *configs.Config
}

func NewSettlementService(rules *repository.CommissionRuleRepository, cfg *configs.Config) *SettlementService {
	return &SettlementService{Rules: rules, Cfg: cfg}
}

type SettlementBreakdown struct {
	CourierCommission  decimal.Decimal
	ProviderCommission decimal.Decimal
	PlatformProfit     decimal.Decimal
	// per-provider split for multi-provider carts, kept for the audit trail
	PerProvider map[uint]decimal.Decimal
	// true when a misconfigured policy would have produced a negative profit
	Clamped bool
}

// Settle derives the commission figures for an order about to be marked
// delivered. It never writes; the delivery transition persists the result
// exactly once. Rounding (half up, 2 places) is applied once per output
// figure, not per intermediate step.
func (s *SettlementService) Settle(o *entity.Order) (*SettlementBreakdown, error) {
	courier, err := s.courierCommission(o)
	if err != nil {
		return nil, err
	}

	provider, perProvider, err := s.providerCommission(o)
	if err != nil {
		return nil, err
	}

	courier = courier.Round(2)
	provider = provider.Round(2)

	profit := o.Total.Sub(courier).Sub(provider).Round(2)
	clamped := false
	if profit.LessThan(s.Cfg.MinPlatformProfit) {
		// a bad policy must not block delivery; record and move on
		log.Printf("settlement anomaly on order %s: computed platform profit %s below floor %s",
			o.OrderNumber, profit.String(), s.Cfg.MinPlatformProfit.String())
		profit = s.Cfg.MinPlatformProfit
		clamped = true
	}

	return &SettlementBreakdown{
		CourierCommission:  courier,
		ProviderCommission: provider,
		PlatformProfit:     profit,
		PerProvider:        perProvider,
		Clamped:            clamped,
	}, nil
}

func (s *SettlementService) courierCommission(o *entity.Order) (decimal.Decimal, error) {
	var courierID uint
	if o.CourierID != nil {
		courierID = *o.CourierID
	}
	rule, err := s.Rules.FindRule(entity.CommissionSubjectCourier, courierID)
	if err != nil {
		return decimal.Zero, err
	}
	return applyRule(rule, o.ShippingFee, s.Cfg.CourierShippingRate), nil
}

func (s *SettlementService) providerCommission(o *entity.Order) (decimal.Decimal, map[uint]decimal.Decimal, error) {
	switch o.Kind {
	case entity.KindDirectCourier:
		// direct errands have no goods provider
		return decimal.Zero, nil, nil

	case entity.KindMultiProviderCart:
		// the one place the algorithm forks on order kind: commission is
		// resolved per item provider and summed
		byProvider := make(map[uint]decimal.Decimal)
		for _, it := range o.Items {
			pid := it.Product.ProviderID
			byProvider[pid] = byProvider[pid].Add(it.Subtotal)
		}

		total := decimal.Zero
		perProvider := make(map[uint]decimal.Decimal, len(byProvider))
		for pid, sub := range byProvider {
			rule, err := s.Rules.FindRule(entity.CommissionSubjectProvider, pid)
			if err != nil {
				return decimal.Zero, nil, err
			}
			c := applyRule(rule, sub, s.Cfg.ProviderCommissionRate)
			perProvider[pid] = c.Round(2)
			total = total.Add(c)
		}
		return total, perProvider, nil

	default: // single provider
		var pid uint
		if o.ProviderID != nil {
			pid = *o.ProviderID
		}
		rule, err := s.Rules.FindRule(entity.CommissionSubjectProvider, pid)
		if err != nil {
			return decimal.Zero, nil, err
		}
		return applyRule(rule, o.Subtotal, s.Cfg.ProviderCommissionRate), nil, nil
	}
}

// applyRule resolves one commission figure: flat wins over percent, and a
// missing rule falls back to the configured default percentage.
func applyRule(rule *entity.CommissionRule, base, defaultPercent decimal.Decimal) decimal.Decimal {
	if rule != nil {
		if rule.Flat != nil {
			return *rule.Flat
		}
		if rule.Percent != nil {
			return base.Mul(*rule.Percent)
		}
	}
	return base.Mul(defaultPercent)
}
