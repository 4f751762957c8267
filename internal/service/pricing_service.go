package service

import (
	"context"
	"strings"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/internal/refdata"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// defaultCountry is assumed when the storefront sends no country.
const defaultCountry = "SG"

// PricingServiceImpl implements ports.PricingService. Prices are pure
// vendor-derived computations with no stored order state; tax is
// applied multiplicatively exactly once.
type PricingServiceImpl struct {
	api  ports.PricingAPI
	meta ports.ProjectMetaRepository
	log  zerolog.Logger
}

// NewPricingService creates a new PricingService.
func NewPricingService(api ports.PricingAPI, meta ports.ProjectMetaRepository, log zerolog.Logger) *PricingServiceImpl {
	return &PricingServiceImpl{
		api:  api,
		meta: meta,
		log:  logger.WithComponent(log, "pricing_service"),
	}
}

// Quote returns the tax-inclusive total for a project.
func (s *PricingServiceImpl) Quote(ctx context.Context, projectID, country string) (*domain.PricedOrder, error) {
	country, contractType, walletType, err := s.resolveInputs(ctx, projectID, country)
	if err != nil {
		return nil, err
	}

	rate, err := s.api.GetTaxRate(ctx, country)
	if err != nil {
		return nil, err
	}
	base, err := s.api.GetTariff(ctx, contractType, walletType)
	if err != nil {
		return nil, err
	}

	total := base
	if rate.Percentage > 0 {
		total += total * (rate.Percentage / 100)
	}

	return &domain.PricedOrder{
		GSTPercentage:  rate.Percentage,
		GSTDisplayName: rate.DisplayName,
		TotalAmount:    domain.RoundMoney(total),
		Currency:       refdata.CurrencyFor(country),
	}, nil
}

// OrderSummary breaks the price into contract and wallet line items
// plus GST. Subtotal is contract + wallet + GST amount.
func (s *PricingServiceImpl) OrderSummary(ctx context.Context, projectID, country string) (*domain.PricedOrder, error) {
	country, contractType, walletType, err := s.resolveInputs(ctx, projectID, country)
	if err != nil {
		return nil, err
	}

	rate, err := s.api.GetTaxRate(ctx, country)
	if err != nil {
		return nil, err
	}

	contractPrice, err := s.api.GetTariff(ctx, contractType, "")
	if err != nil {
		return nil, err
	}
	walletPrice, err := s.api.GetTariff(ctx, "", walletType)
	if err != nil {
		return nil, err
	}
	base, err := s.api.GetTariff(ctx, contractType, walletType)
	if err != nil {
		return nil, err
	}

	gstAmount := 0.0
	total := base
	if rate.Percentage > 0 {
		gstAmount = base * (rate.Percentage / 100)
		total += gstAmount
	}

	return &domain.PricedOrder{
		ContractPrice:  domain.RoundMoney(contractPrice),
		WalletPrice:    domain.RoundMoney(walletPrice),
		GSTPercentage:  rate.Percentage,
		GSTDisplayName: rate.DisplayName,
		GSTAmount:      domain.RoundMoney(gstAmount),
		Subtotal:       domain.RoundMoney(contractPrice + walletPrice + gstAmount),
		TotalAmount:    domain.RoundMoney(total),
		Currency:       refdata.CurrencyFor(country),
	}, nil
}

// resolveInputs defaults the country and loads the project's
// contract/wallet types. Projects without stored metadata price with
// empty types, which the vendor tariffs at zero.
func (s *PricingServiceImpl) resolveInputs(ctx context.Context, projectID, country string) (string, string, string, error) {
	if projectID == "" {
		return "", "", "", apperror.ErrEmptyProjectID()
	}
	if country == "" {
		country = defaultCountry
	}

	meta, err := s.meta.Get(ctx, projectID)
	if err != nil {
		return "", "", "", apperror.ErrDatabaseError(err)
	}

	var contractType, walletType string
	if meta != nil {
		contractType = strings.ToLower(meta.ContractType)
		walletType = strings.ToLower(meta.WalletType)
	}
	return country, contractType, walletType, nil
}
