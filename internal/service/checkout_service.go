package service

import (
	"context"
	"net/mail"

	"mintology-gateway/internal/core/domain"
	"mintology-gateway/internal/core/ports"
	"mintology-gateway/pkg/apperror"
	"mintology-gateway/pkg/logger"

	"github.com/rs/zerolog"
)

// CheckoutServiceImpl implements ports.CheckoutService. It validates
// billing input, prices the order through the pricing engine and
// charges the customer through the vendor.
type CheckoutServiceImpl struct {
	pricing ports.PricingService
	charges ports.ChargeAPI
	log     zerolog.Logger
}

// NewCheckoutService creates a new CheckoutServiceImpl.
func NewCheckoutService(pricing ports.PricingService, charges ports.ChargeAPI, log zerolog.Logger) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		pricing: pricing,
		charges: charges,
		log:     logger.WithComponent(log, "checkout_service"),
	}
}

// Checkout prices the project for the billing country and charges the
// customer. A vendor charge that does not reach "succeeded" is a
// decline, whatever shape the vendor used to report it.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, req ports.CheckoutRequest) (*ports.CheckoutResult, error) {
	if err := validateCheckout(req); err != nil {
		return nil, err
	}

	order, err := s.pricing.Quote(ctx, req.ProjectID, req.Country)
	if err != nil {
		return nil, err
	}

	result, err := s.charges.ChargeCustomer(ctx, domain.ChargeRequest{
		PaymentMethodID: req.PaymentMethodID,
		Amount:          order.TotalAmount,
		Currency:        order.Currency,
	})
	if err != nil {
		return nil, err
	}
	if !result.Succeeded() {
		s.log.Warn().
			Str("project_id", req.ProjectID).
			Str("status", result.Status).
			Msg("charge declined")
		return nil, apperror.ErrChargeDeclined(result.Message)
	}

	s.log.Info().
		Str("project_id", req.ProjectID).
		Float64("amount", order.TotalAmount).
		Str("currency", order.Currency).
		Msg("checkout completed")

	return &ports.CheckoutResult{Order: order, Charge: result}, nil
}

func validateCheckout(req ports.CheckoutRequest) error {
	switch {
	case req.ProjectID == "":
		return apperror.ErrEmptyProjectID()
	case req.FullName == "":
		return apperror.Validation("Please enter Full name!")
	case req.Email == "":
		return apperror.Validation("Please enter Email address!")
	case !validEmail(req.Email):
		return apperror.Validation("Email address is invalid!")
	case req.Phone == "":
		return apperror.Validation("Please enter Phone number!")
	case req.PaymentMethodID == "":
		return apperror.ErrPaymentMethodMissing()
	}
	return nil
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
