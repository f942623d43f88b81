package store

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kantanpro/kantanpro/internal/models"
	srvErrors "github.com/kantanpro/kantanpro/pkg/errors"
)

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", srvErrors.NewRequiredFieldError(field)
	}
	return value, nil
}

func requireNonNegative(field string, value decimal.Decimal) error {
	if value.IsNegative() {
		return srvErrors.NewValidationError(field, "must not be negative, got %s", value)
	}
	return nil
}

func validateStatus(status models.OrderStatus) (models.OrderStatus, error) {
	parsed, err := models.ParseOrderStatus(string(status))
	if err != nil {
		return "", srvErrors.NewValidationError("status", "%s", err.Error())
	}
	return parsed, nil
}

func validateDate(field string, d models.Date) error {
	if _, err := models.ParseDate(string(d)); err != nil {
		return srvErrors.NewValidationError(field, "%s", err.Error())
	}
	return nil
}

// nullable maps an empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
