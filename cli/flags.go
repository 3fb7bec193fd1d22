package cli

import (
	"fmt"
	"github.com/google/uuid"
	"github.com/reuben-baek/kitchenpos/application"
	"github.com/shopspring/decimal"
	"strconv"
	"strings"
)

// parsePrice turns an unset flag into an absent price.
func parsePrice(value string, set bool) (decimal.NullDecimal, error) {
	if !set {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid price %q: %w", value, err)
	}
	return decimal.NewNullDecimal(d), nil
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id %q: %w", value, err)
	}
	return id, nil
}

// parseMenuProduct reads <product id>=<quantity>.
func parseMenuProduct(value string) (application.MenuProductRequest, error) {
	idPart, quantityPart, found := strings.Cut(value, "=")
	if !found {
		quantityPart = "1"
	}
	id, err := parseID(idPart)
	if err != nil {
		return application.MenuProductRequest{}, err
	}
	quantity, err := strconv.ParseInt(quantityPart, 10, 64)
	if err != nil {
		return application.MenuProductRequest{}, fmt.Errorf("invalid quantity %q: %w", quantityPart, err)
	}
	return application.MenuProductRequest{ProductID: id, Quantity: quantity}, nil
}
