package application

import (
	"context"
	"errors"
	"fmt"
	"github.com/reuben-baek/kitchenpos/data"
	"github.com/reuben-baek/kitchenpos/domain"
	"github.com/shopspring/decimal"
)

func validatePrice(price decimal.NullDecimal) error {
	if !price.Valid {
		return fmt.Errorf("%w: price is required", domain.ErrInvalidArgument)
	}
	if price.Decimal.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", domain.ErrInvalidArgument, price.Decimal)
	}
	return nil
}

func validateName(ctx context.Context, checker domain.ProfanityChecker, name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	profane, err := checker.ContainsProfanity(ctx, name)
	if err != nil {
		return fmt.Errorf("check profanity of %q: %w", name, err)
	}
	if profane {
		return fmt.Errorf("%w: name %q contains profanity", domain.ErrInvalidArgument, name)
	}
	return nil
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, data.NotFoundError) {
		return fmt.Errorf("%w: %s %v", domain.ErrNotFound, what, id)
	}
	return err
}
