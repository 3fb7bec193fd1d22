package domain

import "context"

type ProfanityChecker interface {
	ContainsProfanity(ctx context.Context, text string) (bool, error)
}
