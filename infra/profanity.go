package infra

import (
	"fmt"
	"github.com/reuben-baek/kitchenpos/config"
	"github.com/reuben-baek/kitchenpos/domain"
)

func NewProfanityChecker(cfg config.ProfanityConfig) (domain.ProfanityChecker, error) {
	switch cfg.Checker {
	case config.CheckerPurgomalum:
		return NewPurgomalumClient(cfg.URL, cfg.Timeout), nil
	case config.CheckerWordList:
		return NewWordListChecker(cfg.Words), nil
	default:
		return nil, fmt.Errorf("unknown profanity checker %q", cfg.Checker)
	}
}
