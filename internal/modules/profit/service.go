package profit

import (
	"context"
	"errors"

	"jovemservicos/internal/domain"
)

var ErrInvalidMargin = errors.New("margin percent out of range")

// ConfigStore is the persistence contract for the single margin row.
type ConfigStore interface {
	Get(ctx context.Context) (*domain.ProfitConfig, error)
	Set(ctx context.Context, percent float64) error
}

// ConfigService validates margin updates and hands the lifecycle a
// snapshot read. The margin is validated here, once, at configuration
// time; readers trust the stored value.
type ConfigService struct {
	store ConfigStore
}

func NewConfigService(store ConfigStore) *ConfigService {
	return &ConfigService{store: store}
}

func (s *ConfigService) GetConfig(ctx context.Context) (*domain.ProfitConfig, error) {
	return s.store.Get(ctx)
}

func (s *ConfigService) SetMarginPercent(ctx context.Context, percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidMargin
	}
	return s.store.Set(ctx, percent)
}

// GetMarginPercent implements the lifecycle's ProfitMarginReader.
func (s *ConfigService) GetMarginPercent(ctx context.Context) (float64, error) {
	cfg, err := s.store.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.ProfitMarginPercent, nil
}
