package catalog

import (
	"context"

	"jovemservicos/internal/domain"
)

type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	CreateService(ctx context.Context, s *domain.Service) error
	ListJovens(ctx context.Context) ([]domain.Jovem, error)
	ListOngs(ctx context.Context) ([]domain.Ong, error)
}

type Service struct {
	catalog CatalogRepository
}

func NewService(catalog CatalogRepository) *Service {
	return &Service{catalog: catalog}
}

func (s *Service) GetService(ctx context.Context, id int64) (*domain.Service, error) {
	return s.catalog.GetServiceByID(ctx, id)
}

func (s *Service) ListServices(ctx context.Context) ([]domain.Service, error) {
	return s.catalog.ListServices(ctx)
}

func (s *Service) CreateService(ctx context.Context, svc *domain.Service) error {
	svc.Active = true
	return s.catalog.CreateService(ctx, svc)
}

func (s *Service) ListJovens(ctx context.Context) ([]domain.Jovem, error) {
	return s.catalog.ListJovens(ctx)
}

func (s *Service) ListOngs(ctx context.Context) ([]domain.Ong, error) {
	return s.catalog.ListOngs(ctx)
}
