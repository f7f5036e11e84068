package catalog

import (
	"context"
	"strings"

	"github.com/autodazzle/detailing-backend-go/internal/domain/catalog"
)

type CatalogServiceImpl struct {
	serviceRepo catalog.ServiceRepository
}

func NewCatalogService(serviceRepo catalog.ServiceRepository) catalog.CatalogService {
	return &CatalogServiceImpl{serviceRepo: serviceRepo}
}

func (s *CatalogServiceImpl) CreateService(ctx context.Context, req catalog.CreateServiceRequest) (catalog.ServiceResponse, error) {
	if err := req.Validate(); err != nil {
		return catalog.ServiceResponse{}, err
	}

	created, err := s.serviceRepo.Create(ctx, catalog.Service{
		Name:     req.Name,
		SKU:      strings.ToUpper(req.SKU),
		Category: strings.ToUpper(req.Category),
		Active:   true,
	})
	if err != nil {
		return catalog.ServiceResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *CatalogServiceImpl) GetService(ctx context.Context, id string) (catalog.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return catalog.ServiceResponse{}, err
	}
	return mapToResponse(svc), nil
}

func (s *CatalogServiceImpl) ListServices(ctx context.Context, activeOnly bool) ([]catalog.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]catalog.ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, mapToResponse(svc))
	}
	return result, nil
}

func mapToResponse(svc catalog.Service) catalog.ServiceResponse {
	return catalog.ServiceResponse{
		ID:       svc.ID,
		Name:     svc.Name,
		SKU:      svc.SKU,
		Category: svc.Category,
		Active:   svc.Active,
	}
}
