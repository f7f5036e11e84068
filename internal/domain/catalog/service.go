package catalog

import "context"

// CatalogService defines business logic for the service catalog
type CatalogService interface {
	CreateService(ctx context.Context, req CreateServiceRequest) (ServiceResponse, error)
	GetService(ctx context.Context, id string) (ServiceResponse, error)
	ListServices(ctx context.Context, activeOnly bool) ([]ServiceResponse, error)
}
