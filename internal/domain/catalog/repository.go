package catalog

import "context"

type ServiceRepository interface {
	Create(ctx context.Context, s Service) (Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	List(ctx context.Context, activeOnly bool) ([]Service, error)
	Count(ctx context.Context) (int, error)
}
