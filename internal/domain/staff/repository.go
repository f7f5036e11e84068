package staff

import "context"

type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	List(ctx context.Context) ([]Staff, error)
	Update(ctx context.Context, req UpdateStaffRequest) error
}
