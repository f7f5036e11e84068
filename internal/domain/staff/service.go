package staff

import "context"

// StaffService defines business logic for roster operations
type StaffService interface {
	CreateStaff(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetStaff(ctx context.Context, id string) (StaffResponse, error)
	ListStaff(ctx context.Context) ([]StaffResponse, error)
	UpdateStaff(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)
}
