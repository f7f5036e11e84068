package staff

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/autodazzle/detailing-backend-go/internal/domain/staff"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

func (s *StaffServiceImpl) CreateStaff(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	advance := decimal.Zero
	if req.CurrentAdvance != nil {
		advance = *req.CurrentAdvance
	}
	loan := decimal.Zero
	if req.LoanBalance != nil {
		loan = *req.LoanBalance
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{
		FullName:       req.FullName,
		Role:           staff.Role(req.Role),
		PhoneNumber:    req.PhoneNumber,
		BaseSalary:     req.BaseSalary,
		CurrentAdvance: advance,
		LoanBalance:    loan,
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *StaffServiceImpl) GetStaff(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return mapToResponse(member), nil
}

func (s *StaffServiceImpl) ListStaff(ctx context.Context) ([]staff.StaffResponse, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]staff.StaffResponse, 0, len(members))
	for _, member := range members {
		result = append(result, mapToResponse(member))
	}
	return result, nil
}

func (s *StaffServiceImpl) UpdateStaff(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.staffRepo.Update(ctx, req); err != nil {
		return staff.StaffResponse{}, err
	}

	return s.GetStaff(ctx, req.ID)
}

func mapToResponse(member staff.Staff) staff.StaffResponse {
	return staff.StaffResponse{
		ID:             member.ID,
		FullName:       member.FullName,
		Role:           string(member.Role),
		PhoneNumber:    member.PhoneNumber,
		BaseSalary:     member.BaseSalary,
		CurrentAdvance: member.CurrentAdvance,
		LoanBalance:    member.LoanBalance,
	}
}
