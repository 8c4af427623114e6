package usecase

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

// SalaryAdjustment raises or lowers one salary by a flat amount or a
// percentage of the current value.
type SalaryAdjustment struct {
	ID       int     `label:"ID" validate:"gt=0"`
	Increase bool    `label:"direction"`
	Percent  bool    `label:"mode"`
	Amount   float64 `label:"amount" validate:"gte=0"`
}

type SalaryChange struct {
	Member staff.Member
	Old    int
	New    int
}

type SalaryService struct {
	staffRepo staff.Repository
	logger    *logging.Logger
}

func NewSalaryService(staffRepo staff.Repository, logger *logging.Logger) *SalaryService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SalaryService{staffRepo: staffRepo, logger: logger}
}

// ListStaff returns coordinators first, then officials, each ordered by id.
func (s *SalaryService) ListStaff(ctx context.Context) ([]staff.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SalaryService.ListStaff")
	defer span.End()

	coordinators, err := s.staffRepo.ListCoordinators(ctx)
	if err != nil {
		return nil, storeError(err, "list coordinators")
	}
	officials, err := s.staffRepo.ListOfficials(ctx)
	if err != nil {
		return nil, storeError(err, "list officials")
	}

	members := make([]staff.Member, 0, len(coordinators)+len(officials))
	for _, c := range coordinators {
		members = append(members, staff.Member{ID: c.ID, Kind: staff.KindCoordinator, Name: c.FullName(), Salary: c.YearlySalary})
	}
	coordinatorCount := len(members)
	for _, o := range officials {
		members = append(members, staff.Member{ID: o.ID, Kind: staff.KindOfficial, Name: o.FullName(), Salary: o.HourlySalary})
	}
	slices.SortStableFunc(members[:coordinatorCount], compareMemberID)
	slices.SortStableFunc(members[coordinatorCount:], compareMemberID)

	return members, nil
}

func (s *SalaryService) Adjust(ctx context.Context, input SalaryAdjustment) (SalaryChange, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SalaryService.Adjust")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return SalaryChange{}, err
	}

	kind := staff.KindForID(input.ID)
	old, ok, err := s.staffRepo.GetSalary(ctx, kind, input.ID)
	if err != nil {
		return SalaryChange{}, storeError(err, "get salary")
	}
	if !ok {
		return SalaryChange{}, fmt.Errorf("%w: %s %d", ErrNotFound, kind, input.ID)
	}

	updated, err := AdjustedSalary(old, input)
	if err != nil {
		return SalaryChange{}, err
	}

	found, err := s.staffRepo.UpdateSalary(ctx, kind, input.ID, updated)
	if err != nil {
		return SalaryChange{}, storeError(err, "update salary")
	}
	if !found {
		return SalaryChange{}, fmt.Errorf("%w: %s %d", ErrNotFound, kind, input.ID)
	}

	s.logger.InfoContext(ctx, "salary adjusted", "kind", kind, "id", input.ID, "old", old, "new", updated)
	return SalaryChange{
		Member: staff.Member{ID: input.ID, Kind: kind, Salary: updated},
		Old:    old,
		New:    updated,
	}, nil
}

func compareMemberID(a, b staff.Member) int {
	return a.ID - b.ID
}

// AdjustedSalary applies an adjustment to old. Results below zero or above
// staff.MaxSalary are rejected.
func AdjustedSalary(old int, input SalaryAdjustment) (int, error) {
	if input.Amount < 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return 0, fmt.Errorf("%w: amount must be a non-negative number", ErrInvalidInput)
	}

	delta := input.Amount
	if input.Percent {
		delta = float64(old) * input.Amount / 100
	}
	step := math.Round(delta)
	if !input.Increase {
		step = -step
	}

	updated := float64(old) + step
	if updated < 0 {
		return 0, fmt.Errorf("%w: salary cannot drop below zero (current %d)", ErrInvalidInput, old)
	}
	if updated > staff.MaxSalary {
		return 0, fmt.Errorf("%w: salary cannot exceed %d (current %d)", ErrInvalidInput, staff.MaxSalary, old)
	}
	return int(updated), nil
}
