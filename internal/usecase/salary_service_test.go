package usecase

import (
	"context"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	staffmock "github.com/riskibarqy/jam-league/internal/mocks/domain/staff"
)

func TestAdjustedSalary(t *testing.T) {
	cases := []struct {
		name    string
		old     int
		in      SalaryAdjustment
		want    int
		wantErr bool
	}{
		{name: "percent decrease", old: 50000, in: SalaryAdjustment{Percent: true, Amount: 10}, want: 45000},
		{name: "percent increase rounds", old: 25, in: SalaryAdjustment{Increase: true, Percent: true, Amount: 10}, want: 28},
		{name: "flat increase rounds", old: 30, in: SalaryAdjustment{Increase: true, Amount: 2.5}, want: 33},
		{name: "flat decrease to zero", old: 30, in: SalaryAdjustment{Amount: 30}, want: 0},
		{name: "decrease below zero", old: 30, in: SalaryAdjustment{Amount: 31}, wantErr: true},
		{name: "negative amount", old: 30, in: SalaryAdjustment{Increase: true, Amount: -1}, wantErr: true},
		{name: "increase up to column limit", old: 50000, in: SalaryAdjustment{Increase: true, Amount: float64(staff.MaxSalary - 50000)}, want: staff.MaxSalary},
		{name: "increase past column limit", old: 50000, in: SalaryAdjustment{Increase: true, Amount: float64(staff.MaxSalary - 49999)}, wantErr: true},
		{name: "huge flat increase", old: 50000, in: SalaryAdjustment{Increase: true, Amount: 1e19}, wantErr: true},
		{name: "huge percent increase", old: 50000, in: SalaryAdjustment{Increase: true, Percent: true, Amount: 1e30}, wantErr: true},
		{name: "huge decrease", old: 50000, in: SalaryAdjustment{Amount: 1e19}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AdjustedSalary(tc.old, tc.in)
			if tc.wantErr {
				if !crerr.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("adjust: %v", err)
			}
			if got != tc.want {
				t.Fatalf("AdjustedSalary() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSalaryService_AgainstMemoryStore(t *testing.T) {
	ctx := context.Background()
	db := memory.NewSeededDatabase(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := NewSalaryService(memory.NewStaffRepository(db), logging.NewNop())

	members, err := svc.ListStaff(ctx)
	if err != nil {
		t.Fatalf("list staff: %v", err)
	}
	if len(members) != 4 || members[0].Kind != staff.KindCoordinator || members[3].Kind != staff.KindOfficial {
		t.Fatalf("unexpected listing: %+v", members)
	}

	change, err := svc.Adjust(ctx, SalaryAdjustment{ID: staff.CoordinatorMinID + 1, Percent: true, Amount: 10})
	if err != nil {
		t.Fatalf("adjust coordinator: %v", err)
	}
	if change.Old != 50000 || change.New != 45000 || change.Member.Kind != staff.KindCoordinator {
		t.Fatalf("unexpected change: %+v", change)
	}

	change, err = svc.Adjust(ctx, SalaryAdjustment{ID: staff.OfficialMinID + 1, Increase: true, Amount: 5})
	if err != nil {
		t.Fatalf("adjust official: %v", err)
	}
	if change.New != 30 || change.Member.Kind != staff.KindOfficial {
		t.Fatalf("unexpected change: %+v", change)
	}

	if _, err := svc.Adjust(ctx, SalaryAdjustment{ID: staff.OfficialMinID + 99, Amount: 1}); !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSalaryService_NegativeResultNotWrittenUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := staffmock.NewRepository(t)
	svc := NewSalaryService(repo, logging.NewNop())

	repo.On("GetSalary", mock.Anything, staff.KindOfficial, staff.OfficialMinID+7).Return(20, true, nil).Once()

	if _, err := svc.Adjust(ctx, SalaryAdjustment{ID: staff.OfficialMinID + 7, Amount: 25}); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	repo.AssertNotCalled(t, "UpdateSalary", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
