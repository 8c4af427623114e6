package usecase

import (
	"context"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	announcementmock "github.com/riskibarqy/jam-league/internal/mocks/domain/announcement"
	gamemock "github.com/riskibarqy/jam-league/internal/mocks/domain/game"
)

var gameToday = time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)

func newMemoryGameService(db *memory.Database) *GameService {
	svc := NewGameService(memory.NewGameRepository(db), memory.NewAnnouncementRepository(db), time.UTC, logging.NewNop())
	svc.now = func() time.Time { return gameToday.Add(9 * time.Hour) }
	return svc
}

func TestGameService_CancelAndAnnounce(t *testing.T) {
	ctx := context.Background()
	db := memory.NewSeededDatabase(gameToday)
	svc := newMemoryGameService(db)

	upcoming, err := svc.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if len(upcoming) != 3 {
		t.Fatalf("expected 3 upcoming games, got %d", len(upcoming))
	}

	target := upcoming[0]
	if err := svc.Cancel(ctx, target); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.Cancel(ctx, target); !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for second cancel, got %v", err)
	}

	msg := announcement.CancelledMessage(target)
	if err := svc.Announce(ctx, AnnouncementInput{ID: 1000001, Message: msg}); err != nil {
		t.Fatalf("announce: %v", err)
	}
	stored := db.Announcements()
	if len(stored) != 1 || stored[0].Message != msg || !stored[0].SentDate.Equal(gameToday) {
		t.Fatalf("unexpected announcement: %+v", stored)
	}
	if err := svc.Announce(ctx, AnnouncementInput{ID: 1000001, Message: msg}); !crerr.Is(err, ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if err := svc.Announce(ctx, AnnouncementInput{ID: 2000000, Message: msg}); !crerr.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for id at upper bound, got %v", err)
	}
}

func TestGameService_Reschedule(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryGameService(memory.NewSeededDatabase(gameToday))

	upcoming, err := svc.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}

	to, err := svc.Reschedule(ctx, upcoming[2], RescheduleInput{Date: "2025-06-01", Clock: "9:15"})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if to.Clock != "09:15" {
		t.Fatalf("clock not normalized: %s", to.Clock)
	}

	after, err := svc.ListUpcoming(ctx)
	if err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
	if last := after[len(after)-1]; last.Clock != "09:15" || last.Home != upcoming[2].Home {
		t.Fatalf("moved game not found at new slot: %+v", last)
	}

	for _, in := range []RescheduleInput{
		{Date: "2025-6-1", Clock: "10:00"},
		{Date: "2025-06-01", Clock: "24:00"},
		{Date: "2025-06-01", Clock: "7pm"},
	} {
		if _, err := svc.Reschedule(ctx, upcoming[0], in); !crerr.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestGameService_ListUpcomingUsesCivilTodayUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gameRepo := gamemock.NewRepository(t)
	svc := NewGameService(gameRepo, announcementmock.NewRepository(t), time.UTC, logging.NewNop())
	svc.now = func() time.Time { return time.Date(2025, time.April, 20, 23, 59, 0, 0, time.UTC) }

	gameRepo.On("ListAfter", mock.Anything, gameToday).Return([]game.Game{}, nil).Once()

	if _, err := svc.ListUpcoming(ctx); err != nil {
		t.Fatalf("list upcoming: %v", err)
	}
}
