package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

type RescheduleInput struct {
	Date  string `label:"date" validate:"datetime=2006-01-02"`
	Clock string `label:"time" validate:"clock"`
}

type AnnouncementInput struct {
	ID      int    `label:"message ID" validate:"gt=1000000,lt=2000000"`
	Message string `label:"message" validate:"required,max=255"`
}

type GameService struct {
	gameRepo         game.Repository
	announcementRepo announcement.Repository
	location         *time.Location
	logger           *logging.Logger
	now              func() time.Time
}

func NewGameService(gameRepo game.Repository, announcementRepo announcement.Repository, location *time.Location, logger *logging.Logger) *GameService {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		gameRepo:         gameRepo,
		announcementRepo: announcementRepo,
		location:         location,
		logger:           logger,
		now:              time.Now,
	}
}

// ListUpcoming returns games scheduled strictly after today.
func (s *GameService) ListUpcoming(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListUpcoming")
	defer span.End()

	games, err := s.gameRepo.ListAfter(ctx, s.today())
	if err != nil {
		return nil, storeError(err, "list upcoming games")
	}
	return games, nil
}

// Cancel deletes the game. Team assignments and officiating rows go with it.
func (s *GameService) Cancel(ctx context.Context, g game.Game) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Cancel")
	defer span.End()

	found, err := s.gameRepo.Delete(ctx, g.Slot)
	if err != nil {
		return storeError(err, "delete game")
	}
	if !found {
		return fmt.Errorf("%w: game at %s", ErrNotFound, g.Slot)
	}

	s.logger.InfoContext(ctx, "game cancelled", "date", civil.FormatDate(g.Date), "time", g.Clock)
	return nil
}

func (s *GameService) CheckReschedule(ctx context.Context, input RescheduleInput, field string) error {
	return validateInputField(ctx, input, field)
}

// Reschedule moves the game to a new slot and returns it.
func (s *GameService) Reschedule(ctx context.Context, g game.Game, input RescheduleInput) (game.Slot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Reschedule")
	defer span.End()

	input.Date = strings.TrimSpace(input.Date)
	input.Clock = strings.TrimSpace(input.Clock)
	if err := validateInput(ctx, input); err != nil {
		return game.Slot{}, err
	}

	date, err := civil.ParseDate(input.Date)
	if err != nil {
		return game.Slot{}, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}
	clock, err := civil.ParseClock(input.Clock)
	if err != nil {
		return game.Slot{}, fmt.Errorf("%w: time: %v", ErrInvalidInput, err)
	}
	to := game.Slot{Date: date, Clock: clock}

	found, err := s.gameRepo.Reschedule(ctx, g.Slot, to)
	if err != nil {
		return game.Slot{}, storeError(err, "reschedule game")
	}
	if !found {
		return game.Slot{}, fmt.Errorf("%w: game at %s", ErrNotFound, g.Slot)
	}

	s.logger.InfoContext(ctx, "game rescheduled", "from", g.Slot.String(), "to", to.String())
	return to, nil
}

// Announce records a captains' announcement sent today.
func (s *GameService) Announce(ctx context.Context, input AnnouncementInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.Announce")
	defer span.End()

	if err := validateInput(ctx, input); err != nil {
		return err
	}

	err := s.announcementRepo.Create(ctx, announcement.Announcement{
		ID:       input.ID,
		Message:  input.Message,
		SentDate: s.today(),
	})
	if err != nil {
		return storeError(err, "create announcement")
	}

	s.logger.InfoContext(ctx, "announcement recorded", "id", input.ID)
	return nil
}

func (s *GameService) today() time.Time {
	return civil.Date(s.now(), s.location)
}
