package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/person"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

type RecordKind string

const (
	RecordPlayer      RecordKind = "player"
	RecordOfficial    RecordKind = "official"
	RecordCoordinator RecordKind = "coordinator"
)

// RegistrationInput holds one new player, official or coordinator. Salary
// is hourly for officials, yearly for coordinators and ignored for players.
type RegistrationInput struct {
	Kind      RecordKind `label:"record type" validate:"oneof=player official coordinator"`
	ID        int        `label:"ID" validate:"record_id"`
	Gender    string     `label:"gender" validate:"oneof=m f"`
	LastName  string     `label:"last name" validate:"required,max=25,capitalized"`
	FirstName string     `label:"first name" validate:"required,max=25,capitalized"`
	Address   string     `label:"address" validate:"required,max=100"`
	Phone     string     `label:"phone number" validate:"numeric,len=10"`
	Email     string     `label:"email" validate:"required,max=50,contains=@,contains=."`
	Birthday  string     `label:"birthday" validate:"datetime=2006-01-02"`
	Salary    int        `label:"salary" validate:"gte=0"`
}

type RegistrationService struct {
	playerRepo player.Repository
	staffRepo  staff.Repository
	location   *time.Location
	logger     *logging.Logger
	now        func() time.Time
}

func NewRegistrationService(playerRepo player.Repository, staffRepo staff.Repository, location *time.Location, logger *logging.Logger) *RegistrationService {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &RegistrationService{
		playerRepo: playerRepo,
		staffRepo:  staffRepo,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// CheckField validates a single field of a partially filled input, named by
// its Go field name.
func (s *RegistrationService) CheckField(ctx context.Context, input RegistrationInput, field string) error {
	return validateInputField(ctx, normalizeRegistration(input), field)
}

func (s *RegistrationService) Register(ctx context.Context, input RegistrationInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.RegistrationService.Register")
	defer span.End()

	input = normalizeRegistration(input)
	if err := validateInput(ctx, input); err != nil {
		return err
	}

	birthday, err := civil.ParseDate(input.Birthday)
	if err != nil {
		return fmt.Errorf("%w: birthday: %v", ErrInvalidInput, err)
	}
	profile := person.Profile{
		Gender:      input.Gender,
		LastName:    input.LastName,
		FirstName:   input.FirstName,
		Address:     input.Address,
		Phone:       input.Phone,
		Email:       input.Email,
		Birthday:    birthday,
		DateCreated: civil.Date(s.now(), s.location),
	}

	switch input.Kind {
	case RecordPlayer:
		err = s.playerRepo.Create(ctx, player.Player{ID: input.ID, Profile: profile})
	case RecordOfficial:
		err = s.staffRepo.CreateOfficial(ctx, staff.Official{ID: input.ID, Profile: profile, HourlySalary: input.Salary})
	case RecordCoordinator:
		err = s.staffRepo.CreateCoordinator(ctx, staff.Coordinator{ID: input.ID, Profile: profile, YearlySalary: input.Salary})
	}
	if err != nil {
		err = storeError(err, "create "+string(input.Kind))
		if crerr.Is(err, ErrAlreadyExists) {
			return crerr.WithMessage(err, "a record already exists with this ID")
		}
		return err
	}

	s.logger.InfoContext(ctx, "record registered", "kind", input.Kind, "id", input.ID)
	return nil
}

func normalizeRegistration(input RegistrationInput) RegistrationInput {
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
	input.LastName = strings.TrimSpace(input.LastName)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Birthday = strings.TrimSpace(input.Birthday)
	return input
}
