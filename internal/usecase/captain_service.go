package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
)

// PromotionInput carries the billing details a player needs to become a captain.
type PromotionInput struct {
	PlayerID       int    `label:"player ID" validate:"gt=260400000,lt=260500000"`
	BillingAddress string `label:"billing address" validate:"required,max=100"`
	CardNumber     string `label:"card number" validate:"numeric,len=16,startsnotwith=0"`
	CardHolder     string `label:"card holder" validate:"required,max=50"`
	Expiry         string `label:"expiry" validate:"datetime=2006-01"`
	CardType       string `label:"card type" validate:"required,max=25"`
}

type CaptainService struct {
	playerRepo  player.Repository
	captainRepo captain.Repository
	logger      *logging.Logger
}

func NewCaptainService(playerRepo player.Repository, captainRepo captain.Repository, logger *logging.Logger) *CaptainService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CaptainService{
		playerRepo:  playerRepo,
		captainRepo: captainRepo,
		logger:      logger,
	}
}

// ListEligible returns the players who are not captains yet.
func (s *CaptainService) ListEligible(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CaptainService.ListEligible")
	defer span.End()

	players, err := s.playerRepo.ListNonCaptains(ctx)
	if err != nil {
		return nil, storeError(err, "list non-captain players")
	}
	return players, nil
}

func (s *CaptainService) CheckField(ctx context.Context, input PromotionInput, field string) error {
	return validateInputField(ctx, normalizePromotion(input), field)
}

func (s *CaptainService) Promote(ctx context.Context, input PromotionInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CaptainService.Promote")
	defer span.End()

	input = normalizePromotion(input)
	if err := validateInput(ctx, input); err != nil {
		return err
	}

	eligible, err := s.playerRepo.ListNonCaptains(ctx)
	if err != nil {
		return storeError(err, "list non-captain players")
	}
	if !containsPlayer(eligible, input.PlayerID) {
		return fmt.Errorf("%w: player %d is not an eligible non-captain", ErrNotFound, input.PlayerID)
	}

	cardNumber, err := strconv.ParseInt(input.CardNumber, 10, 64)
	if err != nil || cardNumber < captain.MinCardNumber || cardNumber > captain.MaxCardNumber {
		return fmt.Errorf("%w: card number must be 16 digits", ErrInvalidInput)
	}
	expiry, err := civil.ParseMonth(input.Expiry)
	if err != nil {
		return fmt.Errorf("%w: expiry: %v", ErrInvalidInput, err)
	}

	err = s.captainRepo.Create(ctx, captain.Captain{
		PlayerID:       input.PlayerID,
		BillingAddress: input.BillingAddress,
		CardNumber:     cardNumber,
		CardHolder:     input.CardHolder,
		Expiry:         expiry,
		CardType:       input.CardType,
	})
	if err != nil {
		return storeError(err, "create captain")
	}

	s.logger.InfoContext(ctx, "player promoted to captain", "player_id", input.PlayerID)
	return nil
}

func containsPlayer(players []player.Player, id int) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}

func normalizePromotion(input PromotionInput) PromotionInput {
	input.BillingAddress = strings.TrimSpace(input.BillingAddress)
	input.CardNumber = strings.TrimSpace(input.CardNumber)
	input.CardHolder = strings.TrimSpace(input.CardHolder)
	input.Expiry = strings.TrimSpace(input.Expiry)
	input.CardType = strings.TrimSpace(input.CardType)
	return input
}
