package usecase

import (
	"context"
	"testing"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/jam-league/internal/platform/logging"
	captainmock "github.com/riskibarqy/jam-league/internal/mocks/domain/captain"
	playermock "github.com/riskibarqy/jam-league/internal/mocks/domain/player"
)

func validPromotion(playerID int) PromotionInput {
	return PromotionInput{
		PlayerID:       playerID,
		BillingAddress: "12 Main Street",
		CardNumber:     "4000123412341234",
		CardHolder:     "Ben Jones",
		Expiry:         "2027-11",
		CardType:       "Visa",
	}
}

func TestCaptainService_PromoteAgainstMemoryStore(t *testing.T) {
	ctx := context.Background()
	db := memory.NewSeededDatabase(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	svc := NewCaptainService(memory.NewPlayerRepository(db), memory.NewCaptainRepository(db), logging.NewNop())

	before, err := svc.ListEligible(ctx)
	if err != nil {
		t.Fatalf("list eligible: %v", err)
	}

	if err := svc.Promote(ctx, validPromotion(player.MinID+2)); err != nil {
		t.Fatalf("promote: %v", err)
	}

	after, err := svc.ListEligible(ctx)
	if err != nil {
		t.Fatalf("list eligible: %v", err)
	}
	if len(after) != len(before)-1 {
		t.Fatalf("promoted player still eligible: before=%d after=%d", len(before), len(after))
	}

	var stored captain.Captain
	for _, c := range db.Captains() {
		if c.PlayerID == player.MinID+2 {
			stored = c
		}
	}
	if stored.CardNumber != 4000123412341234 || !stored.Expiry.Equal(time.Date(2027, time.November, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected stored captain: %+v", stored)
	}

	if err := svc.Promote(ctx, validPromotion(player.MinID+2)); !crerr.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for existing captain, got %v", err)
	}
}

func TestCaptainService_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewCaptainService(playermock.NewRepository(t), captainmock.NewRepository(t), logging.NewNop())

	cases := []struct {
		name   string
		mutate func(*PromotionInput)
	}{
		{name: "card number starting with zero", mutate: func(in *PromotionInput) { in.CardNumber = "0123456789012345" }},
		{name: "card number too short", mutate: func(in *PromotionInput) { in.CardNumber = "412345" }},
		{name: "expiry month 13", mutate: func(in *PromotionInput) { in.Expiry = "2027-13" }},
		{name: "expiry with day", mutate: func(in *PromotionInput) { in.Expiry = "2027-01-01" }},
		{name: "holder too long", mutate: func(in *PromotionInput) { in.CardHolder = string(make([]byte, 51)) }},
		{name: "card type missing", mutate: func(in *PromotionInput) { in.CardType = " " }},
		{name: "player id out of range", mutate: func(in *PromotionInput) { in.PlayerID = 7 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validPromotion(player.MinID + 3)
			tc.mutate(&in)
			if err := svc.Promote(ctx, in); !crerr.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCaptainService_PromoteUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	playerRepo := playermock.NewRepository(t)
	captainRepo := captainmock.NewRepository(t)
	svc := NewCaptainService(playerRepo, captainRepo, logging.NewNop())

	playerRepo.On("ListNonCaptains", mock.Anything).Return([]player.Player{{ID: player.MinID + 4}}, nil).Once()
	captainRepo.
		On("Create", mock.Anything, mock.MatchedBy(func(c captain.Captain) bool {
			return c.PlayerID == player.MinID+4 && c.CardType == "Visa"
		})).
		Return(nil).
		Once()

	if err := svc.Promote(ctx, validPromotion(player.MinID+4)); err != nil {
		t.Fatalf("promote: %v", err)
	}
}
