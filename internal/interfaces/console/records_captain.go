package console

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

func (r *Records) promote(ctx context.Context) error {
	r.heading("Promote a Captain")

	eligible, err := r.captains.ListEligible(ctx)
	if err != nil {
		return err
	}
	if len(eligible) == 0 {
		r.prompter.Println("There are no players available to be promoted to captain.")
		return nil
	}
	if err := renderEligiblePlayers(r.prompter.Writer(), eligible); err != nil {
		return err
	}

	id, err := r.pickID("Enter the ID of the player you would like to promote (0 to cancel):", func(id int) bool {
		return hasPlayer(eligible, id)
	})
	if err != nil || id == 0 {
		return err
	}

	input := usecase.PromotionInput{PlayerID: id}
	fields := []struct {
		field  string
		prompt string
		target *string
	}{
		{"BillingAddress", "Please enter the billing address of this player [up to 100 characters]:", &input.BillingAddress},
		{"CardNumber", "Please enter the player's card number (16 digits, must not begin with a zero):", &input.CardNumber},
		{"CardHolder", "Please enter the name of the card holder as printed on the card [up to 50 characters]:", &input.CardHolder},
		{"Expiry", "Card expiration date [YYYY-MM]: ", &input.Expiry},
		{"CardType", "Please enter the card type [up to 25 characters]:", &input.CardType},
	}
	for _, f := range fields {
		err := r.askUntilValid(f.prompt,
			func(raw string) { *f.target = raw },
			func() error { return r.captains.CheckField(ctx, input, f.field) },
		)
		if err != nil {
			return err
		}
	}

	err = r.captains.Promote(ctx, input)
	switch {
	case err == nil:
		r.prompter.Println("Player successfully promoted.")
	case crerr.Is(err, usecase.ErrInvalidInput), crerr.Is(err, usecase.ErrNotFound), crerr.Is(err, usecase.ErrAlreadyExists):
		r.prompter.Println("Promotion failed. " + sentence(describeError(err)))
	default:
		r.prompter.Println("Promotion failed.")
		return err
	}
	return nil
}

func hasPlayer(players []player.Player, id int) bool {
	for _, p := range players {
		if p.ID == id {
			return true
		}
	}
	return false
}
