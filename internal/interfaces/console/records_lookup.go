package console

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

func (r *Records) lookup(ctx context.Context) error {
	r.heading("Player Lookup")
	if err := renderLookupFields(r.prompter.Writer()); err != nil {
		return err
	}

	raw, err := r.prompter.Line("Make your selection: ")
	if err != nil {
		return err
	}
	selection, err := usecase.ParseLookupSelection(raw)
	if err != nil {
		r.prompter.Println("That was an incorrect selection. Not executing the lookup.")
		return nil
	}

	filters := make([]usecase.LookupFilter, 0, len(selection.Fields))
	values := make(map[player.Field]string, len(selection.Fields))
	for _, f := range selection.Fields {
		value, err := r.prompter.Line(lookupPrompt(f))
		if err != nil {
			return err
		}
		values[f] = value
		filters = append(filters, usecase.LookupFilter{Field: f, Value: value})
	}
	for _, f := range selection.Repeated {
		r.prompter.Printf("You can't search for two values for the same attribute, using %s\n", values[f])
	}

	players, err := r.players.Lookup(ctx, filters)
	if crerr.Is(err, usecase.ErrInvalidInput) {
		return r.abandon(err)
	}
	if err != nil {
		return err
	}
	if len(players) == 0 {
		r.prompter.Println("No records exist for your specifications. Try again with a coarser search.")
		r.prompter.Println("Perhaps your input was incorrect in some way?")
		return nil
	}

	return renderPlayers(r.prompter.Writer(), players)
}

func lookupPrompt(f player.Field) string {
	switch f {
	case player.FieldBirthday, player.FieldDateCreated:
		return fmt.Sprintf("Enter a %s to search (YYYY-MM-DD): ", f.Label())
	default:
		return fmt.Sprintf("Enter a %s to search: ", f.Label())
	}
}
