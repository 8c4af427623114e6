package console

import (
	"context"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

const msgNotUpcoming = "That wasn't one of the upcoming games. " + msgBackToMenu

func (r *Records) manageGame(ctx context.Context) error {
	r.heading("Move or Delete a Game")

	games, err := r.games.ListUpcoming(ctx)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		r.prompter.Println("There are no upcoming games. Perhaps you should add some.")
		return nil
	}
	if err := renderGames(r.prompter.Writer(), games); err != nil {
		return err
	}

	r.prompter.Println("Would you like to delete or move an existing game from above?")
	r.prompter.Println("1 - Delete Game")
	r.prompter.Println("2 - Move Game")
	choice, err := r.prompter.Int("Make your selection: ")
	if err != nil {
		return err
	}
	if choice != 1 && choice != 2 {
		r.prompter.Println("Not valid input. " + msgBackToMenu)
		return nil
	}

	verb := "delete"
	if choice == 2 {
		verb = "modify"
	}
	r.prompter.Printf("Enter the date of the game you would like to %s from above.\n", verb)
	g, ok, err := r.chooseGame(games)
	if err != nil || !ok {
		return err
	}

	if choice == 1 {
		return r.cancelGame(ctx, g)
	}
	return r.moveGame(ctx, g)
}

// chooseGame asks for a date, then for a time when several games share it.
func (r *Records) chooseGame(games []game.Game) (game.Game, bool, error) {
	raw, err := r.prompter.Line("Date of Game (YYYY-MM-DD): ")
	if err != nil {
		return game.Game{}, false, err
	}
	date, err := civil.ParseDate(raw)
	if err != nil {
		r.prompter.Println("Not valid input. " + msgBackToMenu)
		return game.Game{}, false, nil
	}

	onDate := game.OnDate(games, date)
	switch len(onDate) {
	case 0:
		r.prompter.Println(msgNotUpcoming)
		return game.Game{}, false, nil
	case 1:
		return onDate[0], true, nil
	}

	raw, err = r.prompter.Line("Several games are played that day. Time of Game (HH:MM): ")
	if err != nil {
		return game.Game{}, false, err
	}
	clock, err := civil.ParseClock(raw)
	if err != nil {
		r.prompter.Println("Not valid input. " + msgBackToMenu)
		return game.Game{}, false, nil
	}
	for _, g := range onDate {
		if g.Clock == clock {
			return g, true, nil
		}
	}
	r.prompter.Println(msgNotUpcoming)
	return game.Game{}, false, nil
}

func (r *Records) cancelGame(ctx context.Context, g game.Game) error {
	if err := r.games.Cancel(ctx, g); err != nil {
		r.prompter.Println("Could not delete game.")
		return err
	}
	r.prompter.Println("Deleted game successfully.")

	if !g.HasTeams() {
		return nil
	}
	return r.announce(ctx, announcement.CancelledMessage(g))
}

func (r *Records) moveGame(ctx context.Context, g game.Game) error {
	var input usecase.RescheduleInput

	raw, err := r.prompter.Line("Enter a date to reschedule the game (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	input.Date = raw
	if err := r.games.CheckReschedule(ctx, input, "Date"); err != nil {
		r.prompter.Println("The date is not valid. Returning to main.")
		return nil
	}

	raw, err = r.prompter.Line("Enter a time to reschedule the game (HH:MM): ")
	if err != nil {
		return err
	}
	input.Clock = raw
	if err := r.games.CheckReschedule(ctx, input, "Clock"); err != nil {
		r.prompter.Println("The time is not valid. Returning to main.")
		return nil
	}

	to, err := r.games.Reschedule(ctx, g, input)
	if err != nil {
		r.prompter.Println("Could not move the game.")
		return err
	}
	r.prompter.Printf("Moved game to %s at %s.\n", civil.FormatDate(to.Date), to.Clock)

	if !g.HasTeams() {
		return nil
	}
	return r.announce(ctx, announcement.MovedMessage(g, to))
}

// announce optionally records message for the captains of the game.
func (r *Records) announce(ctx context.Context, message string) error {
	answer, err := r.prompter.Line("Would you like to notify the captains? [y/n]: ")
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		return nil
	}

	raw, err := r.prompter.Line("Input a message ID [between 1000000 and 2000000]: ")
	if err != nil {
		return err
	}
	id, ok := parseID(raw)
	if !ok {
		r.prompter.Println("Not valid input. Message ids are integers only. " + msgBackToMenu)
		return nil
	}

	if err := r.games.Announce(ctx, usecase.AnnouncementInput{ID: id, Message: message}); err != nil {
		return r.abandon(err)
	}
	r.prompter.Println("The following message was sent:")
	r.prompter.Println(message)
	r.prompter.Println("Message sent successfully.")
	return nil
}
