package console

import (
	"context"
	"strconv"
	"strings"

	"github.com/riskibarqy/jam-league/internal/platform/logging"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

const (
	RecordsExitKey = 6

	msgBackToMenu = "Back to main menu."
)

// Records is the record administration console.
type Records struct {
	players      *usecase.PlayerService
	registration *usecase.RegistrationService
	captains     *usecase.CaptainService
	games        *usecase.GameService
	salaries     *usecase.SalaryService
	prompter     *Prompter
	logger       *logging.Logger
}

func NewRecords(
	players *usecase.PlayerService,
	registration *usecase.RegistrationService,
	captains *usecase.CaptainService,
	games *usecase.GameService,
	salaries *usecase.SalaryService,
	prompter *Prompter,
	logger *logging.Logger,
) *Records {
	if logger == nil {
		logger = logging.Default()
	}

	return &Records{
		players:      players,
		registration: registration,
		captains:     captains,
		games:        games,
		salaries:     salaries,
		prompter:     prompter,
		logger:       logger,
	}
}

func (r *Records) Menu() Menu {
	return Menu{
		Name:   "Records",
		Banner: []string{"Welcome to JAM Sports and Rec.", "Please select one of the following:"},
		Items: []Item{
			{Key: 1, Name: "Lookup", Label: "Look up registration information of a player", Run: r.lookup},
			{Key: 2, Name: "Register", Label: "Add a new player, coordinator, or official", Run: r.register},
			{Key: 3, Name: "Promote", Label: "Promote player to captain", Run: r.promote},
			{Key: 4, Name: "Games", Label: "Cancel/Reschedule an upcoming game", Run: r.manageGame},
			{Key: 5, Name: "Salary", Label: "Alter employee salary", Run: r.alterSalary},
		},
		ExitKey:  RecordsExitKey,
		ExitText: "Exit Application",
		Farewell: "Exiting Now. Thank you for using JAM.",
	}
}

func (r *Records) Run(ctx context.Context) error {
	return r.Menu().Run(ctx, r.prompter, r.logger)
}

func (r *Records) heading(title string) {
	r.prompter.Println()
	r.prompter.Println(menuRule)
	r.prompter.Println(title)
	r.prompter.Println(menuRule)
}

// abandon reports an invalid answer and ends the current operation.
func (r *Records) abandon(err error) error {
	r.prompter.Println(sentence(describeError(err)) + " " + msgBackToMenu)
	return nil
}

// askUntilValid reprompts until set accepts the answer and check passes.
func (r *Records) askUntilValid(prompt string, set func(string), check func() error) error {
	for {
		line, err := r.prompter.Line(prompt)
		if err != nil {
			return err
		}
		set(line)
		if err := check(); err != nil {
			r.prompter.Println(sentence(describeError(err)) + " Please try again.")
			continue
		}
		return nil
	}
}

// pickID reprompts until valid reports true for the entered id. Zero
// cancels and is returned as is.
func (r *Records) pickID(prompt string, valid func(int) bool) (int, error) {
	for {
		id, err := r.prompter.Int(prompt)
		if err != nil {
			return 0, err
		}
		if id == 0 || valid(id) {
			return id, nil
		}
		r.prompter.Println("Please select a valid ID")
	}
}

func sentence(msg string) string {
	if strings.HasSuffix(msg, ".") {
		return msg
	}
	return msg + "."
}

func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	return id, err == nil
}
