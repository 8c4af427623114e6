package console

import (
	"context"
	"strconv"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

type registrationStep struct {
	field  string
	prompt string
	set    func(in *usecase.RegistrationInput, raw string) bool
}

var recordKindTitles = map[usecase.RecordKind]string{
	usecase.RecordPlayer:      "Player",
	usecase.RecordOfficial:    "Official",
	usecase.RecordCoordinator: "Coordinator",
}

func (r *Records) register(ctx context.Context) error {
	r.heading("Add a Record")
	r.prompter.Println("What type of record would you like to add?")
	r.prompter.Println("1 - Player")
	r.prompter.Println("2 - Official")
	r.prompter.Println("3 - Coordinator")

	choice, err := r.prompter.Int("Make your selection: ")
	if err != nil {
		return err
	}

	var kind usecase.RecordKind
	switch choice {
	case 1:
		kind = usecase.RecordPlayer
	case 2:
		kind = usecase.RecordOfficial
	case 3:
		kind = usecase.RecordCoordinator
	default:
		r.prompter.Println("That was an inappropriate choice. Please try again.")
		return nil
	}

	title := recordKindTitles[kind]
	r.prompter.Printf("We'll now begin to create a new %s.\n", title)

	input := usecase.RegistrationInput{Kind: kind}
	for _, step := range registrationSteps(kind) {
		raw, err := r.prompter.Line(step.prompt)
		if err != nil {
			return err
		}
		if !step.set(&input, raw) {
			r.prompter.Println("Not valid input. " + msgBackToMenu)
			return nil
		}
		if err := r.registration.CheckField(ctx, input, step.field); err != nil {
			return r.abandon(err)
		}
	}

	err = r.registration.Register(ctx, input)
	switch {
	case err == nil:
		r.prompter.Printf("Entered a new %s successfully.\n", title)
	case crerr.Is(err, usecase.ErrAlreadyExists):
		r.prompter.Println("A record already exists with this ID...")
	case crerr.Is(err, usecase.ErrInvalidInput):
		return r.abandon(err)
	default:
		r.prompter.Printf("Could not enter new %s.\n", title)
		return err
	}
	return nil
}

func registrationSteps(kind usecase.RecordKind) []registrationStep {
	steps := []registrationStep{
		{field: "ID", prompt: idPrompt(kind), set: func(in *usecase.RegistrationInput, raw string) bool {
			id, ok := parseID(raw)
			in.ID = id
			return ok
		}},
		{field: "Gender", prompt: "Enter a gender [m or f]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.Gender = raw
			return true
		}},
		{field: "LastName", prompt: "Enter a last name [up to 25 characters with first letter capital]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.LastName = raw
			return true
		}},
		{field: "FirstName", prompt: "Enter a first name [up to 25 characters with first letter capital]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.FirstName = raw
			return true
		}},
		{field: "Address", prompt: "Enter an address [up to 100 characters]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.Address = raw
			return true
		}},
		{field: "Phone", prompt: "Enter a phone number [10 digits]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.Phone = raw
			return true
		}},
		{field: "Email", prompt: "Enter an email [up to 50 characters]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.Email = raw
			return true
		}},
		{field: "Birthday", prompt: "Enter a birthday [YYYY-MM-DD]: ", set: func(in *usecase.RegistrationInput, raw string) bool {
			in.Birthday = raw
			return true
		}},
	}

	switch kind {
	case usecase.RecordOfficial:
		steps = append(steps, salaryStep("Enter an hourly salary: "))
	case usecase.RecordCoordinator:
		steps = append(steps, salaryStep("Enter a yearly salary: "))
	}
	return steps
}

func salaryStep(prompt string) registrationStep {
	return registrationStep{field: "Salary", prompt: prompt, set: func(in *usecase.RegistrationInput, raw string) bool {
		salary, err := strconv.Atoi(raw)
		in.Salary = salary
		return err == nil
	}}
}

func idPrompt(kind usecase.RecordKind) string {
	switch kind {
	case usecase.RecordOfficial:
		return "Enter an OID [between " + strconv.Itoa(staff.OfficialMinID) + " and " + strconv.Itoa(staff.OfficialMaxID) + "]: "
	case usecase.RecordCoordinator:
		return "Enter a CID [between " + strconv.Itoa(staff.CoordinatorMinID) + " and " + strconv.Itoa(staff.CoordinatorMaxID) + "]: "
	default:
		return "Enter a PID [between " + strconv.Itoa(player.MinID) + " and " + strconv.Itoa(player.MaxID) + "]: "
	}
}
