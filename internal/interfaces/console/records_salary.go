package console

import (
	"context"
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/usecase"
)

func (r *Records) alterSalary(ctx context.Context) error {
	r.heading("Alter Employee Salary")

	members, err := r.salaries.ListStaff(ctx)
	if err != nil {
		return err
	}
	if len(members) == 0 {
		r.prompter.Println("There are no coordinators or officials in the database.")
		return nil
	}
	if err := renderStaff(r.prompter.Writer(), members); err != nil {
		return err
	}

	id, err := r.pickID("Enter the ID of the Coordinator or Official whose salary you would like to change (0 to cancel):", func(id int) bool {
		_, ok := findMember(members, id)
		return ok
	})
	if err != nil || id == 0 {
		return err
	}
	member, _ := findMember(members, id)

	increase, err := r.choose("Would you like to increase[i] or decrease[d] their salary?", "i", "d")
	if err != nil {
		return err
	}
	direction := "decrease"
	if increase {
		direction = "increase"
	}

	flat, err := r.choose("Would you like to "+direction+" the salary by a flat rate[f] or by a percentage[p]?", "f", "p")
	if err != nil {
		return err
	}
	prompt := "By how much would you like to " + direction + " the salary (per " + salaryPeriod(member.Kind) + ")?"
	if !flat {
		prompt = "By what percentage would you like to " + direction + " the salary (per " + salaryPeriod(member.Kind) + ")?"
	}

	var amount float64
	for {
		raw, err := r.prompter.Line(prompt)
		if err != nil {
			return err
		}
		amount, err = strconv.ParseFloat(raw, 64)
		if err == nil && amount >= 0 {
			break
		}
		r.prompter.Println("Please enter a positive value.")
	}

	change, err := r.salaries.Adjust(ctx, usecase.SalaryAdjustment{
		ID:       member.ID,
		Increase: increase,
		Percent:  !flat,
		Amount:   amount,
	})
	switch {
	case err == nil:
		r.prompter.Printf("Salary successfully updated. New salary = $%d/%s\n", change.New, salaryPeriod(member.Kind))
	case crerr.Is(err, usecase.ErrInvalidInput), crerr.Is(err, usecase.ErrNotFound):
		r.prompter.Println("Update failed. " + sentence(describeError(err)))
	default:
		r.prompter.Println("Update failed.")
		return err
	}
	return nil
}

// choose reprompts until yes or no is typed and reports whether it was yes.
func (r *Records) choose(prompt, yes, no string) (bool, error) {
	for {
		raw, err := r.prompter.Line(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case yes:
			return true, nil
		case no:
			return false, nil
		}
		r.prompter.Printf("Please input '%s' or '%s'\n", yes, no)
	}
}

func findMember(members []staff.Member, id int) (staff.Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}
	return staff.Member{}, false
}

func salaryPeriod(kind staff.Kind) string {
	if kind == staff.KindCoordinator {
		return "year"
	}
	return "hour"
}
