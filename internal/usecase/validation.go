package usecase

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/jam-league/internal/domain/player"
	"github.com/riskibarqy/jam-league/internal/domain/staff"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if label := field.Tag.Get("label"); label != "" {
			return label
		}
		return field.Name
	})
	mustRegister(v, "capitalized", validateCapitalized)
	mustRegister(v, "clock", validateClock)
	mustRegister(v, "record_id", validateRecordID)

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %s: %v", tag, err))
	}
}

func validateCapitalized(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, r := range value {
		return unicode.IsUpper(r)
	}
	return false
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := civil.ParseClock(fl.Field().String())
	return err == nil
}

// validateRecordID checks an id against the range of the record kind held in
// the sibling Kind field.
func validateRecordID(fl validator.FieldLevel) bool {
	kind := fl.Parent().FieldByName("Kind")
	if !kind.IsValid() {
		return false
	}
	id := int(fl.Field().Int())
	switch RecordKind(kind.String()) {
	case RecordPlayer:
		return id > player.MinID && id < player.MaxID
	case RecordOfficial:
		return id > staff.OfficialMinID && id < staff.OfficialMaxID
	case RecordCoordinator:
		return id > staff.CoordinatorMinID && id < staff.CoordinatorMaxID
	default:
		return false
	}
}

func validateInput(ctx context.Context, payload any) error {
	if err := inputValidator.StructCtx(ctx, payload); err != nil {
		return validationError(err)
	}
	return nil
}

// validateInputField validates only the named struct fields of payload.
func validateInputField(ctx context.Context, payload any, fields ...string) error {
	if err := inputValidator.StructPartialCtx(ctx, payload, fields...); err != nil {
		return validationError(err)
	}
	return nil
}

func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, describeFieldError(fieldErrs[0]))
	}
	return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
}

func describeFieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain digits only"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "capitalized":
		return field + " must start with an uppercase letter"
	case "contains":
		return fmt.Sprintf("%s must contain %q", field, fe.Param())
	case "startsnotwith":
		return fmt.Sprintf("%s must not start with %q", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be formatted %s", field, humanLayout(fe.Param()))
	case "clock":
		return field + " must be formatted HH:MM"
	case "record_id", "gt", "lt", "gte", "lte":
		return fmt.Sprintf("%s %v is out of range", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

func humanLayout(layout string) string {
	return strings.NewReplacer("2006", "YYYY", "01", "MM", "02", "DD").Replace(layout)
}
