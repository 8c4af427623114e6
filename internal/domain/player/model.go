package player

import (
	"strings"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/person"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

// Player ids live strictly between MinID and MaxID.
const (
	MinID = 260400000
	MaxID = 260500000
)

type Player struct {
	ID int
	person.Profile
}

// Field is a searchable player column, numbered the way the lookup menu
// lists them.
type Field int

const (
	FieldID Field = iota + 1
	FieldGender
	FieldLastName
	FieldFirstName
	FieldAddress
	FieldPhone
	FieldEmail
	FieldBirthday
	FieldDateCreated
)

var AllFields = []Field{
	FieldID,
	FieldGender,
	FieldLastName,
	FieldFirstName,
	FieldAddress,
	FieldPhone,
	FieldEmail,
	FieldBirthday,
	FieldDateCreated,
}

// ParseField maps a menu digit to its field.
func ParseField(digit rune) (Field, bool) {
	f := Field(digit - '0')
	if f < FieldID || f > FieldDateCreated {
		return 0, false
	}
	return f, true
}

func (f Field) Column() string {
	switch f {
	case FieldID:
		return "pid"
	case FieldGender:
		return "gender"
	case FieldLastName:
		return "lname"
	case FieldFirstName:
		return "fname"
	case FieldAddress:
		return "address"
	case FieldPhone:
		return "phonenumber"
	case FieldEmail:
		return "email"
	case FieldBirthday:
		return "birthday"
	case FieldDateCreated:
		return "datecreated"
	default:
		return ""
	}
}

func (f Field) Label() string {
	switch f {
	case FieldID:
		return "Player ID"
	case FieldGender:
		return "Gender"
	case FieldLastName:
		return "Last name"
	case FieldFirstName:
		return "First name"
	case FieldAddress:
		return "Address"
	case FieldPhone:
		return "Phone number"
	case FieldEmail:
		return "Email"
	case FieldBirthday:
		return "Birthday"
	case FieldDateCreated:
		return "Date created"
	default:
		return "Unknown"
	}
}

// Criterion is one equality filter of a lookup. Value is an int for
// FieldID, a civil date for the date fields and a string otherwise.
type Criterion struct {
	Field Field
	Value any
}

func (c Criterion) Matches(p Player) bool {
	switch c.Field {
	case FieldID:
		v, ok := c.Value.(int)
		return ok && v == p.ID
	case FieldBirthday:
		return sameDay(c.Value, p.Birthday)
	case FieldDateCreated:
		return sameDay(c.Value, p.DateCreated)
	}

	v, ok := c.Value.(string)
	if !ok {
		return false
	}
	switch c.Field {
	case FieldGender:
		return strings.EqualFold(v, p.Gender)
	case FieldLastName:
		return v == p.LastName
	case FieldFirstName:
		return v == p.FirstName
	case FieldAddress:
		return v == p.Address
	case FieldPhone:
		return v == p.Phone
	case FieldEmail:
		return v == p.Email
	default:
		return false
	}
}

func sameDay(value any, t time.Time) bool {
	v, ok := value.(time.Time)
	if !ok {
		return false
	}
	return civil.FormatDate(v) == civil.FormatDate(t)
}
