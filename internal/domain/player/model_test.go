package player

import (
	"testing"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/person"
)

func TestParseField(t *testing.T) {
	f, ok := ParseField('3')
	if !ok || f != FieldLastName || f.Column() != "lname" {
		t.Fatalf("unexpected field for '3': %v %v", f, ok)
	}
	for _, r := range []rune{'0', 'a', ':'} {
		if _, ok := ParseField(r); ok {
			t.Fatalf("expected %q to be rejected", r)
		}
	}
}

func TestCriterionMatches(t *testing.T) {
	p := Player{
		ID: 260400001,
		Profile: person.Profile{
			Gender:    "f",
			LastName:  "Smith",
			FirstName: "Ann",
			Birthday:  time.Date(1999, 4, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	cases := []struct {
		name string
		c    Criterion
		want bool
	}{
		{name: "id", c: Criterion{Field: FieldID, Value: 260400001}, want: true},
		{name: "id mismatch", c: Criterion{Field: FieldID, Value: 260400002}, want: false},
		{name: "gender case", c: Criterion{Field: FieldGender, Value: "F"}, want: true},
		{name: "last name", c: Criterion{Field: FieldLastName, Value: "Smith"}, want: true},
		{name: "first name case sensitive", c: Criterion{Field: FieldFirstName, Value: "ann"}, want: false},
		{name: "birthday", c: Criterion{Field: FieldBirthday, Value: time.Date(1999, 4, 2, 0, 0, 0, 0, time.UTC)}, want: true},
		{name: "wrong value type", c: Criterion{Field: FieldID, Value: "260400001"}, want: false},
	}
	for _, tc := range cases {
		if got := tc.c.Matches(p); got != tc.want {
			t.Fatalf("%s: Matches() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
