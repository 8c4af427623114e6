// Package person holds the contact profile shared by players, officials and
// coordinators.
package person

import "time"

const (
	GenderMale   = "m"
	GenderFemale = "f"
)

type Profile struct {
	Gender      string
	LastName    string
	FirstName   string
	Address     string
	Phone       string
	Email       string
	Birthday    time.Time
	DateCreated time.Time
}

func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}
