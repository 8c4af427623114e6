package postgres

import (
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/person"
	"github.com/riskibarqy/jam-league/internal/domain/player"
)

// profileColumns are shared by player, official and coordinator.
type profileColumns struct {
	Gender      string    `db:"gender"`
	LastName    string    `db:"lname"`
	FirstName   string    `db:"fname"`
	Address     string    `db:"address"`
	Phone       string    `db:"phonenumber"`
	Email       string    `db:"email"`
	Birthday    time.Time `db:"birthday"`
	DateCreated time.Time `db:"datecreated"`
}

func profileFromDomain(p person.Profile) profileColumns {
	return profileColumns{
		Gender:      p.Gender,
		LastName:    p.LastName,
		FirstName:   p.FirstName,
		Address:     p.Address,
		Phone:       p.Phone,
		Email:       p.Email,
		Birthday:    p.Birthday,
		DateCreated: p.DateCreated,
	}
}

func (c profileColumns) toDomain() person.Profile {
	return person.Profile{
		Gender:      c.Gender,
		LastName:    c.LastName,
		FirstName:   c.FirstName,
		Address:     c.Address,
		Phone:       c.Phone,
		Email:       c.Email,
		Birthday:    c.Birthday,
		DateCreated: c.DateCreated,
	}
}

type playerTableModel struct {
	ID int `db:"pid"`
	profileColumns
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{ID: m.ID, Profile: m.profileColumns.toDomain()}
}
