package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/announcement"
	"github.com/riskibarqy/jam-league/internal/domain/captain"
	"github.com/riskibarqy/jam-league/internal/domain/game"
	"github.com/riskibarqy/jam-league/internal/domain/team"
)

type gameRowModel struct {
	Date   time.Time      `db:"gdate"`
	Clock  string         `db:"gclock"`
	Sport  string         `db:"sport"`
	Level  string         `db:"llevel"`
	Name1  sql.NullString `db:"name1"`
	Year1  sql.NullInt64  `db:"syear1"`
	Sport1 sql.NullString `db:"sport1"`
	Level1 sql.NullString `db:"llevel1"`
	Name2  sql.NullString `db:"name2"`
	Year2  sql.NullInt64  `db:"syear2"`
	Sport2 sql.NullString `db:"sport2"`
	Level2 sql.NullString `db:"llevel2"`
}

func (m gameRowModel) toDomain() game.Game {
	return game.Game{
		Slot:  game.Slot{Date: m.Date, Clock: m.Clock},
		Sport: m.Sport,
		Level: m.Level,
		Home: team.Key{
			Name:  nullStringValue(m.Name1),
			Year:  nullInt64ToInt(m.Year1),
			Sport: nullStringValue(m.Sport1),
			Level: nullStringValue(m.Level1),
		},
		Away: team.Key{
			Name:  nullStringValue(m.Name2),
			Year:  nullInt64ToInt(m.Year2),
			Sport: nullStringValue(m.Sport2),
			Level: nullStringValue(m.Level2),
		},
	}
}

type captainTableModel struct {
	PlayerID       int       `db:"cptnid"`
	BillingAddress string    `db:"billingaddress"`
	CardNumber     int64     `db:"cardnumber"`
	CardHolder     string    `db:"cardholder"`
	Expiry         time.Time `db:"expiry"`
	CardType       string    `db:"cardtype"`
}

func captainFromDomain(c captain.Captain) captainTableModel {
	return captainTableModel{
		PlayerID:       c.PlayerID,
		BillingAddress: c.BillingAddress,
		CardNumber:     c.CardNumber,
		CardHolder:     c.CardHolder,
		Expiry:         c.Expiry,
		CardType:       c.CardType,
	}
}

type announcementTableModel struct {
	ID       int       `db:"mid"`
	Message  string    `db:"message"`
	SentDate time.Time `db:"sentdate"`
}

func announcementFromDomain(a announcement.Announcement) announcementTableModel {
	return announcementTableModel{ID: a.ID, Message: a.Message, SentDate: a.SentDate}
}

type routineTableModel struct {
	Name        string    `db:"name"`
	InstalledAt time.Time `db:"installed_at"`
}
