package postgres

import (
	"database/sql"

	"github.com/riskibarqy/jam-league/internal/domain/team"
)

type teamRosterModel struct {
	Name       string        `db:"name"`
	Year       int           `db:"syear"`
	Sport      string        `db:"sport"`
	Level      string        `db:"llevel"`
	RosterSize int           `db:"roster_size"`
	MinPlayers sql.NullInt64 `db:"min_players"`
}

func (m teamRosterModel) toDomain() team.Roster {
	return team.Roster{
		Team:       team.Team{Key: team.Key{Name: m.Name, Year: m.Year, Sport: m.Sport, Level: m.Level}},
		Size:       m.RosterSize,
		MinPlayers: nullInt64ToInt(m.MinPlayers),
		HasMinimum: m.MinPlayers.Valid,
	}
}
