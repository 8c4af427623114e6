package game

import (
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

// Slot identifies a game by the date and clock time it is played at.
type Slot struct {
	Date  time.Time
	Clock string
}

func (s Slot) String() string {
	return civil.FormatDate(s.Date) + " " + s.Clock
}

// Game is a scheduled match. Home and Away are zero when no teams have been
// assigned yet.
type Game struct {
	Slot
	Sport string
	Level string
	Home  team.Key
	Away  team.Key
}

func (g Game) HasTeams() bool {
	return g.Home.Name != "" && g.Away.Name != ""
}

// OnDate returns the games played on the calendar day of date.
func OnDate(games []Game, date time.Time) []Game {
	want := civil.FormatDate(date)
	out := make([]Game, 0, 1)
	for _, g := range games {
		if civil.FormatDate(g.Date) == want {
			out = append(out, g)
		}
	}
	return out
}
