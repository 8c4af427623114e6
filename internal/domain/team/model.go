package team

import (
	"fmt"

	"github.com/riskibarqy/jam-league/internal/domain/season"
)

// Key identifies a team inside one season.
type Key struct {
	Name  string
	Year  int
	Sport string
	Level string
}

func (k Key) Season() season.Key {
	return season.Key{Year: k.Year, Sport: k.Sport, Level: k.Level}
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%d %s/%s)", k.Name, k.Year, k.Sport, k.Level)
}

// Team is registered to exactly one season.
type Team struct {
	Key
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	if t.Year <= 0 {
		return fmt.Errorf("team season year is required")
	}
	if t.Sport == "" || t.Level == "" {
		return fmt.Errorf("team sport and level are required")
	}

	return nil
}

// Roster is a team with its distinct player count and the minimum its league
// requires. HasMinimum is false when no league row exists for the team's
// sport and level.
type Roster struct {
	Team       Team
	Size       int
	MinPlayers int
	HasMinimum bool
}

// Membership is one PlaysFor edge between a player and a team.
type Membership struct {
	PlayerID int
	Team     Key
}
