package pruning

import (
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/season"
	"github.com/riskibarqy/jam-league/internal/domain/team"
	"github.com/riskibarqy/jam-league/internal/platform/civil"
)

type Verdict int

const (
	Keep Verdict = iota
	Prune
	Unevaluable
)

func (v Verdict) String() string {
	switch v {
	case Prune:
		return "prune"
	case Unevaluable:
		return "unevaluable"
	default:
		return "keep"
	}
}

// ShouldPruneSeason reports whether a season is past its registration
// deadline and still short of MinSeasonTeams. today must be a civil date.
// A deadline equal to today is not past.
func ShouldPruneSeason(e season.Enrollment, today time.Time) bool {
	deadline := civil.Date(e.Season.RegistrationDeadline, time.UTC)
	return civil.Before(deadline, today) && e.TeamCount < MinSeasonTeams
}

// EvaluateTeam compares a roster against its league minimum. Teams whose
// league has no row cannot be evaluated and are never pruned.
func EvaluateTeam(r team.Roster) Verdict {
	if !r.HasMinimum {
		return Unevaluable
	}
	if r.Size < r.MinPlayers {
		return Prune
	}

	return Keep
}
