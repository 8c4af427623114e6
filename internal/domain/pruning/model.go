package pruning

import (
	"fmt"
	"strings"
	"time"
)

// RoutineName is the registry name of the cleaning routine.
const RoutineName = "clean"

// MinSeasonTeams is the smallest team count a season past its registration
// deadline may keep.
const MinSeasonTeams = 4

// MaxBatchSize bounds the keys deleted per statement. A team key binds four
// parameters and PostgreSQL accepts at most 65535 per statement.
const MaxBatchSize = 65535 / 4

type Target string

const (
	TargetSeason Target = "season"
	TargetTeam   Target = "team"
)

func ParseTarget(raw string) (Target, error) {
	switch Target(strings.ToLower(strings.TrimSpace(raw))) {
	case TargetSeason:
		return TargetSeason, nil
	case TargetTeam:
		return TargetTeam, nil
	default:
		return "", fmt.Errorf("unknown prune target %q: valid values are %s, %s", raw, TargetSeason, TargetTeam)
	}
}

// Routine is a registered maintenance routine.
type Routine struct {
	Name        string
	InstalledAt time.Time
}

// Report summarizes one prune run. Pruned holds the keys that qualified,
// Deleted the rows the store actually removed.
type Report struct {
	Target    Target   `json:"target"`
	Evaluated int      `json:"evaluated"`
	Pruned    []string `json:"pruned"`
	Skipped   []string `json:"skipped"`
	Deleted   int64    `json:"deleted"`
	DryRun    bool     `json:"dry_run"`
}
