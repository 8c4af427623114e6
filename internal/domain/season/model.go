package season

import (
	"fmt"
	"time"
)

// Key identifies a season. Seasons are unique per (year, sport, level).
type Key struct {
	Year  int
	Sport string
	Level string
}

func (k Key) String() string {
	return fmt.Sprintf("%d %s/%s", k.Year, k.Sport, k.Level)
}

// Season is one yearly edition of a league.
type Season struct {
	Key
	RegistrationDeadline time.Time
}

func (s Season) Validate() error {
	if s.Year <= 0 {
		return fmt.Errorf("season year is required")
	}
	if s.Sport == "" {
		return fmt.Errorf("season sport is required")
	}
	if s.Level == "" {
		return fmt.Errorf("season level is required")
	}
	if s.RegistrationDeadline.IsZero() {
		return fmt.Errorf("season registration deadline is required")
	}

	return nil
}

// Enrollment is a season together with the number of distinct teams
// registered under its key.
type Enrollment struct {
	Season    Season
	TeamCount int
}
