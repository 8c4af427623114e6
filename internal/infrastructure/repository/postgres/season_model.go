package postgres

import (
	"time"

	"github.com/riskibarqy/jam-league/internal/domain/season"
)

type seasonEnrollmentModel struct {
	Year      int       `db:"syear"`
	Sport     string    `db:"sport"`
	Level     string    `db:"llevel"`
	Deadline  time.Time `db:"regdeadline"`
	TeamCount int       `db:"team_count"`
}

func (m seasonEnrollmentModel) toDomain() season.Enrollment {
	return season.Enrollment{
		Season: season.Season{
			Key:                  season.Key{Year: m.Year, Sport: m.Sport, Level: m.Level},
			RegistrationDeadline: m.Deadline,
		},
		TeamCount: m.TeamCount,
	}
}
