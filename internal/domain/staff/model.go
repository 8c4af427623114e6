package staff

import (
	"fmt"
	"math"

	"github.com/riskibarqy/jam-league/internal/domain/person"
)

// Id ranges are exclusive on both ends.
const (
	OfficialMinID    = 300000
	OfficialMaxID    = 400000
	CoordinatorMinID = 540000
	CoordinatorMaxID = 550000
)

// MaxSalary is the largest salary the INTEGER salary columns hold.
const MaxSalary = math.MaxInt32

type Kind string

const (
	KindOfficial    Kind = "official"
	KindCoordinator Kind = "coordinator"
)

// KindForID picks the salary table for an id chosen from the combined staff
// listing. Coordinator ids sort above every official id.
func KindForID(id int) Kind {
	if id > CoordinatorMinID {
		return KindCoordinator
	}
	return KindOfficial
}

func (k Kind) SalaryUnit() string {
	if k == KindCoordinator {
		return "yearly"
	}
	return "hourly"
}

type Official struct {
	ID int
	person.Profile
	HourlySalary int
}

type Coordinator struct {
	ID int
	person.Profile
	YearlySalary int
}

// Member is a row of the combined salary listing.
type Member struct {
	ID     int
	Kind   Kind
	Name   string
	Salary int
}

func (m Member) String() string {
	return fmt.Sprintf("%d %s (%s %d)", m.ID, m.Name, m.Kind.SalaryUnit(), m.Salary)
}
