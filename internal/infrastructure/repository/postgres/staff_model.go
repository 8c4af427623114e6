package postgres

import "github.com/riskibarqy/jam-league/internal/domain/staff"

type officialTableModel struct {
	ID int `db:"oid"`
	profileColumns
	HourlySalary int `db:"hourlysal"`
}

func (m officialTableModel) toDomain() staff.Official {
	return staff.Official{ID: m.ID, Profile: m.profileColumns.toDomain(), HourlySalary: m.HourlySalary}
}

type coordinatorTableModel struct {
	ID int `db:"cid"`
	profileColumns
	YearlySalary int `db:"yearlysal"`
}

func (m coordinatorTableModel) toDomain() staff.Coordinator {
	return staff.Coordinator{ID: m.ID, Profile: m.profileColumns.toDomain(), YearlySalary: m.YearlySalary}
}

// salaryTable maps a staff kind to its table, id column and salary column.
func salaryTable(kind staff.Kind) (table, idColumn, salaryColumn string) {
	if kind == staff.KindCoordinator {
		return "coordinator", "cid", "yearlysal"
	}
	return "official", "oid", "hourlysal"
}
