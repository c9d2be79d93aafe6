package band

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/core/datamodel"
)

type Band struct {
	ID        int64           `gorm:"primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Currency  string          `gorm:"column:currency;size:3;not null"`
	MinSalary decimal.Decimal `gorm:"column:min_salary;type:numeric(14,2);not null"`
	MaxSalary decimal.Decimal `gorm:"column:max_salary;type:numeric(14,2);not null"`
	datamodel.Audit
}

func (Band) TableName() string {
	return "compensation_bands"
}
