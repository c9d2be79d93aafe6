package worker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/core/datamodel"
	"github.com/frahmantamala/hr-records/internal/core/datamodel/position"
)

type Worker struct {
	ID           int64              `gorm:"primaryKey"`
	WorkerNumber string             `gorm:"column:worker_number;uniqueIndex;not null"`
	FirstName    string             `gorm:"column:first_name;not null"`
	LastName     string             `gorm:"column:last_name;not null"`
	Email        string             `gorm:"column:email;not null"`
	Phone        string             `gorm:"column:phone"`
	Gender       string             `gorm:"column:gender;not null"`
	Birthday     time.Time          `gorm:"column:birthday;type:date"`
	Salary       decimal.Decimal    `gorm:"column:salary;type:numeric(14,2);not null"`
	PositionID   int64              `gorm:"column:position_id;not null"`
	Position     *position.Position `gorm:"foreignKey:PositionID"`
	datamodel.Audit
}

func (Worker) TableName() string {
	return "workers"
}
