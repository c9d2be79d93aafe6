package position

import (
	"github.com/frahmantamala/hr-records/internal/core/datamodel"
	"github.com/frahmantamala/hr-records/internal/core/datamodel/band"
	"github.com/frahmantamala/hr-records/internal/core/datamodel/orgunit"
)

type Position struct {
	ID          int64            `gorm:"primaryKey"`
	Number      string           `gorm:"column:number;uniqueIndex;not null"`
	Title       string           `gorm:"column:title;not null"`
	Description string           `gorm:"column:description"`
	OrgUnitID   int64            `gorm:"column:org_unit_id;not null"`
	OrgUnit     *orgunit.OrgUnit `gorm:"foreignKey:OrgUnitID"`
	BandID      int64            `gorm:"column:band_id;not null"`
	Band        *band.Band       `gorm:"foreignKey:BandID"`
	datamodel.Audit
}

func (Position) TableName() string {
	return "job_positions"
}
