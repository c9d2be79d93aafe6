package orgunit

import "github.com/frahmantamala/hr-records/internal/core/datamodel"

type OrgUnit struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"column:name;not null"`
	Description string `gorm:"column:description"`
	ParentID    *int64 `gorm:"column:parent_id"`
	datamodel.Audit
}

func (OrgUnit) TableName() string {
	return "org_units"
}
