package orgunit

import (
	"time"

	"github.com/frahmantamala/hr-records/internal/core/datamodel"
	orgunitDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/orgunit"
	"github.com/frahmantamala/hr-records/internal/query"
)

type OrgUnit struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ParentID    *int64    `json:"parentId"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UpdatedBy   string    `json:"updatedBy"`
}

// Catalog lists the fields an organizational unit can be shaped to.
var Catalog = query.NewCatalog(
	query.Int("id", func(u *OrgUnit) int64 { return u.ID }),
	query.String("name", func(u *OrgUnit) string { return u.Name }),
	query.String("description", func(u *OrgUnit) string { return u.Description }),
	query.OptionalInt("parentId", func(u *OrgUnit) *int64 { return u.ParentID }),
	query.Time("createdAt", func(u *OrgUnit) time.Time { return u.CreatedAt }),
	query.String("createdBy", func(u *OrgUnit) string { return u.CreatedBy }),
	query.Time("updatedAt", func(u *OrgUnit) time.Time { return u.UpdatedAt }),
	query.String("updatedBy", func(u *OrgUnit) string { return u.UpdatedBy }),
)

// SearchFields are the columns free-text search looks at.
var SearchFields = []string{"name", "description"}

func NewOrgUnit(cmd CreateCommand) *OrgUnit {
	return &OrgUnit{
		Name:        cmd.Name,
		Description: cmd.Description,
		ParentID:    cmd.ParentID,
	}
}

// Apply overwrites the mutable fields from cmd.
func (u *OrgUnit) Apply(cmd UpdateCommand) {
	u.Name = cmd.Name
	u.Description = cmd.Description
	u.ParentID = cmd.ParentID
}

func ToDataModel(u *OrgUnit) *orgunitDatamodel.OrgUnit {
	return &orgunitDatamodel.OrgUnit{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		ParentID:    u.ParentID,
		Audit: datamodel.Audit{
			CreatedAt: u.CreatedAt,
			CreatedBy: u.CreatedBy,
			UpdatedAt: u.UpdatedAt,
			UpdatedBy: u.UpdatedBy,
		},
	}
}

func FromDataModel(m *orgunitDatamodel.OrgUnit) *OrgUnit {
	return &OrgUnit{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ParentID:    m.ParentID,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedAt:   m.UpdatedAt,
		UpdatedBy:   m.UpdatedBy,
	}
}
