package position

import (
	"time"

	"github.com/frahmantamala/hr-records/internal/core/datamodel"
	positionDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/position"
	"github.com/frahmantamala/hr-records/internal/query"
)

// Position is a job position. UnitName and BandName are read from the related
// records and are never written back.
type Position struct {
	ID          int64     `json:"id"`
	Number      string    `json:"number"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OrgUnitID   int64     `json:"orgUnitId"`
	UnitName    string    `json:"unitName"`
	BandID      int64     `json:"bandId"`
	BandName    string    `json:"bandName"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
	UpdatedAt   time.Time `json:"updatedAt"`
	UpdatedBy   string    `json:"updatedBy"`
}

var Catalog = query.NewCatalog(
	query.Int("id", func(p *Position) int64 { return p.ID }),
	query.String("number", func(p *Position) string { return p.Number }),
	query.String("title", func(p *Position) string { return p.Title }),
	query.String("description", func(p *Position) string { return p.Description }),
	query.Int("orgUnitId", func(p *Position) int64 { return p.OrgUnitID }),
	query.String("unitName", func(p *Position) string { return p.UnitName }),
	query.Int("bandId", func(p *Position) int64 { return p.BandID }),
	query.String("bandName", func(p *Position) string { return p.BandName }),
	query.Time("createdAt", func(p *Position) time.Time { return p.CreatedAt }),
	query.String("createdBy", func(p *Position) string { return p.CreatedBy }),
	query.Time("updatedAt", func(p *Position) time.Time { return p.UpdatedAt }),
	query.String("updatedBy", func(p *Position) string { return p.UpdatedBy }),
)

var SearchFields = []string{"number", "title", "description", "unitName", "bandName"}

func NewPosition(cmd CreateCommand) *Position {
	return &Position{
		Number:      cmd.Number,
		Title:       cmd.Title,
		Description: cmd.Description,
		OrgUnitID:   cmd.OrgUnitID,
		BandID:      cmd.BandID,
	}
}

func (p *Position) Apply(cmd UpdateCommand) {
	p.Number = cmd.Number
	p.Title = cmd.Title
	p.Description = cmd.Description
	p.OrgUnitID = cmd.OrgUnitID
	p.BandID = cmd.BandID
}

// ToDataModel leaves the associations empty so GORM never upserts them.
func ToDataModel(p *Position) *positionDatamodel.Position {
	return &positionDatamodel.Position{
		ID:          p.ID,
		Number:      p.Number,
		Title:       p.Title,
		Description: p.Description,
		OrgUnitID:   p.OrgUnitID,
		BandID:      p.BandID,
		Audit: datamodel.Audit{
			CreatedAt: p.CreatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedAt: p.UpdatedAt,
			UpdatedBy: p.UpdatedBy,
		},
	}
}

func FromDataModel(m *positionDatamodel.Position) *Position {
	p := &Position{
		ID:          m.ID,
		Number:      m.Number,
		Title:       m.Title,
		Description: m.Description,
		OrgUnitID:   m.OrgUnitID,
		BandID:      m.BandID,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
		UpdatedAt:   m.UpdatedAt,
		UpdatedBy:   m.UpdatedBy,
	}
	if m.OrgUnit != nil {
		p.UnitName = m.OrgUnit.Name
	}
	if m.Band != nil {
		p.BandName = m.Band.Name
	}
	return p
}
