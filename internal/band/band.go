package band

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/core/datamodel"
	bandDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/band"
	"github.com/frahmantamala/hr-records/internal/query"
)

// Band is a compensation band: the salary range a job position pays within.
type Band struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Currency  string          `json:"currency"`
	MinSalary decimal.Decimal `json:"minSalary"`
	MaxSalary decimal.Decimal `json:"maxSalary"`
	CreatedAt time.Time       `json:"createdAt"`
	CreatedBy string          `json:"createdBy"`
	UpdatedAt time.Time       `json:"updatedAt"`
	UpdatedBy string          `json:"updatedBy"`
}

var Catalog = query.NewCatalog(
	query.Int("id", func(b *Band) int64 { return b.ID }),
	query.String("name", func(b *Band) string { return b.Name }),
	query.String("currency", func(b *Band) string { return b.Currency }),
	query.Decimal("minSalary", func(b *Band) decimal.Decimal { return b.MinSalary }),
	query.Decimal("maxSalary", func(b *Band) decimal.Decimal { return b.MaxSalary }),
	query.Time("createdAt", func(b *Band) time.Time { return b.CreatedAt }),
	query.String("createdBy", func(b *Band) string { return b.CreatedBy }),
	query.Time("updatedAt", func(b *Band) time.Time { return b.UpdatedAt }),
	query.String("updatedBy", func(b *Band) string { return b.UpdatedBy }),
)

var SearchFields = []string{"name", "currency"}

func NewBand(cmd CreateCommand) *Band {
	return &Band{
		Name:      cmd.Name,
		Currency:  cmd.Currency,
		MinSalary: cmd.MinSalary,
		MaxSalary: cmd.MaxSalary,
	}
}

func (b *Band) Apply(cmd UpdateCommand) {
	b.Name = cmd.Name
	b.Currency = cmd.Currency
	b.MinSalary = cmd.MinSalary
	b.MaxSalary = cmd.MaxSalary
}

func ToDataModel(b *Band) *bandDatamodel.Band {
	return &bandDatamodel.Band{
		ID:        b.ID,
		Name:      b.Name,
		Currency:  b.Currency,
		MinSalary: b.MinSalary,
		MaxSalary: b.MaxSalary,
		Audit: datamodel.Audit{
			CreatedAt: b.CreatedAt,
			CreatedBy: b.CreatedBy,
			UpdatedAt: b.UpdatedAt,
			UpdatedBy: b.UpdatedBy,
		},
	}
}

func FromDataModel(m *bandDatamodel.Band) *Band {
	return &Band{
		ID:        m.ID,
		Name:      m.Name,
		Currency:  m.Currency,
		MinSalary: m.MinSalary,
		MaxSalary: m.MaxSalary,
		CreatedAt: m.CreatedAt,
		CreatedBy: m.CreatedBy,
		UpdatedAt: m.UpdatedAt,
		UpdatedBy: m.UpdatedBy,
	}
}
