package band

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/core/common/validation"
	"github.com/frahmantamala/hr-records/internal/query"
)

type CreateCommand struct {
	Name      string          `json:"name" validate:"required,max=100"`
	Currency  string          `json:"currency" validate:"required,len=3,uppercase,currency"`
	MinSalary decimal.Decimal `json:"minSalary"`
	MaxSalary decimal.Decimal `json:"maxSalary"`
}

// Validate also enforces minSalary < maxSalary and the currency's precision.
func (c CreateCommand) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	return validateSalaries(c.Currency, c.MinSalary, c.MaxSalary)
}

// UpdateCommand replaces every editable field, so it carries the same rules
// as CreateCommand.
type UpdateCommand CreateCommand

func (c UpdateCommand) Validate() error {
	return CreateCommand(c).Validate()
}

func validateSalaries(currency string, minSalary, maxSalary decimal.Decimal) error {
	if err := validation.DecimalRange("minSalary", minSalary, "maxSalary", maxSalary); err != nil {
		return err
	}
	if err := validation.MinorUnits("minSalary", minSalary, currency); err != nil {
		return err
	}
	return validation.MinorUnits("maxSalary", maxSalary, currency)
}

type Filter struct {
	Name string `json:"name"`
}

func (f Filter) Predicate() query.Predicate[Band] {
	return query.And(
		query.Contains(func(b *Band) string { return b.Name }, f.Name),
	)
}

func SearchPredicate(term string) query.Predicate[Band] {
	return query.Search(Catalog, SearchFields, term)
}

type ListQuery struct {
	query.Params
	Filter
}
