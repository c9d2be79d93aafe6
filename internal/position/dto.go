package position

import (
	"github.com/frahmantamala/hr-records/internal/core/common/validation"
	"github.com/frahmantamala/hr-records/internal/query"
)

type CreateCommand struct {
	Number      string `json:"number" validate:"required,max=20"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	OrgUnitID   int64  `json:"orgUnitId" validate:"required,gt=0"`
	BandID      int64  `json:"bandId" validate:"required,gt=0"`
}

func (c CreateCommand) Validate() error {
	return validation.Struct(c)
}

// UpdateCommand replaces every editable field, so it carries the same rules
// as CreateCommand.
type UpdateCommand CreateCommand

func (c UpdateCommand) Validate() error {
	return CreateCommand(c).Validate()
}

// Filter narrows a position list. Number is an identifier and must match
// exactly; the other fields match as substrings.
type Filter struct {
	Title    string `json:"title"`
	Number   string `json:"number"`
	UnitName string `json:"unitName"`
}

func (f Filter) Predicate() query.Predicate[Position] {
	return query.And(
		query.Contains(func(p *Position) string { return p.Title }, f.Title),
		query.Equal(func(p *Position) string { return p.Number }, f.Number),
		query.Contains(func(p *Position) string { return p.UnitName }, f.UnitName),
	)
}

func SearchPredicate(term string) query.Predicate[Position] {
	return query.Search(Catalog, SearchFields, term)
}

type ListQuery struct {
	query.Params
	Filter
}
