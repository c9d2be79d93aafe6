package orgunit

import (
	"github.com/frahmantamala/hr-records/internal/core/common/validation"
	"github.com/frahmantamala/hr-records/internal/query"
)

type CreateCommand struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=1000"`
	ParentID    *int64 `json:"parentId" validate:"omitempty,gt=0"`
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

type Filter struct {
	Name string `json:"name"`
}

// Predicate ANDs the per-field filters that are set.
func (f Filter) Predicate() query.Predicate[OrgUnit] {
	return query.And(
		query.Contains(func(u *OrgUnit) string { return u.Name }, f.Name),
	)
}

// SearchPredicate matches term against any of SearchFields.
func SearchPredicate(term string) query.Predicate[OrgUnit] {
	return query.Search(Catalog, SearchFields, term)
}

type ListQuery struct {
	query.Params
	Filter
}
