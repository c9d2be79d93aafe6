package worker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/core/common/validation"
	"github.com/frahmantamala/hr-records/internal/query"
)

type CreateCommand struct {
	WorkerNumber string          `json:"workerNumber" validate:"required,max=20"`
	FirstName    string          `json:"firstName" validate:"required,max=100"`
	LastName     string          `json:"lastName" validate:"required,max=100"`
	Email        string          `json:"email" validate:"required,email,max=254"`
	Phone        string          `json:"phone" validate:"omitempty,max=30"`
	Gender       Gender          `json:"gender" validate:"required,oneof=male female other"`
	Birthday     time.Time       `json:"birthday" validate:"required"`
	Salary       decimal.Decimal `json:"salary"`
	PositionID   int64           `json:"positionId" validate:"required,gt=0"`
}

func (c CreateCommand) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}
	return validation.NotNegative("salary", c.Salary)
}

// UpdateCommand replaces every editable field, so it carries the same rules
// as CreateCommand.
type UpdateCommand CreateCommand

func (c UpdateCommand) Validate() error {
	return CreateCommand(c).Validate()
}

// Filter narrows a worker list. Unset fields place no constraint.
type Filter struct {
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	Email        string           `json:"email"`
	WorkerNumber string           `json:"workerNumber"`
	Phone        string           `json:"phone"`
	Title        string           `json:"title"`
	Gender       *Gender          `json:"gender"`
	SalaryMin    *decimal.Decimal `json:"salaryMin"`
	SalaryMax    *decimal.Decimal `json:"salaryMax"`
	BirthdayFrom *time.Time       `json:"birthdayFrom"`
	BirthdayTo   *time.Time       `json:"birthdayTo"`
}

func (f Filter) Predicate() query.Predicate[Worker] {
	return query.And(
		query.Contains(func(w *Worker) string { return w.FirstName }, f.FirstName),
		query.Contains(func(w *Worker) string { return w.LastName }, f.LastName),
		query.Contains(func(w *Worker) string { return w.Email }, f.Email),
		query.Equal(func(w *Worker) string { return w.WorkerNumber }, f.WorkerNumber),
		query.Contains(func(w *Worker) string { return w.Phone }, f.Phone),
		query.Contains(func(w *Worker) string { return w.PositionTitle }, f.Title),
		query.EnumEqual(func(w *Worker) Gender { return w.Gender }, f.Gender),
		query.DecimalRange(func(w *Worker) decimal.Decimal { return w.Salary }, f.SalaryMin, f.SalaryMax),
		query.DateRange(func(w *Worker) time.Time { return w.Birthday }, f.BirthdayFrom, f.BirthdayTo),
	)
}

func SearchPredicate(term string) query.Predicate[Worker] {
	return query.Search(Catalog, SearchFields, term)
}

type ListQuery struct {
	query.Params
	Filter
}
