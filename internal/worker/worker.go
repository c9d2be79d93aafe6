package worker

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/hr-records/internal/core/datamodel"
	workerDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/worker"
	"github.com/frahmantamala/hr-records/internal/query"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type Worker struct {
	ID            int64           `json:"id"`
	WorkerNumber  string          `json:"workerNumber"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Gender        Gender          `json:"gender"`
	Birthday      time.Time       `json:"birthday"`
	Salary        decimal.Decimal `json:"salary"`
	PositionID    int64           `json:"positionId"`
	PositionTitle string          `json:"positionTitle"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	UpdatedBy     string          `json:"updatedBy"`
}

var Catalog = query.NewCatalog(
	query.Int("id", func(w *Worker) int64 { return w.ID }),
	query.String("workerNumber", func(w *Worker) string { return w.WorkerNumber }),
	query.String("firstName", func(w *Worker) string { return w.FirstName }),
	query.String("lastName", func(w *Worker) string { return w.LastName }),
	query.String("email", func(w *Worker) string { return w.Email }),
	query.String("phone", func(w *Worker) string { return w.Phone }),
	query.Enum("gender", func(w *Worker) Gender { return w.Gender }),
	query.Time("birthday", func(w *Worker) time.Time { return w.Birthday }),
	query.Decimal("salary", func(w *Worker) decimal.Decimal { return w.Salary }),
	query.Int("positionId", func(w *Worker) int64 { return w.PositionID }),
	query.String("positionTitle", func(w *Worker) string { return w.PositionTitle }),
	query.Time("createdAt", func(w *Worker) time.Time { return w.CreatedAt }),
	query.String("createdBy", func(w *Worker) string { return w.CreatedBy }),
	query.Time("updatedAt", func(w *Worker) time.Time { return w.UpdatedAt }),
	query.String("updatedBy", func(w *Worker) string { return w.UpdatedBy }),
)

var SearchFields = []string{"workerNumber", "firstName", "lastName", "email", "phone", "positionTitle"}

func NewWorker(cmd CreateCommand) *Worker {
	return &Worker{
		WorkerNumber: cmd.WorkerNumber,
		FirstName:    cmd.FirstName,
		LastName:     cmd.LastName,
		Email:        cmd.Email,
		Phone:        cmd.Phone,
		Gender:       cmd.Gender,
		Birthday:     cmd.Birthday,
		Salary:       cmd.Salary,
		PositionID:   cmd.PositionID,
	}
}

func (w *Worker) Apply(cmd UpdateCommand) {
	w.WorkerNumber = cmd.WorkerNumber
	w.FirstName = cmd.FirstName
	w.LastName = cmd.LastName
	w.Email = cmd.Email
	w.Phone = cmd.Phone
	w.Gender = cmd.Gender
	w.Birthday = cmd.Birthday
	w.Salary = cmd.Salary
	w.PositionID = cmd.PositionID
}

func (w *Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}

func ToDataModel(w *Worker) *workerDatamodel.Worker {
	return &workerDatamodel.Worker{
		ID:           w.ID,
		WorkerNumber: w.WorkerNumber,
		FirstName:    w.FirstName,
		LastName:     w.LastName,
		Email:        w.Email,
		Phone:        w.Phone,
		Gender:       string(w.Gender),
		Birthday:     w.Birthday,
		Salary:       w.Salary,
		PositionID:   w.PositionID,
		Audit: datamodel.Audit{
			CreatedAt: w.CreatedAt,
			CreatedBy: w.CreatedBy,
			UpdatedAt: w.UpdatedAt,
			UpdatedBy: w.UpdatedBy,
		},
	}
}

func FromDataModel(m *workerDatamodel.Worker) *Worker {
	w := &Worker{
		ID:           m.ID,
		WorkerNumber: m.WorkerNumber,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		Phone:        m.Phone,
		Gender:       Gender(m.Gender),
		Birthday:     m.Birthday,
		Salary:       m.Salary,
		PositionID:   m.PositionID,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
		UpdatedAt:    m.UpdatedAt,
		UpdatedBy:    m.UpdatedBy,
	}
	if m.Position != nil {
		w.PositionTitle = m.Position.Title
	}
	return w
}
