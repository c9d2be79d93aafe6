package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-records/internal"
	workerDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/worker"
	"github.com/frahmantamala/hr-records/internal/query"
	"github.com/frahmantamala/hr-records/internal/worker"
)

// WorkerRepository implements worker.Repository using GORM
type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*worker.Worker, error) {
	var m workerDatamodel.Worker
	err := r.db.WithContext(ctx).Preload("Position").Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return worker.FromDataModel(&m), nil
}

func (r *WorkerRepository) Add(ctx context.Context, w *worker.Worker) (*worker.Worker, error) {
	m := worker.ToDataModel(w)
	actor := internal.ActorFromContext(ctx)
	m.CreatedBy, m.UpdatedBy = actor, actor

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return worker.FromDataModel(m), nil
}

func (r *WorkerRepository) Update(ctx context.Context, w *worker.Worker) error {
	return r.db.WithContext(ctx).Model(&workerDatamodel.Worker{}).
		Where("id = ?", w.ID).
		Updates(map[string]interface{}{
			"worker_number": w.WorkerNumber,
			"first_name":    w.FirstName,
			"last_name":     w.LastName,
			"email":         w.Email,
			"phone":         w.Phone,
			"gender":        string(w.Gender),
			"birthday":      w.Birthday,
			"salary":        w.Salary,
			"position_id":   w.PositionID,
			"updated_at":    time.Now(),
			"updated_by":    internal.ActorFromContext(ctx),
		}).Error
}

func (r *WorkerRepository) Delete(ctx context.Context, w *worker.Worker) error {
	return r.db.WithContext(ctx).Delete(&workerDatamodel.Worker{}, w.ID).Error
}

func (r *WorkerRepository) GetAll(ctx context.Context) ([]worker.Worker, error) {
	var models []workerDatamodel.Worker
	if err := r.db.WithContext(ctx).Preload("Position").Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	workers := make([]worker.Worker, len(models))
	for i := range models {
		workers[i] = *worker.FromDataModel(&models[i])
	}
	return workers, nil
}

func (r *WorkerRepository) GetResponse(ctx context.Context, spec query.Spec[worker.Worker]) ([]query.Record, query.RecordsCount, error) {
	workers, err := r.GetAll(ctx)
	if err != nil {
		return nil, query.RecordsCount{}, err
	}
	return query.Execute(ctx, worker.Catalog, workers, spec)
}
