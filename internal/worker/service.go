package worker

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/core/events"
	"github.com/frahmantamala/hr-records/internal/query"
	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/pkg/logger"
)

// Repository is the storage boundary. GetByID returns nil, nil when the worker
// does not exist.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Worker, error)
	Add(ctx context.Context, w *Worker) (*Worker, error)
	Update(ctx context.Context, w *Worker) error
	Delete(ctx context.Context, w *Worker) error
	GetAll(ctx context.Context) ([]Worker, error)
	GetResponse(ctx context.Context, spec query.Spec[Worker]) ([]query.Record, query.RecordsCount, error)
}

type Service struct {
	repo      Repository
	publisher events.Publisher
	logger    *slog.Logger
}

func NewService(repo Repository, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *Service) GetByID(ctx context.Context, id int64, fields string) (response.Response[query.Record], error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return response.Response[query.Record]{}, err
	}
	return response.New(query.ShapeOne(Catalog, w, Catalog.ResolveFields(fields))), nil
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (response.Response[int64], error) {
	created, err := s.repo.Add(ctx, NewWorker(cmd))
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to create worker", err)
		return response.Response[int64]{}, err
	}

	s.logger.InfoContext(ctx, "worker created", "worker_id", created.ID, "position_id", created.PositionID)
	s.publish(ctx, events.ActionCreated, created.ID)
	return response.New(created.ID), nil
}

func (s *Service) Update(ctx context.Context, id int64, cmd UpdateCommand) (response.Response[int64], error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return response.Response[int64]{}, err
	}

	w.Apply(cmd)
	if err := s.repo.Update(ctx, w); err != nil {
		logger.Failure(ctx, s.logger, "failed to update worker", err, "worker_id", id)
		return response.Response[int64]{}, err
	}

	s.publish(ctx, events.ActionUpdated, id)
	return response.New(id), nil
}

func (s *Service) Delete(ctx context.Context, id int64) (response.Response[int64], error) {
	w, err := s.find(ctx, id)
	if err != nil {
		return response.Response[int64]{}, err
	}

	if err := s.repo.Delete(ctx, w); err != nil {
		logger.Failure(ctx, s.logger, "failed to delete worker", err, "worker_id", id)
		return response.Response[int64]{}, err
	}

	s.publish(ctx, events.ActionDeleted, id)
	return response.New(id), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (response.Paged[[]query.Record], error) {
	page := query.NewPage(q.PageNumber, q.PageSize)
	records, count, err := s.repo.GetResponse(ctx, query.Spec[Worker]{
		Filter:     q.Filter.Predicate(),
		Fields:     Catalog.ResolveFields(q.Fields),
		OrderBy:    Catalog.ValidateFields(q.OrderBy),
		PageNumber: page.Number,
		PageSize:   page.Size,
	})
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to list workers", err)
		return response.Paged[[]query.Record]{}, err
	}
	return response.NewPaged(records, page, count), nil
}

func (s *Service) Table(ctx context.Context, q query.TableParams) (response.Table[[]query.Record], error) {
	page := query.NewPage(q.PageNumber, q.PageSize)
	records, count, err := s.repo.GetResponse(ctx, query.Spec[Worker]{
		Filter:     SearchPredicate(q.Search.Value),
		Fields:     Catalog.ResolveFields(q.Fields),
		PageNumber: page.Number,
		PageSize:   page.Size,
	})
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to search workers", err)
		return response.Table[[]query.Record]{}, err
	}
	return response.NewTable(q.Draw, records, count), nil
}

func (s *Service) find(ctx context.Context, id int64) (*Worker, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to load worker", err, "worker_id", id)
		return nil, err
	}
	if w == nil {
		return nil, internal.ErrWorkerNotFound
	}
	return w, nil
}

func (s *Service) publish(ctx context.Context, action events.Action, id int64) {
	if s.publisher == nil {
		return
	}
	event := events.NewRecordChanged(events.ResourceWorker, action, id, internal.ActorFromContext(ctx))
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish worker event", "event_type", event.EventType(), "error", err)
	}
}
