package position

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/core/events"
	"github.com/frahmantamala/hr-records/internal/query"
	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/pkg/logger"
)

// Repository is the storage boundary. GetByID returns nil, nil when the position
// does not exist.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Position, error)
	Add(ctx context.Context, p *Position) (*Position, error)
	Update(ctx context.Context, p *Position) error
	Delete(ctx context.Context, p *Position) error
	GetAll(ctx context.Context) ([]Position, error)
	GetResponse(ctx context.Context, spec query.Spec[Position]) ([]query.Record, query.RecordsCount, error)
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
	p, err := s.find(ctx, id)
	if err != nil {
		return response.Response[query.Record]{}, err
	}
	return response.New(query.ShapeOne(Catalog, p, Catalog.ResolveFields(fields))), nil
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (response.Response[int64], error) {
	created, err := s.repo.Add(ctx, NewPosition(cmd))
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to create job position", err)
		return response.Response[int64]{}, err
	}

	s.logger.InfoContext(ctx, "job position created", "position_id", created.ID)
	s.publish(ctx, events.ActionCreated, created.ID)
	return response.New(created.ID), nil
}

func (s *Service) Update(ctx context.Context, id int64, cmd UpdateCommand) (response.Response[int64], error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return response.Response[int64]{}, err
	}

	p.Apply(cmd)
	if err := s.repo.Update(ctx, p); err != nil {
		logger.Failure(ctx, s.logger, "failed to update job position", err, "position_id", id)
		return response.Response[int64]{}, err
	}

	s.publish(ctx, events.ActionUpdated, id)
	return response.New(id), nil
}

func (s *Service) Delete(ctx context.Context, id int64) (response.Response[int64], error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return response.Response[int64]{}, err
	}

	if err := s.repo.Delete(ctx, p); err != nil {
		logger.Failure(ctx, s.logger, "failed to delete job position", err, "position_id", id)
		return response.Response[int64]{}, err
	}

	s.publish(ctx, events.ActionDeleted, id)
	return response.New(id), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (response.Paged[[]query.Record], error) {
	page := query.NewPage(q.PageNumber, q.PageSize)
	records, count, err := s.repo.GetResponse(ctx, query.Spec[Position]{
		Filter:     q.Filter.Predicate(),
		Fields:     Catalog.ResolveFields(q.Fields),
		OrderBy:    Catalog.ValidateFields(q.OrderBy),
		PageNumber: page.Number,
		PageSize:   page.Size,
	})
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to list job positions", err)
		return response.Paged[[]query.Record]{}, err
	}
	return response.NewPaged(records, page, count), nil
}

func (s *Service) Table(ctx context.Context, q query.TableParams) (response.Table[[]query.Record], error) {
	page := query.NewPage(q.PageNumber, q.PageSize)
	records, count, err := s.repo.GetResponse(ctx, query.Spec[Position]{
		Filter:     SearchPredicate(q.Search.Value),
		Fields:     Catalog.ResolveFields(q.Fields),
		PageNumber: page.Number,
		PageSize:   page.Size,
	})
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to search job positions", err)
		return response.Table[[]query.Record]{}, err
	}
	return response.NewTable(q.Draw, records, count), nil
}

func (s *Service) find(ctx context.Context, id int64) (*Position, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to load job position", err, "position_id", id)
		return nil, err
	}
	if p == nil {
		return nil, internal.ErrPositionNotFound
	}
	return p, nil
}

func (s *Service) publish(ctx context.Context, action events.Action, id int64) {
	if s.publisher == nil {
		return
	}
	event := events.NewRecordChanged(events.ResourcePosition, action, id, internal.ActorFromContext(ctx))
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish job position event", "event_type", event.EventType(), "error", err)
	}
}
