package orgunit

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/core/events"
	"github.com/frahmantamala/hr-records/internal/query"
	"github.com/frahmantamala/hr-records/internal/response"
	"github.com/frahmantamala/hr-records/pkg/logger"
)

// Repository is the storage boundary. GetByID returns nil, nil when the unit
// does not exist.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*OrgUnit, error)
	Add(ctx context.Context, u *OrgUnit) (*OrgUnit, error)
	Update(ctx context.Context, u *OrgUnit) error
	Delete(ctx context.Context, u *OrgUnit) error
	GetAll(ctx context.Context) ([]OrgUnit, error)
	GetResponse(ctx context.Context, spec query.Spec[OrgUnit]) ([]query.Record, query.RecordsCount, error)
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
	u, err := s.find(ctx, id)
	if err != nil {
		return response.Response[query.Record]{}, err
	}
	return response.New(query.ShapeOne(Catalog, u, Catalog.ResolveFields(fields))), nil
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (response.Response[int64], error) {
	created, err := s.repo.Add(ctx, NewOrgUnit(cmd))
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to create org unit", err)
		return response.Response[int64]{}, err
	}

	s.logger.InfoContext(ctx, "org unit created", "org_unit_id", created.ID)
	s.publish(ctx, events.ActionCreated, created.ID)
	return response.New(created.ID), nil
}

func (s *Service) Update(ctx context.Context, id int64, cmd UpdateCommand) (response.Response[int64], error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return response.Response[int64]{}, err
	}

	u.Apply(cmd)
	if err := s.repo.Update(ctx, u); err != nil {
		logger.Failure(ctx, s.logger, "failed to update org unit", err, "org_unit_id", id)
		return response.Response[int64]{}, err
	}

	s.publish(ctx, events.ActionUpdated, id)
	return response.New(id), nil
}

func (s *Service) Delete(ctx context.Context, id int64) (response.Response[int64], error) {
	u, err := s.find(ctx, id)
	if err != nil {
		return response.Response[int64]{}, err
	}

	if err := s.repo.Delete(ctx, u); err != nil {
		logger.Failure(ctx, s.logger, "failed to delete org unit", err, "org_unit_id", id)
		return response.Response[int64]{}, err
	}

	s.publish(ctx, events.ActionDeleted, id)
	return response.New(id), nil
}

func (s *Service) List(ctx context.Context, q ListQuery) (response.Paged[[]query.Record], error) {
	page := query.NewPage(q.PageNumber, q.PageSize)
	records, count, err := s.repo.GetResponse(ctx, query.Spec[OrgUnit]{
		Filter:     q.Filter.Predicate(),
		Fields:     Catalog.ResolveFields(q.Fields),
		OrderBy:    Catalog.ValidateFields(q.OrderBy),
		PageNumber: page.Number,
		PageSize:   page.Size,
	})
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to list org units", err)
		return response.Paged[[]query.Record]{}, err
	}
	return response.NewPaged(records, page, count), nil
}

func (s *Service) Table(ctx context.Context, q query.TableParams) (response.Table[[]query.Record], error) {
	page := query.NewPage(q.PageNumber, q.PageSize)
	records, count, err := s.repo.GetResponse(ctx, query.Spec[OrgUnit]{
		Filter:     SearchPredicate(q.Search.Value),
		Fields:     Catalog.ResolveFields(q.Fields),
		PageNumber: page.Number,
		PageSize:   page.Size,
	})
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to search org units", err)
		return response.Table[[]query.Record]{}, err
	}
	return response.NewTable(q.Draw, records, count), nil
}

func (s *Service) find(ctx context.Context, id int64) (*OrgUnit, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Failure(ctx, s.logger, "failed to load org unit", err, "org_unit_id", id)
		return nil, err
	}
	if u == nil {
		return nil, internal.ErrOrgUnitNotFound
	}
	return u, nil
}

func (s *Service) publish(ctx context.Context, action events.Action, id int64) {
	if s.publisher == nil {
		return
	}
	event := events.NewRecordChanged(events.ResourceOrgUnit, action, id, internal.ActorFromContext(ctx))
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish org unit event", "event_type", event.EventType(), "error", err)
	}
}
