package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-records/internal"
	positionDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/position"
	"github.com/frahmantamala/hr-records/internal/position"
	"github.com/frahmantamala/hr-records/internal/query"
)

// PositionRepository implements position.Repository using GORM. Unit and
// band names are preloaded on every read.
type PositionRepository struct {
	db *gorm.DB
}

func NewPositionRepository(db *gorm.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func (r *PositionRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("OrgUnit").Preload("Band")
}

func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*position.Position, error) {
	var m positionDatamodel.Position
	if err := r.withRelations(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return position.FromDataModel(&m), nil
}

func (r *PositionRepository) Add(ctx context.Context, p *position.Position) (*position.Position, error) {
	m := position.ToDataModel(p)
	actor := internal.ActorFromContext(ctx)
	m.CreatedBy, m.UpdatedBy = actor, actor

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return position.FromDataModel(m), nil
}

func (r *PositionRepository) Update(ctx context.Context, p *position.Position) error {
	return r.db.WithContext(ctx).Model(&positionDatamodel.Position{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"number":      p.Number,
			"title":       p.Title,
			"description": p.Description,
			"org_unit_id": p.OrgUnitID,
			"band_id":     p.BandID,
			"updated_at":  time.Now(),
			"updated_by":  internal.ActorFromContext(ctx),
		}).Error
}

func (r *PositionRepository) Delete(ctx context.Context, p *position.Position) error {
	return r.db.WithContext(ctx).Delete(&positionDatamodel.Position{}, p.ID).Error
}

func (r *PositionRepository) GetAll(ctx context.Context) ([]position.Position, error) {
	var models []positionDatamodel.Position
	if err := r.withRelations(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	positions := make([]position.Position, len(models))
	for i := range models {
		positions[i] = *position.FromDataModel(&models[i])
	}
	return positions, nil
}

func (r *PositionRepository) GetResponse(ctx context.Context, spec query.Spec[position.Position]) ([]query.Record, query.RecordsCount, error) {
	positions, err := r.GetAll(ctx)
	if err != nil {
		return nil, query.RecordsCount{}, err
	}
	return query.Execute(ctx, position.Catalog, positions, spec)
}
