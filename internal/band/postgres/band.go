package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-records/internal"
	"github.com/frahmantamala/hr-records/internal/band"
	bandDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/band"
	"github.com/frahmantamala/hr-records/internal/query"
)

// BandRepository implements band.Repository using GORM
type BandRepository struct {
	db *gorm.DB
}

func NewBandRepository(db *gorm.DB) *BandRepository {
	return &BandRepository{db: db}
}

func (r *BandRepository) GetByID(ctx context.Context, id int64) (*band.Band, error) {
	var m bandDatamodel.Band
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return band.FromDataModel(&m), nil
}

func (r *BandRepository) Add(ctx context.Context, b *band.Band) (*band.Band, error) {
	m := band.ToDataModel(b)
	actor := internal.ActorFromContext(ctx)
	m.CreatedBy, m.UpdatedBy = actor, actor

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return band.FromDataModel(m), nil
}

func (r *BandRepository) Update(ctx context.Context, b *band.Band) error {
	return r.db.WithContext(ctx).Model(&bandDatamodel.Band{}).
		Where("id = ?", b.ID).
		Updates(map[string]interface{}{
			"name":       b.Name,
			"currency":   b.Currency,
			"min_salary": b.MinSalary,
			"max_salary": b.MaxSalary,
			"updated_at": time.Now(),
			"updated_by": internal.ActorFromContext(ctx),
		}).Error
}

func (r *BandRepository) Delete(ctx context.Context, b *band.Band) error {
	return r.db.WithContext(ctx).Delete(&bandDatamodel.Band{}, b.ID).Error
}

func (r *BandRepository) GetAll(ctx context.Context) ([]band.Band, error) {
	var models []bandDatamodel.Band
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	bands := make([]band.Band, len(models))
	for i := range models {
		bands[i] = *band.FromDataModel(&models[i])
	}
	return bands, nil
}

func (r *BandRepository) GetResponse(ctx context.Context, spec query.Spec[band.Band]) ([]query.Record, query.RecordsCount, error) {
	bands, err := r.GetAll(ctx)
	if err != nil {
		return nil, query.RecordsCount{}, err
	}
	return query.Execute(ctx, band.Catalog, bands, spec)
}
