package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/frahmantamala/hr-records/internal"
	orgunitDatamodel "github.com/frahmantamala/hr-records/internal/core/datamodel/orgunit"
	"github.com/frahmantamala/hr-records/internal/orgunit"
	"github.com/frahmantamala/hr-records/internal/query"
)

// OrgUnitRepository implements orgunit.Repository using GORM
type OrgUnitRepository struct {
	db *gorm.DB
}

func NewOrgUnitRepository(db *gorm.DB) *OrgUnitRepository {
	return &OrgUnitRepository{db: db}
}

func (r *OrgUnitRepository) GetByID(ctx context.Context, id int64) (*orgunit.OrgUnit, error) {
	var m orgunitDatamodel.OrgUnit
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return orgunit.FromDataModel(&m), nil
}

// Add inserts u and stamps both audit pairs with the request's actor.
func (r *OrgUnitRepository) Add(ctx context.Context, u *orgunit.OrgUnit) (*orgunit.OrgUnit, error) {
	m := orgunit.ToDataModel(u)
	actor := internal.ActorFromContext(ctx)
	m.CreatedBy, m.UpdatedBy = actor, actor

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return orgunit.FromDataModel(m), nil
}

func (r *OrgUnitRepository) Update(ctx context.Context, u *orgunit.OrgUnit) error {
	return r.db.WithContext(ctx).Model(&orgunitDatamodel.OrgUnit{}).
		Where("id = ?", u.ID).
		Updates(map[string]interface{}{
			"name":        u.Name,
			"description": u.Description,
			"parent_id":   u.ParentID,
			"updated_at":  time.Now(),
			"updated_by":  internal.ActorFromContext(ctx),
		}).Error
}

func (r *OrgUnitRepository) Delete(ctx context.Context, u *orgunit.OrgUnit) error {
	return r.db.WithContext(ctx).Delete(&orgunitDatamodel.OrgUnit{}, u.ID).Error
}

func (r *OrgUnitRepository) GetAll(ctx context.Context) ([]orgunit.OrgUnit, error) {
	var models []orgunitDatamodel.OrgUnit
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}

	units := make([]orgunit.OrgUnit, len(models))
	for i := range models {
		units[i] = *orgunit.FromDataModel(&models[i])
	}
	return units, nil
}

// GetResponse loads the collection and runs the list query over it.
func (r *OrgUnitRepository) GetResponse(ctx context.Context, spec query.Spec[orgunit.OrgUnit]) ([]query.Record, query.RecordsCount, error) {
	units, err := r.GetAll(ctx)
	if err != nil {
		return nil, query.RecordsCount{}, err
	}
	return query.Execute(ctx, orgunit.Catalog, units, spec)
}
