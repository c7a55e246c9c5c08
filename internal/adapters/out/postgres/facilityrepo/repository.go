package facilityrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lastmile/internal/core/domain/model/facility"
	"lastmile/internal/pkg/errs"
)

// GormFacilityRepository implements FacilityRepository using GORM.
type GormFacilityRepository struct {
	db *gorm.DB
}

// NewGormFacilityRepository creates a new GORM facility repository.
func NewGormFacilityRepository(db *gorm.DB) *GormFacilityRepository {
	return &GormFacilityRepository{db: db}
}

// Add saves a facility to the database, replacing an existing row with the
// same directory id so directory syncs are idempotent.
func (r *GormFacilityRepository) Add(ctx context.Context, aggregate *facility.Facility) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// Get retrieves a facility by its directory id.
func (r *GormFacilityRepository) Get(ctx context.Context, id int64) (*facility.Facility, error) {
	var dto FacilityDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("facility", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves the full facility directory in stable id order.
func (r *GormFacilityRepository) GetAll(ctx context.Context) ([]*facility.Facility, error) {
	var dtos []FacilityDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	facilities := make([]*facility.Facility, 0, len(dtos))
	for _, dto := range dtos {
		f, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}

	return facilities, nil
}
