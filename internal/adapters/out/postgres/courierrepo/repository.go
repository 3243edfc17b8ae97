package courierrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":         dto.Name,
		"email":        dto.Email,
		"phone":        dto.Phone,
		"is_available": dto.IsAvailable,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ReserveFirstAvailable atomically picks one available courier and flips
// them to unavailable. The row lock with SKIP LOCKED guarantees that two
// concurrent reservations can never pick the same courier, without making
// one wait on the other's row.
func (r *GormCourierRepository) ReserveFirstAvailable(ctx context.Context) (*courier.Courier, error) {
	var dto CourierDTO
	result := r.db.WithContext(ctx).Raw(`
		UPDATE couriers
		SET is_available = FALSE, updated_at = NOW()
		WHERE id = (
			SELECT id FROM couriers
			WHERE is_available
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, name, email, phone, is_available, created_at, updated_at
	`).Scan(&dto)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ports.ErrNoCourierAvailable
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// Release marks the courier as available again. The update is a plain flag
// write, so releasing an already available courier is a no-op.
func (r *GormCourierRepository) Release(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&CourierDTO{}).
		Where("id = ?", id.Bytes()).
		Update("is_available", true)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.String())
	}

	return nil
}

// GetAllStranded retrieves busy couriers that no open order references.
func (r *GormCourierRepository) GetAllStranded(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.id, c.name, c.email, c.phone, c.is_available, c.created_at, c.updated_at
		FROM couriers c
		WHERE NOT c.is_available
		  AND NOT EXISTS (
			SELECT 1 FROM orders o
			WHERE o.courier_id = c.id AND o.status <> 'delivered'
		  )
		ORDER BY c.id
	`).Scan(&dtos).Error
	if err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, domainErr := toDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}
