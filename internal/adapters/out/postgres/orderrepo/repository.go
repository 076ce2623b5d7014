package orderrepo

import (
	"context"
	"errors"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Lines, items and payments
// are replaced wholesale: quantity changes and the recalculation pipeline
// rewrite the child rows, so diffing them is not worth the complexity.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("Lines", "Payments", "CreatedAt").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", dto.ID).Delete(&PaymentDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Lines) > 0 {
			if err := tx.Create(&dto.Lines).Error; err != nil {
				return err
			}
		}
		if len(dto.Payments) > 0 {
			if err := tx.Create(&dto.Payments).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its full line, item and payment graph.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.loadQuery(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves an order by its public code.
func (r *GormOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto OrderDTO
	if err := r.loadQuery(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveForCustomer retrieves the most recently created active order
// owned by the given user.
func (r *GormOrderRepository) GetActiveForCustomer(ctx context.Context, userID kernel.UUID) (*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.loadQuery(ctx).
		Where("customer_user_id = ?", userID.Bytes()).
		Where("state IN ?", activeStateNames()).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active order", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStateOlderThan retrieves all orders in the given state created
// before the cutoff. The aggregate carries no per-state timestamp, so
// staleness is approximated by created_at; an order that entered the state
// late in its life is swept on the same schedule as one that started there.
func (r *GormOrderRepository) GetAllInStateOlderThan(ctx context.Context, state order.State, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.loadQuery(ctx).
		Where("state = ?", state.String()).
		Where("created_at < ?", cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) loadQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Lines.Items").
		Preload("Lines").
		Preload("Payments")
}

func activeStateNames() []string {
	states := order.ActiveStates()
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, s.String())
	}
	return names
}
