package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/pgerr"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/order"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

// changeTracker receives every row this repository writes.
type changeTracker interface {
	Track(kind change.Kind, table string, row any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker changeTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, liveTokenIndex) {
			return fmt.Errorf("%w: token %d already has a live order: %w",
				token.ErrTokenUnavailable, aggregate.TokenNumber(), err)
		}
		return r.mapWriteError(aggregate.ID(), err)
	}

	r.tracker.Track(change.Insert, change.TableOrders, dto)
	for _, item := range dto.Items {
		r.tracker.Track(change.Insert, change.TableOrderItems, item)
	}
	return nil
}

// Update saves order fields and brings the stored lines in line with the aggregate.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("ID", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	if err := r.syncItems(db, aggregate.ID(), dto.Items); err != nil {
		return err
	}

	r.tracker.Track(change.Update, change.TableOrders, dto)
	return nil
}

func (r *GormOrderRepository) syncItems(db *gorm.DB, orderID kernel.UUID, items []OrderItemDTO) error {
	var stored []OrderItemDTO
	if err := db.Where("order_id = ?", orderID.Bytes()).Find(&stored).Error; err != nil {
		return err
	}

	storedByID := make(map[uuid.UUID]OrderItemDTO, len(stored))
	for _, s := range stored {
		storedByID[s.ID] = s
	}

	// Deletes go first so a line removed and re-added in one command does not
	// collide on the line index.
	wanted := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		wanted[item.ID] = struct{}{}
	}
	for _, s := range stored {
		if _, ok := wanted[s.ID]; ok {
			continue
		}
		if err := db.Delete(&OrderItemDTO{}, "id = ?", s.ID).Error; err != nil {
			return err
		}
		r.tracker.Track(change.Delete, change.TableOrderItems, s)
	}

	for _, item := range items {
		s, ok := storedByID[item.ID]
		switch {
		case !ok:
			if err := db.Create(&item).Error; err != nil {
				return r.mapWriteError(orderID, err)
			}
			r.tracker.Track(change.Insert, change.TableOrderItems, item)
		case s.Quantity != item.Quantity:
			if err := db.Model(&OrderItemDTO{}).Where("id = ?", item.ID).Update("quantity", item.Quantity).Error; err != nil {
				return err
			}
			s.Quantity = item.Quantity
			r.tracker.Track(change.Update, change.TableOrderItems, s)
		}
	}

	return nil
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order with its row locked for the rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := q.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	if err := r.itemsQuery(ctx).Where("order_id = ?", dto.ID).Find(&dto.Items).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// ListItems returns the lines of an order, service line first.
func (r *GormOrderRepository) ListItems(ctx context.Context, orderID kernel.UUID) ([]*order.Item, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	if err := r.itemsQuery(ctx).Where("order_id = ?", orderID.Bytes()).Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := itemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// GetAllActive retrieves orders in the given statuses, or all live orders, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if len(statuses) == 0 {
		statuses = order.LiveStatuses()
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		names = append(names, s.String())
	}

	return r.find(ctx, "status IN ?", names)
}

// GetLiveByTokenNumber retrieves the live orders carrying a token number.
func (r *GormOrderRepository) GetLiveByTokenNumber(ctx context.Context, number int) ([]*order.Order, error) {
	names := make([]string, 0, len(order.LiveStatuses()))
	for _, s := range order.LiveStatuses() {
		names = append(names, s.String())
	}

	return r.find(ctx, "token_number = ? AND status IN ?", number, names)
}

func (r *GormOrderRepository) find(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("item_type DESC, created_at, id")
		}).
		Where(query, args...).
		Order("created_at, id").
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

// itemsQuery orders lines with the service line first, then by sale time.
func (r *GormOrderRepository) itemsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Order("item_type DESC, created_at, id")
}

func (r *GormOrderRepository) mapWriteError(orderID kernel.UUID, err error) error {
	if pgerr.IsUniqueViolation(err, lineIndex) {
		return errs.NewObjectAlreadyExistsErrorWithCause("order item", orderID, err)
	}
	if pgerr.IsUniqueViolation(err) {
		return errs.NewObjectAlreadyExistsErrorWithCause("order", orderID, err)
	}
	return err
}
