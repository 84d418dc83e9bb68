package catalogrepo

import (
	"context"
	"errors"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/pgerr"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/catalog"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/change"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements ports.CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker changeTracker
}

type changeTracker interface {
	Track(kind change.Kind, table string, row any)
}

func NewGormCatalogRepository(db *gorm.DB, tracker changeTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCatalogRepository) AddVehicleType(ctx context.Context, v *catalog.VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := VehicleTypeDTO{ID: v.ID().Bytes(), Name: v.Name(), SortOrder: v.SortOrder()}
	return r.create(ctx, "vehicle type", v.Name(), dto.TableName(), &dto)
}

func (r *GormCatalogRepository) GetVehicleType(ctx context.Context, id kernel.UUID) (*catalog.VehicleType, error) {
	var dto VehicleTypeDTO
	if err := r.first(ctx, &dto, "vehicle type", id); err != nil {
		return nil, err
	}
	return vehicleTypeToDomain(dto)
}

func (r *GormCatalogRepository) AddService(ctx context.Context, s *catalog.Service) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := ServiceDTO{ID: s.ID().Bytes(), Name: s.Name(), Description: s.Description()}
	return r.create(ctx, "service", s.Name(), dto.TableName(), &dto)
}

func (r *GormCatalogRepository) GetService(ctx context.Context, id kernel.UUID) (*catalog.Service, error) {
	var dto ServiceDTO
	if err := r.first(ctx, &dto, "service", id); err != nil {
		return nil, err
	}
	return serviceToDomain(dto)
}

func (r *GormCatalogRepository) UpdateService(ctx context.Context, s *catalog.Service) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := ServiceDTO{ID: s.ID().Bytes(), Name: s.Name(), Description: s.Description()}
	return r.save(ctx, "service", s.Name(), s.ID(), &ServiceDTO{}, &dto, dto.TableName())
}

// SetServicePrice upserts on (service_id, vehicle_type_id).
func (r *GormCatalogRepository) SetServicePrice(ctx context.Context, p *catalog.ServicePrice) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := ServicePriceDTO{
		ServiceID:     p.ServiceID().Bytes(),
		VehicleTypeID: p.VehicleTypeID().Bytes(),
		Price:         p.Price().Amount(),
	}

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "service_id"}, {Name: "vehicle_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"price"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.Track(change.Update, dto.TableName(), dto)
	return nil
}

func (r *GormCatalogRepository) GetServicePrice(ctx context.Context, serviceID, vehicleTypeID kernel.UUID) (*catalog.ServicePrice, error) {
	if err := errors.Join(serviceID.Validate(), vehicleTypeID.Validate()); err != nil {
		return nil, err
	}

	var dto ServicePriceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "service_id = ? AND vehicle_type_id = ?", serviceID.Bytes(), vehicleTypeID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service price", serviceID.String()+"/"+vehicleTypeID.String())
		}
		return nil, err
	}

	return servicePriceToDomain(dto)
}

func (r *GormCatalogRepository) AddInventoryItem(ctx context.Context, i *catalog.InventoryItem) error {
	if err := i.Validate(); err != nil {
		return err
	}

	dto := InventoryItemDTO{
		ID:       i.ID().Bytes(),
		Name:     i.Name(),
		Price:    i.Price().Amount(),
		StockQty: i.StockQty(),
		Category: i.Category().String(),
	}
	return r.create(ctx, "inventory item", i.Name(), dto.TableName(), &dto)
}

func (r *GormCatalogRepository) GetInventoryItem(ctx context.Context, id kernel.UUID) (*catalog.InventoryItem, error) {
	var dto InventoryItemDTO
	if err := r.first(ctx, &dto, "inventory item", id); err != nil {
		return nil, err
	}
	return inventoryItemToDomain(dto)
}

func (r *GormCatalogRepository) UpdateInventoryItem(ctx context.Context, i *catalog.InventoryItem) error {
	if err := i.Validate(); err != nil {
		return err
	}

	dto := InventoryItemDTO{
		ID:       i.ID().Bytes(),
		Name:     i.Name(),
		Price:    i.Price().Amount(),
		StockQty: i.StockQty(),
		Category: i.Category().String(),
	}
	return r.save(ctx, "inventory item", i.Name(), i.ID(), &InventoryItemDTO{}, &dto, dto.TableName())
}

func (r *GormCatalogRepository) create(ctx context.Context, param, name, table string, dto any) error {
	if err := r.db.WithContext(ctx).Create(dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause(param, name, err)
		}
		return err
	}

	r.tracker.Track(change.Insert, table, dto)
	return nil
}

// save overwrites every column but the key, zero values included.
func (r *GormCatalogRepository) save(ctx context.Context, param, name string, id kernel.UUID, model, dto any, table string) error {
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id.Bytes()).
		Select("*").
		Omit("ID").
		Updates(dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause(param, name, result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(param, id)
	}

	r.tracker.Track(change.Update, table, dto)
	return nil
}

func (r *GormCatalogRepository) first(ctx context.Context, dest any, param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).First(dest, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError(param, id)
		}
		return err
	}
	return nil
}
