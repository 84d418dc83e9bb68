package postgres

import (
	"fmt"

	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/catalogrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/changefeed"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/expenserepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/orderrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/settingrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/staffrepo"
	"github.com/jetzoperations-gif/JETZ-Final/internal/adapters/out/postgres/tokenrepo"

	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&tokenrepo.TokenDTO{},
		&catalogrepo.VehicleTypeDTO{},
		&catalogrepo.ServiceDTO{},
		&catalogrepo.ServicePriceDTO{},
		&catalogrepo.InventoryItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&staffrepo.StaffDTO{},
		&expenserepo.ExpenseDTO{},
		&settingrepo.SettingDTO{},
		&changefeed.RowChangeDTO{},
	}
}

// indexes are created after AutoMigrate. They need partial or expression
// definitions that struct tags cannot carry.
func indexes() []string {
	return []string{
		orderrepo.LiveTokenIndexDDL(),
		"DROP INDEX IF EXISTS idx_staff_name",
		staffrepo.NameIndexDDL,
	}
}

// Migrate creates or updates the schema: the tables and constraints declared
// on the DTOs, then the one-live-order-per-token and case-insensitive staff
// name indexes.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	for _, ddl := range indexes() {
		if err := db.Exec(ddl).Error; err != nil {
			return fmt.Errorf("migrate %q: %w", ddl, err)
		}
	}
	return nil
}
