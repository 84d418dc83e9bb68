package queries

import (
	"context"

	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListStaffQueryHandler struct {
	db *gorm.DB
}

func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) ([]StaffMember, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]StaffMember, 0)

	stmt := h.db.WithContext(ctx).
		Table("staff").
		Select("id, name, role, active, pin_hash <> '' AS has_pin").
		Order("name")
	if query.ActiveOnly() {
		stmt = stmt.Where("active")
	}
	if roles := query.Roles(); len(roles) > 0 {
		stmt = stmt.Where("role IN ?", statusNames(roles))
	}

	rows, err := stmt.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			member StaffMember
			id     uuid.UUID
			role   string
		)

		if err = rows.Scan(&id, &member.Name, &role, &member.Active, &member.HasPIN); err != nil {
			return nil, err
		}
		if member.ID, err = scannedUUID(id); err != nil {
			return nil, err
		}
		if member.Role, err = staff.ParseRole(role); err != nil {
			return nil, err
		}

		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
