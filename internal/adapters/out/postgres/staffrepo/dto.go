// Package staffrepo persists staff members with GORM.
package staffrepo

import (
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

// StaffDTO is a row of the staff table. The PIN hash never leaves the
// database in change events.
type StaffDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(128);not null" json:"name"`
	Role    string    `gorm:"type:varchar(16);not null" json:"role"`
	PINHash string    `gorm:"column:pin_hash;type:varchar(72);not null;default:''" json:"-"`
	Active  bool      `gorm:"not null;default:true" json:"active"`
}

// NameIndexDDL makes names unique regardless of case, matching how washers
// are looked up at payment. Gorm tags cannot declare an expression index.
const NameIndexDDL = "CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_name_lower ON staff (lower(name))"

func (StaffDTO) TableName() string {
	return "staff"
}

func fromDomain(s *staff.Staff) StaffDTO {
	return StaffDTO{
		ID:      s.ID().Bytes(),
		Name:    s.Name(),
		Role:    s.Role().String(),
		PINHash: s.PINHash(),
		Active:  s.IsActive(),
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := staff.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return staff.RestoreStaff(id, dto.Name, role, dto.PINHash, dto.Active)
}
