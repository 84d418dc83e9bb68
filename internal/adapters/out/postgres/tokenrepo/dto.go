// Package tokenrepo persists the token pool with GORM. Claims and releases are
// single conditional UPDATE statements so that only one terminal wins a token.
package tokenrepo

import (
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/kernel"
	"github.com/jetzoperations-gif/JETZ-Final/internal/core/domain/model/token"

	"github.com/google/uuid"
)

// TokenDTO is a row of the tokens table. The CHECK constraint mirrors the
// domain invariant: a token is active exactly when it has a current job.
type TokenDTO struct {
	ID           int        `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Status       string     `gorm:"type:varchar(16);not null;default:available;check:chk_tokens_status,status IN ('available', 'active')" json:"status"`
	CurrentJobID *uuid.UUID `gorm:"type:uuid;check:chk_tokens_current_job,(status = 'active') = (current_job_id IS NOT NULL)" json:"current_job_id"`
}

func (TokenDTO) TableName() string {
	return "tokens"
}

// nullableJobID turns a nil job into an untyped nil for map based updates.
func (d TokenDTO) nullableJobID() any {
	if d.CurrentJobID == nil {
		return nil
	}
	return *d.CurrentJobID
}

func fromDomain(tk *token.Token) TokenDTO {
	return TokenDTO{
		ID:           tk.Number(),
		Status:       tk.Status().String(),
		CurrentJobID: jobIDToDTO(tk.CurrentJobID()),
	}
}

func toDomain(dto TokenDTO) (*token.Token, error) {
	status, err := token.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var jobID *kernel.UUID
	if dto.CurrentJobID != nil {
		id, idErr := kernel.UUIDFromBytes((*dto.CurrentJobID)[:])
		if idErr != nil {
			return nil, idErr
		}
		jobID = &id
	}

	return token.RestoreToken(dto.ID, status, jobID)
}

func jobIDToDTO(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
