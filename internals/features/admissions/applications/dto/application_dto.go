// file: internals/features/admissions/applications/dto/application_dto.go
package dto

import "github.com/google/uuid"

// CreateApplicationRequest — body pendaftaran dari student
type CreateApplicationRequest struct {
	ProgramID uuid.UUID `json:"program_id" validate:"required"`
	SessionID uuid.UUID `json:"session_id" validate:"required"`
}

// ReviewRequest — body transisi status dari staff.
// Status harus salah satu kode yang dikenal, remarks opsional.
type ReviewRequest struct {
	Status  string  `json:"status" validate:"required,oneof=under_review approved rejected"`
	Remarks *string `json:"remarks" validate:"omitempty,max=500"`
}
