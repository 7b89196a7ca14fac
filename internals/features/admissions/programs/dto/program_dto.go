// file: internals/features/admissions/programs/dto/program_dto.go
package dto

import (
	"github.com/google/uuid"

	m "kampusku_backend/internals/features/admissions/programs/model"
)

/* =============== REQUESTS =============== */

type CreateNameOnlyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}

type CreateSessionRequest struct {
	Code     string `json:"code"      validate:"required,min=2,max=10"`
	Name     string `json:"session"   validate:"required,min=3,max=50"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

type CreateProgramRequest struct {
	Code     string    `json:"code"      validate:"required,min=2,max=20"`
	Name     string    `json:"name"      validate:"required,min=3,max=150"`
	DegreeID uuid.UUID `json:"degree_id" validate:"required"`
}

type CreateOfferingRequest struct {
	ProgramID      uuid.UUID `json:"program_id"      validate:"required"`
	SessionID      uuid.UUID `json:"session_id"      validate:"required"`
	ApplicationFee int64     `json:"application_fee" validate:"omitempty,gte=0"`
	IsActive       *bool     `json:"is_active"       validate:"omitempty"`
}

func (r CreateSessionRequest) ToModel() *m.AcademicSessionModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &m.AcademicSessionModel{
		SessionCode:     r.Code,
		SessionName:     r.Name,
		SessionIsActive: active,
	}
}

func (r CreateProgramRequest) ToModel() *m.ProgramModel {
	return &m.ProgramModel{
		ProgramCode:     r.Code,
		ProgramName:     r.Name,
		ProgramDegreeID: r.DegreeID,
	}
}

func (r CreateOfferingRequest) ToModel() *m.ProgramOfferingModel {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return &m.ProgramOfferingModel{
		OfferingProgramID:      r.ProgramID,
		OfferingSessionID:      r.SessionID,
		OfferingApplicationFee: r.ApplicationFee,
		OfferingIsActive:       active,
	}
}
