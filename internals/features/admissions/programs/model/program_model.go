// file: internals/features/admissions/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// AcademicSessionModel merepresentasikan tabel academic_sessions
type AcademicSessionModel struct {
	SessionID       uuid.UUID `gorm:"column:session_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SessionCode     string    `gorm:"column:session_code;type:varchar(10);not null;unique" json:"code"` // contoh: FA26
	SessionName     string    `gorm:"column:session_name;type:varchar(50);not null" json:"session"`     // contoh: Fall 2026
	SessionIsActive bool      `gorm:"column:session_is_active;not null;default:true" json:"is_active"`

	SessionCreatedAt time.Time `gorm:"column:session_created_at;autoCreateTime" json:"created_at"`
}

func (AcademicSessionModel) TableName() string { return "academic_sessions" }

// ProgramModel merepresentasikan tabel programs
type ProgramModel struct {
	ProgramID       uuid.UUID `gorm:"column:program_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProgramCode     string    `gorm:"column:program_code;type:varchar(20);not null;unique" json:"code"`
	ProgramName     string    `gorm:"column:program_name;type:varchar(150);not null" json:"name"`
	ProgramDegreeID uuid.UUID `gorm:"column:program_degree_id;type:uuid;not null" json:"degree_id"`

	ProgramCreatedAt time.Time `gorm:"column:program_created_at;autoCreateTime" json:"created_at"`

	Degree *DegreeModel `gorm:"foreignKey:ProgramDegreeID;references:DegreeID" json:"degree,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }

// ProgramOfferingModel — program yang dibuka pada sesi tertentu.
// Aplikasi hanya boleh dibuat terhadap offering yang aktif.
type ProgramOfferingModel struct {
	OfferingID        uuid.UUID `gorm:"column:offering_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OfferingProgramID uuid.UUID `gorm:"column:offering_program_id;type:uuid;not null;uniqueIndex:uq_offering_program_session" json:"program_id"`
	OfferingSessionID uuid.UUID `gorm:"column:offering_session_id;type:uuid;not null;uniqueIndex:uq_offering_program_session" json:"session_id"`
	OfferingIsActive  bool      `gorm:"column:offering_is_active;not null;default:true" json:"is_active"`

	// Biaya formulir (application_fee) untuk offering ini
	OfferingApplicationFee int64 `gorm:"column:offering_application_fee;not null;default:0" json:"application_fee"`

	OfferingCreatedAt time.Time `gorm:"column:offering_created_at;autoCreateTime" json:"created_at"`

	Program *ProgramModel         `gorm:"foreignKey:OfferingProgramID;references:ProgramID" json:"program,omitempty"`
	Session *AcademicSessionModel `gorm:"foreignKey:OfferingSessionID;references:SessionID" json:"session,omitempty"`
}

func (ProgramOfferingModel) TableName() string { return "program_offerings" }
