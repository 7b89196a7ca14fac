// file: internals/features/admissions/programs/model/lookup_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// DegreeModel — data referensi jenjang pendidikan (contoh: Bachelor of Science)
type DegreeModel struct {
	DegreeID        uuid.UUID `gorm:"column:degree_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	DegreeName      string    `gorm:"column:degree_name;type:varchar(100);not null;unique" json:"name"`
	DegreeCreatedAt time.Time `gorm:"column:degree_created_at;autoCreateTime" json:"created_at"`
}

func (DegreeModel) TableName() string { return "degrees" }

// InstituteModel — data referensi institusi asal pendidikan
type InstituteModel struct {
	InstituteID        uuid.UUID `gorm:"column:institute_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	InstituteName      string    `gorm:"column:institute_name;type:varchar(150);not null;unique" json:"name"`
	InstituteCreatedAt time.Time `gorm:"column:institute_created_at;autoCreateTime" json:"created_at"`
}

func (InstituteModel) TableName() string { return "institutes" }
