// file: internals/features/admissions/applications/model/application_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	programModel "kampusku_backend/internals/features/admissions/programs/model"
)

// ApplicationModel — satu pendaftaran student ke sebuah program offering.
// application_tracking_code adalah identitas publik yang dilihat pendaftar
// (tersemat di QR), application_form_no nomor urut dari sequence DB.
type ApplicationModel struct {
	ApplicationID uuid.UUID `gorm:"column:application_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ApplicationFormNo       int64  `gorm:"column:application_form_no;not null;uniqueIndex" json:"form_no"`
	ApplicationTrackingCode string `gorm:"column:application_tracking_code;type:varchar(30);not null;uniqueIndex" json:"tracking_id"`

	ApplicationStudentID uuid.UUID `gorm:"column:application_student_id;type:uuid;not null;index" json:"student_id"`
	ApplicationProgramID uuid.UUID `gorm:"column:application_program_id;type:uuid;not null;index" json:"program_id"`
	ApplicationSessionID uuid.UUID `gorm:"column:application_session_id;type:uuid;not null;index" json:"session_id"`

	ApplicationStatus        ApplicationStatus      `gorm:"column:application_status;type:varchar(20);not null;default:'submitted'" json:"status"`
	ApplicationPaymentStatus AggregatePaymentStatus `gorm:"column:application_payment_status;type:varchar(20);not null;default:'not_paid'" json:"payment_status"`

	// URL artefak QR, diisi async setelah aplikasi disetujui
	ApplicationQRCode *string `gorm:"column:application_qrcode;type:text" json:"qrcode,omitempty"`

	ApplicationAppliedAt time.Time `gorm:"column:application_applied_at;autoCreateTime" json:"applied_at"`
	ApplicationUpdatedAt time.Time `gorm:"column:application_updated_at;autoUpdateTime" json:"updated_at"`

	Program *programModel.ProgramModel         `gorm:"foreignKey:ApplicationProgramID;references:ProgramID" json:"program,omitempty"`
	Session *programModel.AcademicSessionModel `gorm:"foreignKey:ApplicationSessionID;references:SessionID" json:"session,omitempty"`
}

func (ApplicationModel) TableName() string {
	return "applications"
}
