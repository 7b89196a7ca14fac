// file: internals/features/admissions/applications/model/application_tracking_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationTrackingModel — ledger append-only perjalanan status aplikasi.
// Entri tidak pernah di-update / dihapus. PK autoincrement dipakai sebagai
// tie-break urutan saat dua entri punya timestamp identik.
type ApplicationTrackingModel struct {
	ApplicationTrackingID uint `gorm:"column:application_tracking_id;primaryKey" json:"id"`

	ApplicationTrackingApplicationID uuid.UUID         `gorm:"column:application_tracking_application_id;type:uuid;not null;index" json:"application_id"`
	ApplicationTrackingStatus        ApplicationStatus `gorm:"column:application_tracking_status;type:varchar(20);not null" json:"status"`
	ApplicationTrackingActorID       uuid.UUID         `gorm:"column:application_tracking_actor_id;type:uuid;not null" json:"actor_id"`
	ApplicationTrackingRemarks       *string           `gorm:"column:application_tracking_remarks;type:text" json:"remarks,omitempty"`

	ApplicationTrackingTimestamp time.Time `gorm:"column:application_tracking_timestamp;not null" json:"timestamp"`
}

func (ApplicationTrackingModel) TableName() string {
	return "application_trackings"
}

// IsValidTrail validasi entri tracking (sudah terurut timestamp ASC, id ASC)
// membentuk jalur transisi yang legal dan dimulai dari submitted.
func IsValidTrail(entries []ApplicationTrackingModel) bool {
	if len(entries) == 0 {
		return false
	}
	if entries[0].ApplicationTrackingStatus != StatusSubmitted {
		return false
	}
	for i := 1; i < len(entries); i++ {
		prev := entries[i-1].ApplicationTrackingStatus
		if !prev.CanTransitionTo(entries[i].ApplicationTrackingStatus) {
			return false
		}
	}
	return true
}
