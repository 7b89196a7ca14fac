// file: internals/features/admissions/profiles/service/completion_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "kampusku_backend/internals/features/admissions/profiles/model"
)

// Kode section — dipakai di map hasil evaluasi & response JSON
const (
	SectionPersonal  = "personal"
	SectionContact   = "contact"
	SectionEducation = "education"
	SectionMedical   = "medical"
)

// Tiap section menyumbang bobot sama
const sectionWeight = 25

// ProfileSnapshot — potret profil untuk dievaluasi. Evaluasi murni dari
// snapshot ini: tidak menyentuh DB, input sama selalu hasil sama.
type ProfileSnapshot struct {
	Personal           *model.PersonalInfoModel
	Contact            *model.ContactInfoModel
	EducationalRecords []model.EducationalRecordModel
	Medical            *model.MedicalInfoModel
}

// EvaluateCompletion menghitung persentase kelengkapan profil (0-100)
// plus flag per section. Section education hanya terhitung lengkap
// kalau minimal ada satu record (slice kosong ≠ lengkap).
func EvaluateCompletion(snap ProfileSnapshot) (int, map[string]bool) {
	sections := map[string]bool{
		SectionPersonal:  snap.Personal != nil,
		SectionContact:   snap.Contact != nil,
		SectionEducation: len(snap.EducationalRecords) > 0,
		SectionMedical:   snap.Medical != nil,
	}

	percent := 0
	for _, done := range sections {
		if done {
			percent += sectionWeight
		}
	}
	return percent, sections
}

// LoadSnapshot mengambil keempat section milik user dari DB.
func LoadSnapshot(db *gorm.DB, userID uuid.UUID) (ProfileSnapshot, error) {
	var snap ProfileSnapshot

	var personal model.PersonalInfoModel
	if err := db.Where("personal_info_user_id = ?", userID).First(&personal).Error; err == nil {
		snap.Personal = &personal
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return snap, err
	}

	var contact model.ContactInfoModel
	if err := db.Where("contact_info_user_id = ?", userID).First(&contact).Error; err == nil {
		snap.Contact = &contact
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return snap, err
	}

	if err := db.
		Where("educational_record_user_id = ?", userID).
		Order("educational_record_passing_year ASC").
		Find(&snap.EducationalRecords).Error; err != nil {
		return snap, err
	}

	var medical model.MedicalInfoModel
	if err := db.Where("medical_info_user_id = ?", userID).First(&medical).Error; err == nil {
		snap.Medical = &medical
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return snap, err
	}

	return snap, nil
}
