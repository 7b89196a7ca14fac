// file: internals/features/admissions/profiles/dto/profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "kampusku_backend/internals/features/admissions/profiles/model"
)

/* =============== REQUESTS =============== */

type UpsertPersonalInfoRequest struct {
	FullName    string     `json:"full_name"     validate:"required,min=3,max=100"`
	FatherName  string     `json:"father_name"   validate:"required,min=3,max=100"`
	CNIC        string     `json:"cnic"          validate:"required,min=5,max=20"`
	Gender      string     `json:"gender"        validate:"required,oneof=male female other"`
	DateOfBirth *time.Time `json:"date_of_birth" validate:"omitempty"`
}

func (r UpsertPersonalInfoRequest) ToModel(userID uuid.UUID) *m.PersonalInfoModel {
	return &m.PersonalInfoModel{
		PersonalInfoUserID:      userID,
		PersonalInfoFullName:    r.FullName,
		PersonalInfoFatherName:  r.FatherName,
		PersonalInfoCNIC:        r.CNIC,
		PersonalInfoGender:      r.Gender,
		PersonalInfoDateOfBirth: r.DateOfBirth,
	}
}

type UpsertContactInfoRequest struct {
	Address    string  `json:"address"     validate:"required,min=5"`
	City       string  `json:"city"        validate:"required,min=2,max=50"`
	Province   *string `json:"province"    validate:"omitempty,max=50"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=10"`
	Phone      string  `json:"phone"       validate:"required,min=7,max=20"`
}

func (r UpsertContactInfoRequest) ToModel(userID uuid.UUID) *m.ContactInfoModel {
	return &m.ContactInfoModel{
		ContactInfoUserID:     userID,
		ContactInfoAddress:    r.Address,
		ContactInfoCity:       r.City,
		ContactInfoProvince:   r.Province,
		ContactInfoPostalCode: r.PostalCode,
		ContactInfoPhone:      r.Phone,
	}
}

type CreateEducationalRecordRequest struct {
	DegreeID      uuid.UUID `json:"degree_id"      validate:"required"`
	InstituteID   uuid.UUID `json:"institute_id"   validate:"required"`
	PassingYear   int16     `json:"passing_year"   validate:"required,gte=1950,lte=2100"`
	TotalMarks    int       `json:"total_marks"    validate:"required,gt=0"`
	ObtainedMarks int       `json:"obtained_marks" validate:"required,gte=0"`
	Subjects      []string  `json:"subjects"       validate:"omitempty,dive,min=1"`
}

func (r CreateEducationalRecordRequest) ToModel(userID uuid.UUID) *m.EducationalRecordModel {
	return &m.EducationalRecordModel{
		EducationalRecordUserID:        userID,
		EducationalRecordDegreeID:      r.DegreeID,
		EducationalRecordInstituteID:   r.InstituteID,
		EducationalRecordPassingYear:   r.PassingYear,
		EducationalRecordTotalMarks:    r.TotalMarks,
		EducationalRecordObtainedMarks: r.ObtainedMarks,
		EducationalRecordSubjects:      pq.StringArray(r.Subjects),
	}
}

type UpsertMedicalInfoRequest struct {
	BloodGroup       string  `json:"blood_group"       validate:"required,max=5"`
	HasDisability    bool    `json:"has_disability"`
	DisabilityDetail *string `json:"disability_detail" validate:"omitempty"`
	EmergencyContact string  `json:"emergency_contact" validate:"required,min=7,max=20"`
}

func (r UpsertMedicalInfoRequest) ToModel(userID uuid.UUID) *m.MedicalInfoModel {
	return &m.MedicalInfoModel{
		MedicalInfoUserID:           userID,
		MedicalInfoBloodGroup:       r.BloodGroup,
		MedicalInfoHasDisability:    r.HasDisability,
		MedicalInfoDisabilityDetail: r.DisabilityDetail,
		MedicalInfoEmergencyContact: r.EmergencyContact,
	}
}

/* =============== RESPONSES =============== */

// ProfileResponse — bentuk yang dibaca halaman profil & dashboard:
// keempat section + persentase kelengkapan + flag per section.
type ProfileResponse struct {
	PersonalInfo       *m.PersonalInfoModel     `json:"personal_info"`
	ContactInfo        *m.ContactInfoModel      `json:"contact_info"`
	EducationalRecords []m.EducationalRecordModel `json:"educational_records"`
	MedicalInfo        *m.MedicalInfoModel      `json:"medical_info"`

	ProfileCompletion int             `json:"profile_completion"`
	Sections          map[string]bool `json:"sections"`
}
