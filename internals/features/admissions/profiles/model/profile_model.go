// file: internals/features/admissions/profiles/model/profile_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PersonalInfoModel merepresentasikan tabel student_personal_infos (satu per user)
type PersonalInfoModel struct {
	PersonalInfoID     uuid.UUID `gorm:"column:personal_info_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	PersonalInfoUserID uuid.UUID `gorm:"column:personal_info_user_id;type:uuid;not null;uniqueIndex:uq_personal_info_user" json:"user_id"`

	PersonalInfoFullName    string     `gorm:"column:personal_info_full_name;type:varchar(100);not null" json:"full_name"`
	PersonalInfoFatherName  string     `gorm:"column:personal_info_father_name;type:varchar(100);not null" json:"father_name"`
	PersonalInfoCNIC        string     `gorm:"column:personal_info_cnic;type:varchar(20);not null" json:"cnic"`
	PersonalInfoGender      string     `gorm:"column:personal_info_gender;type:varchar(10);not null" json:"gender"`
	PersonalInfoDateOfBirth *time.Time `gorm:"column:personal_info_date_of_birth;type:date" json:"date_of_birth,omitempty"`

	PersonalInfoCreatedAt time.Time      `gorm:"column:personal_info_created_at;autoCreateTime" json:"created_at"`
	PersonalInfoUpdatedAt *time.Time     `gorm:"column:personal_info_updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	PersonalInfoDeletedAt gorm.DeletedAt `gorm:"column:personal_info_deleted_at;index" json:"deleted_at,omitempty"`
}

func (PersonalInfoModel) TableName() string { return "student_personal_infos" }

// ContactInfoModel merepresentasikan tabel student_contact_infos (satu per user)
type ContactInfoModel struct {
	ContactInfoID     uuid.UUID `gorm:"column:contact_info_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ContactInfoUserID uuid.UUID `gorm:"column:contact_info_user_id;type:uuid;not null;uniqueIndex:uq_contact_info_user" json:"user_id"`

	ContactInfoAddress    string  `gorm:"column:contact_info_address;type:text;not null" json:"address"`
	ContactInfoCity       string  `gorm:"column:contact_info_city;type:varchar(50);not null" json:"city"`
	ContactInfoProvince   *string `gorm:"column:contact_info_province;type:varchar(50)" json:"province,omitempty"`
	ContactInfoPostalCode *string `gorm:"column:contact_info_postal_code;type:varchar(10)" json:"postal_code,omitempty"`
	ContactInfoPhone      string  `gorm:"column:contact_info_phone;type:varchar(20);not null" json:"phone"`

	ContactInfoCreatedAt time.Time      `gorm:"column:contact_info_created_at;autoCreateTime" json:"created_at"`
	ContactInfoUpdatedAt *time.Time     `gorm:"column:contact_info_updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	ContactInfoDeletedAt gorm.DeletedAt `gorm:"column:contact_info_deleted_at;index" json:"deleted_at,omitempty"`
}

func (ContactInfoModel) TableName() string { return "student_contact_infos" }

// EducationalRecordModel merepresentasikan tabel student_educational_records (banyak per user)
type EducationalRecordModel struct {
	EducationalRecordID     uuid.UUID `gorm:"column:educational_record_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EducationalRecordUserID uuid.UUID `gorm:"column:educational_record_user_id;type:uuid;not null;index:idx_edu_records_user" json:"user_id"`

	EducationalRecordDegreeID    uuid.UUID `gorm:"column:educational_record_degree_id;type:uuid;not null" json:"degree_id"`
	EducationalRecordInstituteID uuid.UUID `gorm:"column:educational_record_institute_id;type:uuid;not null" json:"institute_id"`

	EducationalRecordPassingYear   int16          `gorm:"column:educational_record_passing_year;type:smallint;not null" json:"passing_year"`
	EducationalRecordTotalMarks    int            `gorm:"column:educational_record_total_marks;not null" json:"total_marks"`
	EducationalRecordObtainedMarks int            `gorm:"column:educational_record_obtained_marks;not null" json:"obtained_marks"`
	EducationalRecordSubjects      pq.StringArray `gorm:"column:educational_record_subjects;type:text[]" json:"subjects,omitempty"`

	EducationalRecordCreatedAt time.Time      `gorm:"column:educational_record_created_at;autoCreateTime" json:"created_at"`
	EducationalRecordDeletedAt gorm.DeletedAt `gorm:"column:educational_record_deleted_at;index" json:"deleted_at,omitempty"`
}

func (EducationalRecordModel) TableName() string { return "student_educational_records" }

// MedicalInfoModel merepresentasikan tabel student_medical_infos (satu per user)
type MedicalInfoModel struct {
	MedicalInfoID     uuid.UUID `gorm:"column:medical_info_id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	MedicalInfoUserID uuid.UUID `gorm:"column:medical_info_user_id;type:uuid;not null;uniqueIndex:uq_medical_info_user" json:"user_id"`

	MedicalInfoBloodGroup       string  `gorm:"column:medical_info_blood_group;type:varchar(5);not null" json:"blood_group"`
	MedicalInfoHasDisability    bool    `gorm:"column:medical_info_has_disability;not null;default:false" json:"has_disability"`
	MedicalInfoDisabilityDetail *string `gorm:"column:medical_info_disability_detail;type:text" json:"disability_detail,omitempty"`
	MedicalInfoEmergencyContact string  `gorm:"column:medical_info_emergency_contact;type:varchar(20);not null" json:"emergency_contact"`

	MedicalInfoCreatedAt time.Time      `gorm:"column:medical_info_created_at;autoCreateTime" json:"created_at"`
	MedicalInfoUpdatedAt *time.Time     `gorm:"column:medical_info_updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	MedicalInfoDeletedAt gorm.DeletedAt `gorm:"column:medical_info_deleted_at;index" json:"deleted_at,omitempty"`
}

func (MedicalInfoModel) TableName() string { return "student_medical_infos" }
