// file: internals/features/admissions/profiles/service/completion_service_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "kampusku_backend/internals/features/admissions/profiles/model"
)

func TestEvaluateCompletion(t *testing.T) {
	personal := &model.PersonalInfoModel{PersonalInfoFullName: "Budi Santoso"}
	contact := &model.ContactInfoModel{ContactInfoCity: "Bandung"}
	medical := &model.MedicalInfoModel{MedicalInfoBloodGroup: "O"}
	education := []model.EducationalRecordModel{{EducationalRecordPassingYear: 2024}}

	tests := []struct {
		name        string
		snap        ProfileSnapshot
		wantPercent int
	}{
		{
			name:        "profil kosong",
			snap:        ProfileSnapshot{},
			wantPercent: 0,
		},
		{
			name:        "hanya personal",
			snap:        ProfileSnapshot{Personal: personal},
			wantPercent: 25,
		},
		{
			name: "personal + contact",
			snap: ProfileSnapshot{
				Personal: personal,
				Contact:  contact,
			},
			wantPercent: 50,
		},
		{
			name: "tiga section tanpa education",
			snap: ProfileSnapshot{
				Personal: personal,
				Contact:  contact,
				Medical:  medical,
			},
			wantPercent: 75,
		},
		{
			name: "lengkap",
			snap: ProfileSnapshot{
				Personal:           personal,
				Contact:            contact,
				EducationalRecords: education,
				Medical:            medical,
			},
			wantPercent: 100,
		},
		{
			name: "education slice kosong tidak dihitung",
			snap: ProfileSnapshot{
				Personal:           personal,
				Contact:            contact,
				EducationalRecords: []model.EducationalRecordModel{},
				Medical:            medical,
			},
			wantPercent: 75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, sections := EvaluateCompletion(tt.snap)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Len(t, sections, 4)
		})
	}
}

func TestEvaluateCompletionSectionFlags(t *testing.T) {
	percent, sections := EvaluateCompletion(ProfileSnapshot{
		Personal:           &model.PersonalInfoModel{},
		EducationalRecords: []model.EducationalRecordModel{{}, {}},
	})

	assert.Equal(t, 50, percent)
	assert.True(t, sections[SectionPersonal])
	assert.False(t, sections[SectionContact])
	assert.True(t, sections[SectionEducation])
	assert.False(t, sections[SectionMedical])
}
