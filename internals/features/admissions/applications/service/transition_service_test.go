// file: internals/features/admissions/applications/service/transition_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/features/admissions/applications/model"
	programModel "kampusku_backend/internals/features/admissions/programs/model"
)

func TestPlanTransition(t *testing.T) {
	tests := []struct {
		name    string
		current model.ApplicationStatus
		target  model.ApplicationStatus
		wantErr bool
	}{
		{"submitted ke under_review", model.StatusSubmitted, model.StatusUnderReview, false},
		{"under_review ke approved", model.StatusUnderReview, model.StatusApproved, false},
		{"under_review ke rejected", model.StatusUnderReview, model.StatusRejected, false},
		{"skip review ditolak", model.StatusSubmitted, model.StatusApproved, true},
		{"terminal tidak bisa lanjut", model.StatusApproved, model.StatusRejected, true},
		{"self transition ditolak", model.StatusUnderReview, model.StatusUnderReview, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := planTransition(tt.current, tt.target)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidTransition))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// Dua reviewer memproses aplikasi yang sama: row lock membuat proposal
// berjalan serial, jadi yang kedua selalu melihat status hasil commit
// pertama. Replay validasinya di sini untuk dua skenario balapan umum.
func TestPlanTransitionSerializedRace(t *testing.T) {
	// balapan identik: dua-duanya submitted → under_review
	require.NoError(t, planTransition(model.StatusSubmitted, model.StatusUnderReview))
	err := planTransition(model.StatusUnderReview, model.StatusUnderReview)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	// approve vs reject: pemenang commit approved, yang kalah ditolak
	require.NoError(t, planTransition(model.StatusUnderReview, model.StatusApproved))
	err = planTransition(model.StatusApproved, model.StatusRejected)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	var invalid *InvalidTransitionError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, model.StatusApproved, invalid.From)
	assert.Equal(t, model.StatusRejected, invalid.To)
}

func TestValidateRegistrationGate(t *testing.T) {
	activeOffering := &programModel.ProgramOfferingModel{
		OfferingIsActive: true,
		Session:          &programModel.AcademicSessionModel{SessionIsActive: true},
	}

	tests := []struct {
		name     string
		percent  int
		offering *programModel.ProgramOfferingModel
		wantErr  error
	}{
		{"profil kosong", 0, activeOffering, ErrProfileIncomplete},
		{"profil 75 persen", 75, activeOffering, ErrProfileIncomplete},
		{"profil belum lengkap dicek duluan", 50, nil, ErrProfileIncomplete},
		{"offering tidak ada", 100, nil, ErrProgramNotOffered},
		{
			"offering nonaktif",
			100,
			&programModel.ProgramOfferingModel{
				OfferingIsActive: false,
				Session:          &programModel.AcademicSessionModel{SessionIsActive: true},
			},
			ErrProgramNotOffered,
		},
		{
			"session nonaktif",
			100,
			&programModel.ProgramOfferingModel{
				OfferingIsActive: true,
				Session:          &programModel.AcademicSessionModel{SessionIsActive: false},
			},
			ErrProgramNotOffered,
		},
		{"semua syarat terpenuhi", 100, activeOffering, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegistrationGate(tt.percent, tt.offering)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
		})
	}
}
