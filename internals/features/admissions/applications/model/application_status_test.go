// file: internals/features/admissions/applications/model/application_status_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"submitted ke under_review", StatusSubmitted, StatusUnderReview, true},
		{"under_review ke approved", StatusUnderReview, StatusApproved, true},
		{"under_review ke rejected", StatusUnderReview, StatusRejected, true},

		{"skip review", StatusSubmitted, StatusApproved, false},
		{"submitted langsung rejected", StatusSubmitted, StatusRejected, false},
		{"self transition", StatusUnderReview, StatusUnderReview, false},
		{"mundur ke submitted", StatusUnderReview, StatusSubmitted, false},
		{"keluar dari approved", StatusApproved, StatusUnderReview, false},
		{"keluar dari rejected", StatusRejected, StatusUnderReview, false},
		{"approved ke rejected", StatusApproved, StatusRejected, false},
		{"target tidak dikenal", StatusSubmitted, ApplicationStatus("archived"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusSubmitted.IsTerminal())
	assert.False(t, StatusUnderReview.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, ApplicationStatus("archived").IsTerminal())
}

func TestParseApplicationStatus(t *testing.T) {
	s, ok := ParseApplicationStatus("under_review")
	assert.True(t, ok)
	assert.Equal(t, StatusUnderReview, s)

	_, ok = ParseApplicationStatus("waitlisted")
	assert.False(t, ok)

	_, ok = ParseApplicationStatus("")
	assert.False(t, ok)
}

func trail(statuses ...ApplicationStatus) []ApplicationTrackingModel {
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	entries := make([]ApplicationTrackingModel, 0, len(statuses))
	for i, s := range statuses {
		entries = append(entries, ApplicationTrackingModel{
			ApplicationTrackingID:        uint(i + 1),
			ApplicationTrackingStatus:    s,
			ApplicationTrackingTimestamp: base.Add(time.Duration(i) * time.Hour),
		})
	}
	return entries
}

func TestIsValidTrail(t *testing.T) {
	tests := []struct {
		name    string
		entries []ApplicationTrackingModel
		want    bool
	}{
		{"kosong", nil, false},
		{"hanya submitted", trail(StatusSubmitted), true},
		{"jalur penuh approved", trail(StatusSubmitted, StatusUnderReview, StatusApproved), true},
		{"jalur penuh rejected", trail(StatusSubmitted, StatusUnderReview, StatusRejected), true},
		{"tidak mulai dari submitted", trail(StatusUnderReview, StatusApproved), false},
		{"skip under_review", trail(StatusSubmitted, StatusApproved), false},
		{"lanjut setelah terminal", trail(StatusSubmitted, StatusUnderReview, StatusApproved, StatusRejected), false},
		{"status duplikat", trail(StatusSubmitted, StatusSubmitted), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidTrail(tt.entries))
		})
	}
}
