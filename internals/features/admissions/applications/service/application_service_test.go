// file: internals/features/admissions/applications/service/application_service_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"kampusku_backend/internals/features/admissions/applications/model"
)

func TestBuildTrackingCode(t *testing.T) {
	assert.Equal(t, "ADM-FA26-000001", BuildTrackingCode("FA26", 1))
	assert.Equal(t, "ADM-SP27-000342", BuildTrackingCode("SP27", 342))
	// lebih dari 6 digit tidak dipotong
	assert.Equal(t, "ADM-FA26-1000000", BuildTrackingCode("FA26", 1000000))
}

func TestInvalidTransitionError(t *testing.T) {
	err := &InvalidTransitionError{From: model.StatusSubmitted, To: model.StatusApproved}

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Contains(t, err.Error(), "submitted")
	assert.Contains(t, err.Error(), "approved")

	// sentinel lain tidak ikut match
	assert.False(t, errors.Is(err, ErrStorageConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestQRLinkGenerator(t *testing.T) {
	gen := NewQRLinkGenerator()

	url, err := gen.Generate("ADM-FA26-000007")
	assert.NoError(t, err)
	assert.Contains(t, url, "data=ADM-FA26-000007")

	_, err = gen.Generate("")
	assert.Error(t, err)
}
