// file: internals/features/admissions/applications/service/errors.go
package service

import (
	"errors"
	"fmt"

	"kampusku_backend/internals/features/admissions/applications/model"
)

// Sentinel error domain aplikasi. Controller memetakan ini ke kode HTTP,
// service cukup mengembalikan salah satunya.
var (
	ErrNotFound          = errors.New("aplikasi tidak ditemukan")
	ErrProfileIncomplete = errors.New("profil belum lengkap 100%")
	ErrProgramNotOffered = errors.New("program tidak ditawarkan pada session ini")
	ErrInvalidTransition = errors.New("transisi status tidak valid")
	ErrStorageConflict   = errors.New("konflik update, silakan coba lagi")
)

// InvalidTransitionError membawa konteks status saat ini vs yang diminta.
// errors.Is(err, ErrInvalidTransition) tetap true.
type InvalidTransitionError struct {
	From model.ApplicationStatus
	To   model.ApplicationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transisi status tidak valid: %s → %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
