// file: internals/features/admissions/applications/model/application_status.go
package model

// ApplicationStatus — enum tertutup status lifecycle aplikasi.
// Kode string di bawah adalah kontrak wire dengan frontend, jangan
// diubah tanpa migrasi.
type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "submitted"
	StatusUnderReview ApplicationStatus = "under_review"
	StatusApproved    ApplicationStatus = "approved"
	StatusRejected    ApplicationStatus = "rejected"
)

// Tabel transisi: submitted → under_review → {approved, rejected}.
// approved & rejected terminal (tidak punya successor).
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusSubmitted:   {StatusUnderReview},
	StatusUnderReview: {StatusApproved, StatusRejected},
	StatusApproved:    {},
	StatusRejected:    {},
}

// IsValid cek apakah kode status dikenal
func (s ApplicationStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// IsTerminal: approved / rejected tidak bisa ditransisikan lagi
func (s ApplicationStatus) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

// CanTransitionTo cek target adalah successor langsung dari s
// (tanpa skip, tanpa self-transition, tanpa keluar dari terminal).
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ParseApplicationStatus validasi kode dari request
func ParseApplicationStatus(raw string) (ApplicationStatus, bool) {
	s := ApplicationStatus(raw)
	return s, s.IsValid()
}

// AggregatePaymentStatus — ringkasan status pembayaran di level aplikasi,
// fungsi murni dari status payment-payment di bawahnya.
type AggregatePaymentStatus string

const (
	AggregateNotPaid  AggregatePaymentStatus = "not_paid"
	AggregatePending  AggregatePaymentStatus = "pending"
	AggregateVerified AggregatePaymentStatus = "verified"
)
