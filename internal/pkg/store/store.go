// Package store owns the in-memory collections the whole service runs on.
// There is no durable storage; every record lives for the lifetime of the
// process. Echo serves requests concurrently, so all access to the fields
// below must hold Mu; repositories wrap every check-then-act sequence in a
// single critical section.
package store

import (
	"sync"

	"github.com/traviq/traviq-backend/internal/pkg/models"
)

// Store holds the three collections and the process-wide OTP slot.
type Store struct {
	Mu sync.RWMutex

	// Tourists is insertion-ordered; records are mutated in place and never
	// deleted.
	Tourists []*models.Tourist

	// DepartmentAlerts and EFIRReports are newest-first by construction:
	// new entries are only ever prepended.
	DepartmentAlerts []*models.DepartmentAlert
	EFIRReports      []*models.EFIRReport

	// LatestOTP is the single outstanding one-time code. Issuing a new code
	// overwrites it; successful verification clears it.
	LatestOTP string
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewSeeded returns a store populated with the demonstration fixtures.
func NewSeeded() *Store {
	s := New()
	s.seed()
	return s
}
