package forms

import (
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
)

// Mode distinguishes create from edit forms
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// FieldErrors maps field names to validation messages
type FieldErrors map[string]string

// Empty reports whether validation passed
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// First returns one validation message for inline display
func (e FieldErrors) First() string {
	for _, msg := range e {
		return msg
	}
	return ""
}

// submitState is the shared submit machinery embedded by every form
// controller: a loading flag for the UI plus a secondary lock so two
// rapid submit clicks produce exactly one network mutation and exactly
// one onSubmit/onClose callback pair.
type submitState struct {
	submitting atomic.Bool
	lock       atomic.Bool

	mu        sync.Mutex
	serverErr string
}

// begin acquires the submit lock. It returns false when a submit is
// already in flight, in which case the caller must do nothing.
func (s *submitState) begin() bool {
	if !s.lock.CompareAndSwap(false, true) {
		return false
	}
	s.submitting.Store(true)
	s.setServerError("")
	return true
}

// end releases the submit lock
func (s *submitState) end() {
	s.submitting.Store(false)
	s.lock.Store(false)
}

// Submitting reports whether a submit is in flight; the triggering
// control stays disabled while true
func (s *submitState) Submitting() bool {
	return s.submitting.Load()
}

// ServerError returns the message from the last failed submit, shown
// inline while the modal stays open with the draft intact
func (s *submitState) ServerError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverErr
}

// setServerError records the inline failure message
func (s *submitState) setServerError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverErr = msg
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidEmail reports whether s looks like an email address
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidPhone reports whether s is a 10-digit phone number, with or
// without the +91 country prefix and common separators
func ValidPhone(s string) bool {
	digits := digitsOf(s)
	if strings.HasPrefix(strings.TrimSpace(s), "+") {
		return len(digits) == 12 && strings.HasPrefix(digits, "91")
	}
	return len(digits) == 10
}

// digitsOf strips everything but digits
func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
