// Package ident provides record id and installation id generation.
//
// Record ids are millisecond-derived numeric strings. The generator is
// monotonic within the process: when the wall clock has not advanced
// since the previous id (rapid successive calls), the next id is the
// previous value plus one. Sorting ids numerically recovers insertion
// order, which the UI relies on for "most recent first" views.
package ident

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator issues unique, strictly increasing record ids.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewGenerator creates a Generator backed by the system clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock creates a Generator with a custom clock, for tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// NextID returns the next record id.
func (g *Generator) NextID() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// Less reports whether id a was issued before id b.
// Non-numeric ids (imported from elsewhere) fall back to string order.
func Less(a, b string) bool {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA != nil || errB != nil {
		return a < b
	}
	return na < nb
}

// UUID v4 format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
// where y is one of [8, 9, a, b] (variant bits)
var uuidV4Regex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)

// NewInstallationID generates a new installation UUID v4.
// The installation id scopes the persisted document and tags mirror requests.
func NewInstallationID() string {
	return uuid.New().String()
}

// IsValidInstallationID checks if a string is a valid UUID v4.
func IsValidInstallationID(s string) bool {
	return uuidV4Regex.MatchString(s)
}

// ValidateInstallationID returns an error if the string is not a valid UUID v4.
func ValidateInstallationID(s string) error {
	if !IsValidInstallationID(s) {
		return fmt.Errorf("invalid installation id: %q", s)
	}
	return nil
}
