package id

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID returns a canonical v4 UUID (36 chars, hyphenated).
func NewUUID() string { return uuid.NewString() }

// NewRequestID returns exactly 32 lowercase hex characters (no separators).
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ProjectCode is the placeholder code given to projects created
// without one: MOCK-<unix millis>.
func ProjectCode(now time.Time) string {
	return "MOCK-" + strconv.FormatInt(now.UnixMilli(), 10)
}
