package utils

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"
)

// GenerateDigitalID derives a human-facing digital ID from a tourist's name,
// format TRV-<initials><rand4>-<ts4>. Initials come from the first and last
// whitespace-separated tokens; single-token names use their first two
// characters. The scheme is collision-prone (no uniqueness check here or at
// the call sites) and is kept as-is for fidelity with the original platform.
func GenerateDigitalID(name string) string {
	parts := strings.Fields(strings.ToUpper(strings.TrimSpace(name)))

	var initials string
	switch {
	case len(parts) == 0:
		initials = ""
	case len(parts) == 1:
		initials = firstN(parts[0], 2)
	default:
		initials = firstN(parts[0], 1) + firstN(parts[len(parts)-1], 1)
	}

	randomNum := 1000 + rand.Intn(9000)
	timestamp := lastN(fmt.Sprintf("%d", time.Now().UnixMilli()), 4)
	return fmt.Sprintf("TRV-%s%d-%s", initials, randomNum, timestamp)
}

// GenerateOTP returns a uniform random 6-digit one-time code.
func GenerateOTP() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}

// Entity identifier helpers. All follow the original timestamp+random scheme.

// NewTouristID returns a fresh internal tourist id.
func NewTouristID() string {
	return fmt.Sprintf("T%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// NewPersonalAlertID returns an id for a tourist's personal alert.
func NewPersonalAlertID() string {
	return fmt.Sprintf("A%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// NewContactID returns an id for an emergency contact.
func NewContactID() string {
	return fmt.Sprintf("EC%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// NewSOSReportID returns an id for an SOS-generated E-FIR report.
func NewSOSReportID() string {
	return fmt.Sprintf("#SOS-%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// NewSOSAlertID returns an id for a system-generated department alert.
func NewSOSAlertID() string {
	return fmt.Sprintf("DEPT-ALERT-%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// NewManualAlertID returns an id for a manually broadcast department alert.
func NewManualAlertID() string {
	return fmt.Sprintf("MANUAL-%d-%d", time.Now().UnixMilli(), rand.Intn(100000))
}

// UploadFilename builds a unique stored filename for an uploaded document,
// keeping the original extension.
func UploadFilename(fieldName, originalName string) string {
	return fmt.Sprintf("%d-%s-%d%s",
		time.Now().UnixMilli(), fieldName, rand.Intn(1_000_000_000), filepath.Ext(originalName))
}

// firstN counts runes, not bytes, so multi-byte initials stay valid UTF-8.
func firstN(s string, n int) string {
	runes := []rune(s)
	if len(runes) < n {
		return s
	}
	return string(runes[:n])
}

func lastN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[len(s)-n:]
}
