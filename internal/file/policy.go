package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
)

// UploadPolicy is the client-side mirror of the backend's upload rules.
// Rejecting locally saves a round trip; the backend still enforces its own
// copy.
type UploadPolicy struct {
	// AllowedExtensions lists acceptable extensions without the dot,
	// lower case.
	AllowedExtensions []string
	MaxSizeBytes      int64
}

// DefaultPolicy matches the backend's defaults.
func DefaultPolicy() UploadPolicy {
	return UploadPolicy{
		AllowedExtensions: []string{"jpg", "jpeg", "png", "pdf", "txt"},
		MaxSizeBytes:      5 << 20,
	}
}

// Validate checks a candidate upload against the policy.
func (p UploadPolicy) Validate(filename string, size int64) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if ext == "" || !p.allowed(ext) {
		return &gateway.ValidationError{
			Reason: fmt.Sprintf("file type %q not allowed, accepted: %s", ext, strings.Join(p.AllowedExtensions, ", ")),
		}
	}
	if p.MaxSizeBytes > 0 && size > p.MaxSizeBytes {
		return &gateway.ValidationError{
			Reason: fmt.Sprintf("file exceeds the %d MB limit", p.MaxSizeBytes>>20),
		}
	}
	return nil
}

func (p UploadPolicy) allowed(ext string) bool {
	for _, a := range p.AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}
