package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// nodeIDRegex matches manifest node identifiers: a letter or digit followed
// by letters, digits, dots, underscores, or hyphens.
var nodeIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateNodeID validates a manifest node identifier.
//
// The validation rules are intentionally conservative:
//   - No empty ids
//   - Maximum length of 64 characters
//   - Letters, digits, dots, underscores, and hyphens only
//
// Node ids only exist inside manifests, so there is no reason to allow
// anything that needs escaping in error messages or DOT labels.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidManifest, "node without id")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidManifest, "node id %q too long (max 64 characters)", id)
	}

	if !nodeIDRegex.MatchString(id) {
		return New(ErrCodeInvalidManifest, "invalid node id: %q", id)
	}

	return nil
}

// ValidateSnapshotName validates a snapshot's display name.
// Names are free-form but must not carry control characters, and are capped
// at 256 characters.
func ValidateSnapshotName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "snapshot name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "snapshot name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "snapshot name contains control characters")
		}
	}

	return nil
}

// ValidateSnapshotID validates a snapshot id before it is used as a storage
// key. Snapshot ids become file names in the file backend, so path
// separators and traversal sequences are rejected.
//
// Validation rules:
//   - Id cannot be empty
//   - Maximum length of 128 characters
//   - No null bytes or control characters
//   - No path separators or traversal sequences (.., /, \)
func ValidateSnapshotID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "snapshot id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidInput, "snapshot id too long (max 128 characters)")
	}

	for _, r := range id {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "snapshot id contains invalid characters")
		}
	}

	// Ids are storage keys; anything path-like is a traversal attempt.
	dangerousPatterns := []string{"..", "/", "\\"}
	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidInput, "snapshot id contains invalid sequence: %q", pattern)
		}
	}

	return nil
}
