package errors

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// DateLayout is the calendar date format used by GitHub and accepted on input.
const DateLayout = "2006-01-02"

// maxRange is the longest window GitHub's contributionsCollection accepts.
const maxRange = 366 * 24 * time.Hour

// usernameRegex matches GitHub logins: alphanumerics separated by single hyphens.
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9]|-[A-Za-z0-9])*$`)

// ValidateUsername validates a GitHub login.
//
// GitHub logins are 1-39 characters of ASCII letters, digits, and hyphens.
// They cannot start or end with a hyphen and cannot contain consecutive hyphens.
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}
	if len(name) > 39 {
		return New(ErrCodeInvalidUsername, "username too long (max 39 characters)")
	}
	if !usernameRegex.MatchString(name) {
		return New(ErrCodeInvalidUsername, "invalid GitHub username: %q", name)
	}
	return nil
}

// ValidateDate validates a YYYY-MM-DD date. The empty string is accepted and
// means "unbounded".
func ValidateDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, s); err != nil {
		return New(ErrCodeInvalidDate, "invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateDateRange validates an optional from/to window.
// Both bounds are optional; when both are given, from must not be after to and
// the window must not exceed one year.
func ValidateDateRange(from, to string) error {
	if err := ValidateDate(from); err != nil {
		return err
	}
	if err := ValidateDate(to); err != nil {
		return err
	}
	if from == "" || to == "" {
		return nil
	}
	f, _ := time.Parse(DateLayout, from)
	t, _ := time.Parse(DateLayout, to)
	if f.After(t) {
		return New(ErrCodeInvalidDate, "from (%s) is after to (%s)", from, to)
	}
	if t.Sub(f) > maxRange {
		return New(ErrCodeInvalidDate, "date range exceeds one year")
	}
	return nil
}

// ValidateLabel validates a display label that will become part of a
// download file name. Labels are usually usernames but may be arbitrary
// text when rendering from a local file.
func ValidateLabel(label string) error {
	if label == "" {
		return New(ErrCodeInvalidLabel, "label cannot be empty")
	}
	if len(label) > 100 {
		return New(ErrCodeInvalidLabel, "label too long (max 100 characters)")
	}
	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLabel, "label contains invalid control characters")
		}
	}
	if strings.ContainsAny(label, `/\`) || strings.Contains(label, "..") {
		return New(ErrCodeInvalidLabel, "label cannot contain path separators")
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
