package types

import "github.com/arthur-debert/sysknife/pkg/errors"

// SearchFilters restricts which files candidate discovery returns.
// Zero values disable the corresponding filter.
type SearchFilters struct {
	// Extensions without the leading dot, e.g. "jpg"
	Extensions []string

	// OlderThanDays keeps files modified more than N whole days ago.
	// Nil disables the filter; 0 still means "older than 24 hours".
	OlderThanDays *int

	// NewerThanDays keeps files modified less than N whole days ago
	NewerThanDays *int

	// NamePattern is a shell pattern matched against the file name
	NamePattern string
}

// Days returns a pointer to n for the age filters.
func Days(n int) *int {
	return &n
}

// Validate rejects negative ages.
func (f SearchFilters) Validate() error {
	if f.OlderThanDays != nil && *f.OlderThanDays < 0 {
		return errors.Newf(errors.ErrUsage, "--older needs a non-negative number of days, got %d", *f.OlderThanDays)
	}
	if f.NewerThanDays != nil && *f.NewerThanDays < 0 {
		return errors.Newf(errors.ErrUsage, "--newer needs a non-negative number of days, got %d", *f.NewerThanDays)
	}
	return nil
}
