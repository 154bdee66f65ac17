// Package discovery finds the candidate files a link run samples from.
//
// Two finders are available: FindCommand shells out to find(1), Walker
// walks the directories itself. Both honour types.SearchFilters the same way.
package discovery

import (
	"time"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/types"
)

const (
	FinderFind = "find"
	FinderWalk = "walk"
)

// New returns the finder called name.
func New(name, findBinary string, timeout time.Duration) (types.CandidateFinder, error) {
	switch name {
	case "", FinderFind:
		return NewFindCommand(findBinary, timeout), nil
	case FinderWalk:
		return NewWalker(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown finder %q (want %q or %q)", name, FinderFind, FinderWalk)
	}
}
