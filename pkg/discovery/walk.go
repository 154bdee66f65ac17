package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/types"
	"github.com/gobwas/glob"
)

// Walker discovers candidates in-process with the same filter semantics
// as FindCommand: regular files only, symlinks not followed, ages counted
// in whole days.
type Walker struct {
	now func() time.Time
}

func NewWalker() *Walker {
	return &Walker{now: time.Now}
}

const day = 24 * time.Hour

type matcher struct {
	exts    []string
	older   *int
	newer   *int
	pattern glob.Glob
	now     time.Time
}

func newMatcher(filters types.SearchFilters, now time.Time) (*matcher, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	m := &matcher{older: filters.OlderThanDays, newer: filters.NewerThanDays, now: now}
	for _, ext := range filters.Extensions {
		m.exts = append(m.exts, "."+strings.TrimPrefix(ext, "."))
	}
	if filters.NamePattern != "" {
		g, err := glob.Compile(filters.NamePattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid name pattern %q", filters.NamePattern)
		}
		m.pattern = g
	}
	return m, nil
}

func (m *matcher) match(name string, modTime time.Time) bool {
	if len(m.exts) > 0 {
		ok := false
		for _, ext := range m.exts {
			if strings.HasSuffix(name, ext) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	// find(1) -mtime compares whole 24h periods, fractions discarded
	age := m.now.Sub(modTime)
	days := int(age / day)
	if age < 0 && age%day != 0 {
		days--
	}
	if m.older != nil && days <= *m.older {
		return false
	}
	if m.newer != nil && days >= *m.newer {
		return false
	}

	if m.pattern != nil && !m.pattern.Match(name) {
		return false
	}
	return true
}

func (w *Walker) FindCandidates(ctx context.Context, dirs []string, filters types.SearchFilters) ([]string, error) {
	if len(dirs) == 0 {
		return nil, errors.New(errors.ErrUsage, "require at least one directory")
	}

	m, err := newMatcher(filters, w.now())
	if err != nil {
		return nil, err
	}

	var found []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if !d.Type().IsRegular() {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			if m.match(d.Name(), info.ModTime()) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSearchFailed, "walking %s failed", dir)
		}
	}
	return found, nil
}
