// Package naming computes the file name a link gets in the target directory.
package naming

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/sysknife/pkg/errors"
)

// Scheme selects how link names are derived from source paths.
type Scheme string

const (
	// Copy keeps the source file's base name
	Copy Scheme = "copy"
	// Expand turns the full path into a name: /a/b/c.txt -> a-b-c.txt
	Expand Scheme = "expand"
	// Obscure uses the MD5 of the full path plus the extension
	Obscure Scheme = "obscure"
	// Sequence numbers links 0001.ext, 0002.ext, ...
	Sequence Scheme = "seq"
)

// FirstSequence is the number the first Sequence name gets.
const FirstSequence = 1

// Schemes lists every valid scheme, default first.
var Schemes = []Scheme{Copy, Expand, Obscure, Sequence}

// ParseScheme validates a scheme name from configuration.
func ParseScheme(name string) (Scheme, error) {
	if name == "" {
		return Copy, nil
	}
	for _, s := range Schemes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown naming scheme %q", name).
		WithDetail("valid", Schemes)
}

// Name returns the link name for source under scheme and the sequence value
// the next call should use. Only Sequence consumes a number; every other
// scheme returns seq unchanged.
func Name(source string, scheme Scheme, seq int) (string, int) {
	switch scheme {
	case Expand:
		return strings.TrimPrefix(strings.ReplaceAll(source, "/", "-"), "-"), seq
	case Obscure:
		sum := md5.Sum([]byte(source))
		return hex.EncodeToString(sum[:]) + filepath.Ext(source), seq
	case Sequence:
		return fmt.Sprintf("%04d", seq) + filepath.Ext(source), seq + 1
	default:
		return filepath.Base(source), seq
	}
}

// Namer owns the sequence counter for one run.
type Namer struct {
	scheme Scheme
	next   int
}

func NewNamer(scheme Scheme) *Namer {
	return &Namer{scheme: scheme, next: FirstSequence}
}

func (n *Namer) Scheme() Scheme { return n.scheme }

// Next names source and advances the counter when the scheme uses one.
func (n *Namer) Next(source string) string {
	name, next := Name(source, n.scheme, n.next)
	n.next = next
	return name
}
