package flood

import (
	"strings"

	"github.com/arthur-debert/sysknife/pkg/errors"
	"github.com/arthur-debert/sysknife/pkg/types"
)

// LoadWords reads one word per line. Surrounding whitespace is trimmed and
// blank lines are dropped.
func LoadWords(fsys types.FS, path string) ([]string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrWordlistRead, "cannot read word list %s", path)
	}

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		if w := strings.TrimSpace(line); w != "" {
			words = append(words, w)
		}
	}

	if len(words) == 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "word list %s is empty", path)
	}
	return words, nil
}
