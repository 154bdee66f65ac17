package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterBuffersArePlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut)

	p.Printf("Linking %d of %d candidate files", 3, 9)
	p.Link("/src/a.jpg", "/dst/a.jpg")
	p.Warnf("%s exists", "/dst/b.jpg")
	p.Errorf("find exited %d", 1)
	p.Successf("done")

	assert.Equal(t, "Linking 3 of 9 candidate files\n/src/a.jpg -> /dst/a.jpg\ndone\n", out.String())
	assert.Equal(t, "WARNING: /dst/b.jpg exists\nERROR: find exited 1\n", errOut.String())
}

func TestSupportsColorHonorsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, SupportsColor(&bytes.Buffer{}))
}

func TestSupportsColorNonFile(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.False(t, SupportsColor(&bytes.Buffer{}))
}
