package userenv

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlattenEnv(t *testing.T) {
	env := map[string]string{
		"PATH": "/usr/bin",
		"HOME": "/home/user200",
		"LANG": "C.UTF-8",
	}
	assert.Equal(t, []string{
		"HOME=/home/user200",
		"LANG=C.UTF-8",
		"PATH=/usr/bin",
	}, flattenEnv(env))

	assert.Empty(t, flattenEnv(nil))
}

func TestStreamLinesPrefixesOutput(t *testing.T) {
	var out bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)
	streamLines(&wg, strings.NewReader("first\nsecond\n"), &out, "[stdout]")
	wg.Wait()

	assert.Equal(t, "[stdout] first\n[stdout] second\n", out.String())
}

func TestStreamLinesHandlesMissingTrailingNewline(t *testing.T) {
	var out bytes.Buffer
	var wg sync.WaitGroup
	wg.Add(1)
	streamLines(&wg, strings.NewReader("only"), &out, "[stderr]")
	wg.Wait()

	assert.Equal(t, "[stderr] only\n", out.String())
}
