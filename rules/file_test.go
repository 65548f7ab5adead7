package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRulesFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logger.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeRulesFile(t, `
dev = false

[defaults]
name = "app"

[rules]
"request" = true
"request.error" = false
"broken" = "yes"
`)

	r := New()
	require.NoError(t, r.LoadFile(path))

	assert.False(t, r.DevMode())
	assert.Equal(t, "app", r.Defaults().Name)
	assert.True(t, r.Defaults().Debug, "unset default keeps its value")

	v, ok := r.Resolve("request", "error")
	require.True(t, ok)
	assert.False(t, v)

	_, ok = r.Resolve("broken", "")
	assert.False(t, ok, "non-boolean rule values are skipped")
}

func TestLoadFileMissingIsNoop(t *testing.T) {
	r := New()
	require.NoError(t, r.LoadFile(filepath.Join(t.TempDir(), "absent.toml")))
	assert.True(t, r.DevMode())
}

func TestLoadFileMalformed(t *testing.T) {
	path := writeRulesFile(t, "dev = [broken")
	r := New()
	assert.Error(t, r.LoadFile(path))
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeRulesFile(t, `[rules]
"request" = true
`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New()
	require.NoError(t, r.Watch(ctx, path, nil))

	v, ok := r.Resolve("request", "")
	require.True(t, ok)
	require.True(t, v)

	require.NoError(t, os.WriteFile(path, []byte(`[rules]
"request" = false
`), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		if v, ok := r.Resolve("request", ""); ok && !v {
			return
		}
		select {
		case <-deadline:
			t.Fatal("rules file change was not picked up")
		case <-time.After(20 * time.Millisecond):
		}
	}
}
