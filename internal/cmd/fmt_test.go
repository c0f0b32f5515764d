package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	messy = `# application name
name:    demo
list:
- a
- b
`
	tidy = `# application name
name: demo
list:
  - a
  - b
`
)

func TestFmtCmd_Print(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{"/app.yml": messy})

	out, err := execute(t, fsys, "", "fmt", "/app.yml")
	require.NoError(t, err)
	assert.Equal(t, tidy, out)
	assert.Equal(t, messy, readFile(t, fsys, "/app.yml"), "fmt without --write must not touch the file")
}

func TestFmtCmd_Stdin(t *testing.T) {
	t.Parallel()

	out, err := execute(t, memFs(t, nil), "# header\n---\nkey:   value\n", "fmt", "-")
	require.NoError(t, err)
	assert.Equal(t, "# header\n---\nkey: value\n", out)
}

func TestFmtCmd_WriteIsIdempotent(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{
		"/app.yml":  messy,
		"/tidy.yml": tidy,
	})

	out, err := execute(t, fsys, "", "fmt", "--write", "/app.yml", "/tidy.yml")
	require.NoError(t, err)
	assert.Equal(t, "formatted /app.yml\n", out)
	assert.Equal(t, tidy, readFile(t, fsys, "/app.yml"))

	out, err = execute(t, fsys, "", "fmt", "--check", "/app.yml")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestFmtCmd_Check(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{"/app.yml": messy})

	_, err := execute(t, fsys, "", "fmt", "--check", "/app.yml")
	require.ErrorIs(t, err, ErrNotFormatted)
	assert.Contains(t, err.Error(), "/app.yml")
	assert.Equal(t, messy, readFile(t, fsys, "/app.yml"))
}

func TestFmtCmd_Diff(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{"/app.yml": messy})

	out, err := execute(t, fsys, "", "fmt", "--diff", "/app.yml")
	require.NoError(t, err)
	assert.Contains(t, out, "diff /app.yml\n")
	assert.Contains(t, out, "name:    demo")
	assert.Contains(t, out, "name: demo")
	assert.NotContains(t, out, "\x1b[", "colors are disabled")
	assert.Equal(t, messy, readFile(t, fsys, "/app.yml"))
}

func TestFmtCmd_GuessIndentation(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{"/app.yml": "server:\n  host: a\n    port: 80\n"})

	out, err := execute(t, fsys, "", "fmt", "--guess-indentation", "/app.yml")
	require.NoError(t, err)
	assert.Equal(t, "server:\n  host: a\n  port: 80\n", out)
}

func TestFmtCmd_Errors(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, map[string]string{"/list.yml": "- a\n- b\n"})

	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
		message string
	}{
		{name: "missing file", args: []string{"fmt", "/missing.yml"}, message: "/missing.yml"},
		{name: "root is not a map", args: []string{"fmt", "/list.yml"}, message: "parsing"},
		{name: "write to stdin", stdin: messy, args: []string{"fmt", "--write", "-"}, wantErr: ErrStdinWrite},
		{name: "no files", args: []string{"fmt"}, message: "arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := execute(t, fsys, tt.stdin, tt.args...)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}

			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}
