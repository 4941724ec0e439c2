package syncer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/accentsync/internal/palette"
	"github.com/jmylchreest/accentsync/internal/target"
)

func testTargets(dir string) []target.Target {
	return []target.Target{
		target.NewSway(filepath.Join(dir, "sway", "config")),
		target.NewWaybar(filepath.Join(dir, "waybar", "accent.css")),
		target.NewRofi(filepath.Join(dir, "rofi", "shared", "colors.rasi")),
	}
}

func testPalette(t *testing.T) palette.Palette {
	t.Helper()
	p, err := palette.New("#cb7012", palette.DefaultFactor)
	require.NoError(t, err)
	return p
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_CreatesMissingFiles(t *testing.T) {
	dir := t.TempDir()
	s := New(testTargets(dir), Options{}, nil)

	report, err := s.Run(context.Background(), testPalette(t))
	require.NoError(t, err)
	require.Len(t, report.Results, 3)

	_, err = ulid.Parse(report.RunID)
	assert.NoError(t, err)

	assert.Equal(t, "set $accent #b66410\nset $accent_bg #cb7012\n\n", readFile(t, filepath.Join(dir, "sway", "config")))
	assert.Equal(t, "", readFile(t, filepath.Join(dir, "waybar", "accent.css")))
	assert.Equal(t, "", readFile(t, filepath.Join(dir, "rofi", "shared", "colors.rasi")))

	for _, res := range report.Results {
		assert.True(t, res.Created, res.Name)
		assert.True(t, res.Changed, res.Name)
	}
	assert.Equal(t, 3, report.Results[0].LinesAfter)
	assert.Equal(t, 0, report.Results[1].LinesAfter)
}

func TestRun_RewritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	targets := testTargets(dir)

	sway := "include /etc/sway/config.d/*\nset $accent #000000\n"
	css := "label {\n  color: #ffffff;\n}\n"
	rasi := "* {\n    selected:     #89b4faff;\n}\n"
	for path, content := range map[string]string{
		targets[0].Path(): sway,
		targets[1].Path(): css,
		targets[2].Path(): rasi,
	} {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	report, err := New(targets, Options{}, nil).Run(context.Background(), testPalette(t))
	require.NoError(t, err)

	assert.Equal(t, "set $accent #b66410\nset $accent_bg #cb7012\n\ninclude /etc/sway/config.d/*\n", readFile(t, targets[0].Path()))
	assert.Equal(t, "label {\n    color: #cb7012;\n}\n", readFile(t, targets[1].Path()))
	assert.Equal(t, "* {\n    selected:     #cb7012;\n}\n", readFile(t, targets[2].Path()))

	assert.Equal(t, 1, report.Results[0].Edit.Removed)
	assert.Equal(t, 3, report.Results[1].LinesBefore)
	assert.Equal(t, 3, report.Results[1].LinesAfter)
	assert.Equal(t, 1, report.Results[2].Edit.Replaced)
	assert.False(t, report.Results[2].Created)
}

func TestRun_SecondRunLeavesReplacersUnchanged(t *testing.T) {
	dir := t.TempDir()
	targets := testTargets(dir)
	require.NoError(t, os.MkdirAll(filepath.Dir(targets[1].Path()), 0755))
	require.NoError(t, os.WriteFile(targets[1].Path(), []byte("  color: #000000;\n"), 0644))

	s := New(targets, Options{}, nil)
	_, err := s.Run(context.Background(), testPalette(t))
	require.NoError(t, err)

	report, err := s.Run(context.Background(), testPalette(t))
	require.NoError(t, err)
	assert.False(t, report.Results[1].Changed)
	assert.False(t, report.Results[2].Changed)
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()

	report, err := New(testTargets(dir), Options{DryRun: true}, nil).Run(context.Background(), testPalette(t))
	require.NoError(t, err)
	require.Len(t, report.Results, 3)
	assert.True(t, report.Results[0].DryRun)
	assert.Equal(t, len("set $accent #b66410\nset $accent_bg #cb7012\n\n"), report.Results[0].Bytes)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_StopsAtFirstError(t *testing.T) {
	dir := t.TempDir()

	// A regular file where the waybar directory should be.
	blocker := filepath.Join(dir, "waybar")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	report, err := New(testTargets(dir), Options{}, nil).Run(context.Background(), testPalette(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waybar")

	require.Len(t, report.Results, 1)
	assert.Equal(t, target.NameSway, report.Results[0].Name)

	_, err = os.Stat(filepath.Join(dir, "rofi", "shared", "colors.rasi"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(testTargets(t.TempDir()), Options{}, nil).Run(ctx, testPalette(t))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Results)
}
