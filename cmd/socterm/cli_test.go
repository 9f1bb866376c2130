package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/devluplabs/socterm/internal/config"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config dir at a temp dir and clears the environment
// overrides so the mock projects are used.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SOCTERM_CONFIG_HOME", dir)
	for _, name := range []string{
		"SOCTERM_SHEET_URL", "VITE_GOOGLE_SHEETS_CSV_URL",
		"SOCTERM_THEME", "VITE_THEME",
		"SOCTERM_SHOW_ARCHIVED", "VITE_SHOW_ARCHIVED",
		"SOCTERM_APPLY_FORM_URL",
	} {
		t.Setenv(name, "")
	}
	color.NoColor = true
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestVersionCmd(t *testing.T) {
	isolate(t)
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "socterm dev\n", out)
}

func TestRootWithoutTerminalPrintsHint(t *testing.T) {
	isolate(t)
	out, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "needs an interactive terminal")
}

func TestExecViewProject(t *testing.T) {
	isolate(t)
	out, err := run(t, "exec", "view", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "Unable to fetch live project data. Displaying mock projects instead.")
	assert.Contains(t, out, "❯ view 1")
	assert.Contains(t, out, "[1] AI-Powered Chatbot")
	assert.Contains(t, out, "→ /projects/1")
}

func TestExecUnknownCommand(t *testing.T) {
	isolate(t)
	out, err := run(t, "exec", "frobnicate")
	require.NoError(t, err)
	assert.Contains(t, out, `Unknown command: frobnicate. Type "help" for available commands.`)
}

func TestExecMentors(t *testing.T) {
	isolate(t)
	out, err := run(t, "exec", "mentors")
	require.NoError(t, err)
	assert.Contains(t, out, "Project Mentors (5):")
	assert.Contains(t, out, "• Dr. Sarah Chen")
}

func TestExecHackPlaysAllFrames(t *testing.T) {
	isolate(t)
	out, err := run(t, "exec", "hack")
	require.NoError(t, err)
	assert.Contains(t, out, "❯ hack")
	assert.GreaterOrEqual(t, bytes.Count([]byte(out), []byte("\n")), 8)
}

func TestExecRequiresCommand(t *testing.T) {
	isolate(t)
	_, err := run(t, "exec")
	assert.Error(t, err)
}

func TestProjectsCmdFilters(t *testing.T) {
	isolate(t)

	out, err := run(t, "projects", "--search", "build")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] AI-Powered Chatbot")
	assert.Contains(t, out, "[4] Open Source Contribution Tracker")
	assert.NotContains(t, out, "[2]")

	out, err = run(t, "projects", "--status", "ongoing")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects match.")
}

func TestProjectsSearchIgnoresTechStack(t *testing.T) {
	isolate(t)

	out, err := run(t, "projects", "--search", "react")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects match.")

	out, err = run(t, "projects", "--tech", "react")
	require.NoError(t, err)
	assert.Contains(t, out, "[1] AI-Powered Chatbot")

	cmd, _, err := newRootCmd().Find([]string{"projects"})
	require.NoError(t, err)
	assert.Equal(t, "match name or description", cmd.Flags().Lookup("search").Usage)
}

func TestInvalidThemeFlag(t *testing.T) {
	isolate(t)
	_, err := run(t, "--theme", "7", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid theme 7")
}

func TestConfigInitWritesFlags(t *testing.T) {
	dir := isolate(t)

	out, err := run(t, "--sheet-url", "https://sheets.example/export.csv", "--show-archived", "config", "init")
	require.NoError(t, err)
	path := filepath.Join(dir, "config.yaml")
	assert.Contains(t, out, path)

	cfg, err := config.LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://sheets.example/export.csv", cfg.SheetURL)
	assert.True(t, cfg.ShowArchived)

	_, err = run(t, "config", "init")
	require.Error(t, err, "an existing file needs --force")

	_, err = run(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigPathHonoursFlag(t *testing.T) {
	dir := isolate(t)
	custom := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(custom, []byte("theme: 2\n"), 0644))

	out, err := run(t, "--config", custom, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, custom+"\n", out)
}

func TestExecNavigationAfterDoubleDash(t *testing.T) {
	isolate(t)
	out, err := run(t, "exec", "--", "stats", "--view", "analytics")
	require.NoError(t, err)
	assert.Contains(t, out, "❯ stats --view analytics")
	assert.Contains(t, out, "→ /stats")
}
