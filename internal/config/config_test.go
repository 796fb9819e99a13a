package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(legacyCalendarId, "")
	require.NoError(t, os.Unsetenv(legacyCalendarId))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, SourceGoogle, cfg.Source)
	assert.Equal(t, "credentials.json", cfg.Google.CredentialsFile)
	assert.Equal(t, "token.json", cfg.Google.TokenFile)
	assert.Equal(t, FormatText, cfg.Report.Format)
	assert.Equal(t, "primary", cfg.CalendarId)
}

func TestLoad_YamlFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "caltally.yaml")
	writeFile(t, path, `
source: ics
calendarid: team@example.com
ics:
  location: https://example.com/team.ics
report:
  format: csv
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, SourceIcs, cfg.Source)
	assert.Equal(t, "team@example.com", cfg.CalendarId)
	assert.Equal(t, "https://example.com/team.ics", cfg.Ics.Location)
	assert.Equal(t, FormatCsv, cfg.Report.Format)
	assert.Equal(t, "token.json", cfg.Google.TokenFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "caltally.yaml")
	writeFile(t, path, "calendarid: from-file\n")
	t.Setenv("CALTALLY_CALENDARID", "from-env")
	t.Setenv("CALTALLY_GOOGLE_TOKENFILE", "/tmp/caltally-token.json")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.CalendarId)
	assert.Equal(t, "/tmp/caltally-token.json", cfg.Google.TokenFile)
}

func TestLoad_LegacyCalendarIdFromDotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "CALENDAR_ID=team@example.com\n")
	path := filepath.Join(dir, "caltally.yaml")
	writeFile(t, path, "calendarid: from-file\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "team@example.com", cfg.CalendarId)
}

func TestLoad_PrefixedCalendarIdWinsOverLegacy(t *testing.T) {
	dir := isolate(t)
	t.Setenv(legacyCalendarId, "legacy")
	t.Setenv("CALTALLY_CALENDARID", "prefixed")

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.CalendarId)
}

func TestLoad_InvalidYaml(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "caltally.yaml")
	writeFile(t, path, "source: [unterminated\n")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestApplication_Validate(t *testing.T) {
	valid := Application{
		Source:     SourceGoogle,
		CalendarId: "primary",
		Google:     Google{CredentialsFile: "credentials.json", TokenFile: "token.json"},
		Report:     Report{Format: FormatText},
	}
	require.NoError(t, valid.Validate())

	testCases := []struct {
		name        string
		modify      func(a *Application)
		wantMessage string
	}{
		{"missing calendar id", func(a *Application) { a.CalendarId = "" }, "calendar id cannot be empty"},
		{"missing token file", func(a *Application) { a.Google.TokenFile = "" }, "token file cannot be empty"},
		{"unknown source", func(a *Application) { a.Source = "outlook" }, "invalid source 'outlook'"},
		{"ics without location", func(a *Application) { a.Source = SourceIcs }, "ics location is required"},
		{"unknown format", func(a *Application) { a.Report.Format = "xml" }, "invalid report format 'xml'"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tc.wantMessage)
		})
	}
}
