package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omnera-dev/schematools/internal/core/domain"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(settingsCmd.Commands()))
	for _, c := range settingsCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"show", "init"}, names)
}

func TestSettingsCmd_Show(t *testing.T) {
	env := setupTest(t)
	_ = env.config.Set("license.product", "Sovrium")

	stdout, _, err := runCommand(t, "settings", "show")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Config file: :memory:")
	assert.Contains(t, stdout, "Product: Sovrium")
	assert.Contains(t, stdout, "Target: ../automations.schema.json")
	assert.Contains(t, stdout, "Settle delay: 1s")
	assert.Contains(t, stdout, "app.schema.json: Application")
}

func TestSettingsCmd_Init(t *testing.T) {
	env := setupTest(t)

	stdout, _, err := runCommand(t, "settings", "init")
	require.NoError(t, err)

	assert.Contains(t, stdout, "✓ Wrote settings to :memory:")
	assert.Equal(t, "bun test", env.config.GetString("reaper.pattern"))
	assert.Equal(t, 1000, env.config.GetInt("reaper.settle_ms"))
	assert.Equal(t, "Application", env.config.GetString("titles.app.schema.json"))
	assert.Equal(t, 1, env.config.Saves())
}

func TestSettingsCmd_InvalidConfig(t *testing.T) {
	env := setupTest(t)
	_ = env.config.Set("license.change_years", 0)

	_, _, err := runCommand(t, "settings")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
