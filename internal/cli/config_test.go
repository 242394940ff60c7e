package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

func TestLoadConfigFirstRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fresh")

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)

	// First run materializes the directory and a commented default file.
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "loan_period_days: 30")
	assert.Contains(t, string(data), "id_seed: 1000")
}

func TestLoadConfigExistingFileIsKept(t *testing.T) {
	dir := t.TempDir()
	custom := "loan_period_days: 7\nid_seed: 5\nprompt: \"inv> \"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(custom), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.LoanPeriodDays)
	assert.Equal(t, 5, cfg.IDSeed)
	assert.Equal(t, "inv> ", cfg.Prompt)

	// The user's file is not rewritten.
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, custom, string(data))
}

func TestLoadConfigPartialFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("loan_period_days: 14\n"), 0o644))

	cfg, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 14, cfg.LoanPeriodDays)
	assert.Equal(t, types.DefaultIDSeed, cfg.IDSeed)
	assert.Equal(t, types.DefaultPrompt, cfg.Prompt)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("loan_period_days: -1\n"), 0o644))

	_, err := loadConfig(dir)
	assert.ErrorIs(t, err, types.ErrLoanPeriodInvalid)
}
