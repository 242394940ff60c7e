package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/stacks/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyLoanPeriodDays = "loan_period_days"
	cfgKeyIDSeed         = "id_seed"
	cfgKeyPrompt         = "prompt"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Stacks CLI configuration

# Days between checkout and due date
loan_period_days: 30

# First ID assigned to a new item; later items get consecutive IDs
id_seed: 1000

# Session prompt
# prompt: "stacks> "
`

// loadConfig reads config.yaml from the given directory using Viper.
// It creates the directory and a default config.yaml on first run.
// A missing config.yaml is not an error; defaults apply.
func loadConfig(configDir string) (types.Config, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLoanPeriodDays, types.DefaultLoanPeriodDays)
	v.SetDefault(cfgKeyIDSeed, types.DefaultIDSeed)
	v.SetDefault(cfgKeyPrompt, types.DefaultPrompt)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := types.Config{
		LoanPeriodDays: v.GetInt(cfgKeyLoanPeriodDays),
		IDSeed:         v.GetInt(cfgKeyIDSeed),
		Prompt:         v.GetString(cfgKeyPrompt),
	}
	if cfg.Prompt == "" {
		cfg.Prompt = types.DefaultPrompt
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		// File already exists.
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
