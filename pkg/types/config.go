package types

import "errors"

// Config defaults.
const (
	DefaultLoanPeriodDays = 30
	DefaultIDSeed         = 1000
	DefaultPrompt         = "stacks> "
)

// Config validation errors.
var (
	ErrLoanPeriodInvalid = errors.New("loan period must be positive")
	ErrIDSeedInvalid     = errors.New("id seed must not be negative")
)

// Config holds the tunable parameters of a stacks session.
type Config struct {
	// LoanPeriodDays is added to the checkout date to produce the due
	// date. Calendar-correct: month and year roll over.
	LoanPeriodDays int `json:"loan_period_days" yaml:"loan_period_days"`

	// IDSeed is the first ID the session assigns to a new item.
	// Subsequent items get consecutive IDs.
	IDSeed int `json:"id_seed" yaml:"id_seed"`

	// Prompt is printed before each session read. Empty means
	// DefaultPrompt.
	Prompt string `json:"prompt" yaml:"prompt"`
}

// DefaultConfig returns the configuration used when no config.yaml
// overrides anything.
func DefaultConfig() Config {
	return Config{
		LoanPeriodDays: DefaultLoanPeriodDays,
		IDSeed:         DefaultIDSeed,
		Prompt:         DefaultPrompt,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.LoanPeriodDays <= 0 {
		return ErrLoanPeriodInvalid
	}
	if c.IDSeed < 0 {
		return ErrIDSeedInvalid
	}
	return nil
}
