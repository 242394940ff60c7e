package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/inventory"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// errExit signals that the user asked to end the session.
var errExit = errors.New("exit session")

// Session holds the state of one interactive run: the inventory, the
// item ID counter, and the I/O streams. All inventory state is lost
// when the session ends.
type Session struct {
	inv    *inventory.Inventory
	cfg    types.Config
	nextID int
	json   bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithInventory substitutes the backing inventory. Tests use this to
// pin the engine clock.
func WithInventory(inv *inventory.Inventory) SessionOption {
	return func(s *Session) { s.inv = inv }
}

// NewSession creates a session over an empty inventory. The ID counter
// starts at cfg.IDSeed and advances once per successfully added item.
func NewSession(cfg types.Config, jsonMode bool, in io.Reader, out, errOut io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		inv:    inventory.New(inventory.WithLoanPeriod(cfg.LoanPeriodDays)),
		cfg:    cfg,
		nextID: cfg.IDSeed,
		json:   jsonMode,
		in:     in,
		out:    out,
		errOut: errOut,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run reads and executes commands until "exit" or end of input. Every
// command failure is reported and the loop continues; only a read
// error on the input ends the session abnormally.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, `Library inventory session. Type "help" for commands, "exit" to leave.`)
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args, err := splitLine(line)
		if err != nil {
			fmt.Fprintln(s.errOut, "Error:", err)
			continue
		}
		if s.dispatch(args) {
			break
		}
	}
	fmt.Fprintln(s.out, "Goodbye.")
	return scanner.Err()
}

// dispatch runs one command line through a fresh command tree, so
// every line starts with clean flag state. Reports whether the
// session should end.
func (s *Session) dispatch(args []string) bool {
	menu := s.newMenuCmd()
	menu.SetArgs(args)
	menu.SetOut(s.out)
	menu.SetErr(s.errOut)
	if err := menu.Execute(); err != nil {
		if errors.Is(err, errExit) {
			return true
		}
		fmt.Fprintln(s.errOut, "Error:", err)
	}
	return false
}

// newMenuCmd builds the session command tree.
func (s *Session) newMenuCmd() *cobra.Command {
	menu := &cobra.Command{
		Use:           "stacks",
		Short:         "Library inventory session commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	menu.AddCommand(
		s.newAddCmd(),
		s.newCheckoutCmd(),
		s.newCheckinCmd(),
		s.newSwapCmd(),
		s.newListCmd(),
		s.newLoansCmd(),
		s.newPeekCmd(),
		s.newStatusCmd(),
		s.newExitCmd(),
	)
	return menu
}

func (s *Session) newExitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exit",
		Short: "End the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errExit
		},
	}
}

// splitLine tokenizes a command line, honoring double and single
// quotes so names and descriptions can contain spaces.
func splitLine(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	var quote rune
	inToken := false
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated %q quote", quote)
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}

// parseID parses a decimal item ID.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid item ID %q", arg)
	}
	return id, nil
}

// parsePosition parses a "shelf,compartment" pair.
func parsePosition(arg string) (types.Position, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return types.Position{}, fmt.Errorf("invalid position %q, want \"shelf,compartment\"", arg)
	}
	shelf, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return types.Position{}, fmt.Errorf("invalid shelf in %q", arg)
	}
	compartment, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return types.Position{}, fmt.Errorf("invalid compartment in %q", arg)
	}
	return types.NewPosition(shelf, compartment), nil
}
