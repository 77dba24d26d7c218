// Package console is the interactive text menu over the bank service. It reads
// and validates input, calls the service and prints the outcome. Domain errors
// are printed as "ERROR: <message>" and the menu comes back; the session ends
// on option 0 or at end of input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/bankdesk/pkg/service/bank"
	"github.com/fatih/color"
)

// Console runs the menu loop for one session.
type Console struct {
	bank     *bank.Service
	in       *bufio.Reader
	out      io.Writer
	terminal Terminal
	logger   *slog.Logger

	title *color.Color
	ok    *color.Color
	warn  *color.Color
	fail  *color.Color
}

// Option configures a Console.
type Option func(*Console)

// WithColor turns coloured output on or off. It is off by default.
func WithColor(enabled bool) Option {
	return func(c *Console) {
		for _, col := range []*color.Color{c.title, c.ok, c.warn, c.fail} {
			if enabled {
				col.EnableColor()
			} else {
				col.DisableColor()
			}
		}
	}
}

// WithTerminal enables screen clearing and the keypress pause.
func WithTerminal(t Terminal) Option {
	return func(c *Console) { c.terminal = t }
}

// WithLogger sets the logger used for session events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a Console reading from in and writing to out.
func New(svc *bank.Service, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		bank:   svc,
		in:     bufio.NewReader(in),
		out:    out,
		logger: slog.Default(),
		title:  color.New(color.FgCyan, color.Bold),
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed, color.Bold),
	}
	WithColor(false)(c)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until the user exits or the input ends. Only input
// stream failures are returned.
func (c *Console) Run() error {
	c.logger.Debug("Console session started")
	for {
		c.showMainMenu()
		choice, err := c.prompt("\nChoose an option")
		if err == nil {
			fmt.Fprintln(c.out)
			if choice == "0" {
				c.logger.Debug("Console session ended")
				return nil
			}
			err = c.dispatch(choice, map[string]func() error{
				"1": c.clientsMenu,
				"2": c.accountsMenu,
				"3": c.operationsMenu,
				"4": c.listClients,
			})
		}
		if done, ferr := c.finish(err); done {
			return ferr
		}
		if err := c.pause(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// finish reports a failed action. It returns true when the session must end.
func (c *Console) finish(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	var rerr *readError
	if errors.As(err, &rerr) {
		fmt.Fprintln(c.out)
		if errors.Is(err, io.EOF) {
			c.logger.Debug("Console input closed")
			return true, nil
		}
		c.logger.Error("Console input failed", "error", err)
		return true, err
	}
	c.logger.Debug("Console action failed", "error", err)
	fmt.Fprintln(c.out)
	c.fail.Fprintf(c.out, "ERROR: %s\n", err)
	return false, nil
}

func (c *Console) dispatch(choice string, actions map[string]func() error) error {
	action, ok := actions[choice]
	if !ok {
		c.warn.Fprintln(c.out, "Invalid option")
		return nil
	}
	return action()
}

func (c *Console) submenu(heading string, items []string, actions map[string]func() error) error {
	c.title.Fprintf(c.out, "--- %s ---\n", heading)
	for i, item := range items {
		fmt.Fprintf(c.out, "%d) %s\n", i+1, item)
	}
	choice, err := c.prompt("Option")
	if err != nil {
		return err
	}
	return c.dispatch(choice, actions)
}

func (c *Console) showMainMenu() {
	if c.terminal != nil {
		c.terminal.Clear()
	}
	c.title.Fprintln(c.out, "==============================")
	c.title.Fprintln(c.out, "   BANK - Account Management  ")
	c.title.Fprintln(c.out, "==============================")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "1) Client management")
	fmt.Fprintln(c.out, "2) Account management")
	fmt.Fprintln(c.out, "3) Operations (deposits / withdrawals)")
	fmt.Fprintln(c.out, "4) Client listing")
	fmt.Fprintln(c.out, "0) Exit")
}

func (c *Console) pause() error {
	if c.terminal == nil {
		return nil
	}
	fmt.Fprintln(c.out, "\nPress any key to continue...")
	return c.terminal.WaitKey(c.in)
}

func (c *Console) success(msg string) {
	c.ok.Fprintln(c.out, msg)
}
