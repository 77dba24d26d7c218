package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amirasaad/bankdesk/pkg/money"
	"github.com/shopspring/decimal"
)

// dateLayouts accept both zero-padded and bare day and month numbers.
var dateLayouts = []string{"02/01/2006", "2/1/2006"}

// readError marks failures of the input stream itself, as opposed to domain
// errors that are reported before the menu comes back.
type readError struct {
	err error
}

func (e *readError) Error() string { return "read input: " + e.err.Error() }
func (e *readError) Unwrap() error { return e.err }

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", &readError{err: err}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label+": ")
	return c.readLine()
}

func (c *Console) hint(msg string) {
	c.warn.Fprintln(c.out, "* "+msg)
	fmt.Fprintln(c.out)
}

// readRequired prompts until a non-blank value is entered and returns it trimmed.
func (c *Console) readRequired(label string) (string, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return "", err
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, nil
		}
		c.hint("Required field")
	}
}

// readOptional prompts once and returns the trimmed value, which may be empty.
func (c *Console) readOptional(label string) (string, error) {
	s, err := c.prompt(label)
	return strings.TrimSpace(s), err
}

func (c *Console) readDate(label string) (time.Time, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return time.Time{}, err
		}
		if d, ok := parseDate(s); ok {
			return d, nil
		}
		c.hint("Invalid format. Example: 25/08/2001")
	}
}

func (c *Console) readPositive(label string) (decimal.Decimal, error) {
	return c.readAmount(label, money.ParsePositive, "Enter a number greater than 0")
}

func (c *Console) readNonNegative(label string) (decimal.Decimal, error) {
	return c.readAmount(label, money.ParseNonNegative, "Enter a number greater than or equal to 0")
}

func (c *Console) readAmount(
	label string,
	parse func(string) (decimal.Decimal, error),
	hint string,
) (decimal.Decimal, error) {
	for {
		s, err := c.prompt(label)
		if err != nil {
			return decimal.Zero, err
		}
		if d, perr := parse(s); perr == nil {
			return d, nil
		}
		c.hint(hint)
	}
}

// parseDate reads a day/month/year date in local time.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if d, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
