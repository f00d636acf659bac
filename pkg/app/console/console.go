// Package console holds the blocking prompt helpers shared by the menus.
// Invalid input never reaches a service: the helpers re-prompt until the
// operator types something usable.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Console struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Closed reports that input has ended (EOF or read error); prompt loops
// stop re-asking once it is set.
func (c *Console) Closed() bool {
	return c.closed
}

func (c *Console) Print(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Prompt prints the label and returns one trimmed line of input.
func (c *Console) Prompt(label string) string {
	fmt.Fprintf(c.out, "%s", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		c.closed = true
	}
	return strings.TrimSpace(line)
}

// PromptInt re-prompts until the operator enters a number in [min, max].
func (c *Console) PromptInt(label string, min, max int) int {
	for {
		raw := c.Prompt(label)
		n, err := strconv.Atoi(raw)
		if err != nil || n < min || n > max {
			if c.closed {
				return min
			}
			c.Print("Please enter a number between %d and %d.", min, max)
			continue
		}
		return n
	}
}

// PromptYesNo re-prompts until the operator answers y or n.
func (c *Console) PromptYesNo(label string) bool {
	for {
		switch strings.ToLower(c.Prompt(label)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if c.closed {
			return false
		}
		c.Print("Please answer Y or N.")
	}
}

// PromptInt64 re-prompts until the input parses as a positive number.
func (c *Console) PromptInt64(label string) int64 {
	for {
		raw := c.Prompt(label)
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			if c.closed {
				return 0
			}
			c.Print("Please enter a valid number.")
			continue
		}
		return n
	}
}

// PromptDecimal re-prompts until the input parses as a non-negative amount.
func (c *Console) PromptDecimal(label string) decimal.Decimal {
	for {
		raw := c.Prompt(label)
		amount, err := decimal.NewFromString(raw)
		if err != nil || amount.IsNegative() {
			if c.closed {
				return decimal.Zero
			}
			c.Print("Please enter a valid amount.")
			continue
		}
		return amount
	}
}

// Pause waits for the operator to press enter.
func (c *Console) Pause() {
	c.Prompt("Press enter to continue > ")
}
