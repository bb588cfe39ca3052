package screens

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	apperrors "github.com/epicevents/crm/internal/errors"
)

// prompter reads form input line by line. Passwords are read without echo
// when the underlying reader is an interactive terminal.
type prompter struct {
	in  *bufio.Reader
	raw io.Reader
	out io.Writer
}

// newPrompter creates a prompter over the given reader and writer.
func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		raw: in,
		out: out,
	}
}

// line prompts for one line of input and returns it trimmed.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)
	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// lineDefault prompts for one line of input, keeping the current value when
// the user submits an empty line.
func (p *prompter) lineDefault(label, current string) (string, error) {
	text, err := p.line(fmt.Sprintf("%s [%s]", label, current))
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

// password prompts for a password. When reading from an interactive
// terminal the input is not echoed.
func (p *prompter) password(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	if file, ok := p.raw.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		passwordBytes, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(passwordBytes), nil
	}

	text, err := p.in.ReadString('\n')
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// intField prompts for an integer value.
func (p *prompter) intField(label string) (int, error) {
	text, err := p.line(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "the value must be a number")
	}
	return value, nil
}

// intFieldDefault prompts for an integer value with a current value fallback.
func (p *prompter) intFieldDefault(label string, current int) (int, error) {
	text, err := p.line(fmt.Sprintf("%s [%d]", label, current))
	if err != nil {
		return 0, err
	}
	if text == "" {
		return current, nil
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "the value must be a number")
	}
	return value, nil
}

// floatField prompts for a decimal value.
func (p *prompter) floatField(label string) (float64, error) {
	text, err := p.line(label)
	if err != nil {
		return 0, err
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "the value must be a number")
	}
	return value, nil
}

// floatFieldDefault prompts for a decimal value with a current value fallback.
func (p *prompter) floatFieldDefault(label string, current float64) (float64, error) {
	text, err := p.line(fmt.Sprintf("%s [%.2f]", label, current))
	if err != nil {
		return 0, err
	}
	if text == "" {
		return current, nil
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "the value must be a number")
	}
	return value, nil
}

// dateField prompts for a date in the display format.
func (p *prompter) dateField(label string) (time.Time, error) {
	text, err := p.line(fmt.Sprintf("%s (DD/MM/YYYY HH:MM)", label))
	if err != nil {
		return time.Time{}, err
	}
	value, err := time.Parse(dateFormat, text)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "the date must use the DD/MM/YYYY HH:MM format")
	}
	return value, nil
}

// dateFieldDefault prompts for a date with a current value fallback.
func (p *prompter) dateFieldDefault(label string, current time.Time) (time.Time, error) {
	text, err := p.line(fmt.Sprintf("%s [%s]", label, current.Format(dateFormat)))
	if err != nil {
		return time.Time{}, err
	}
	if text == "" {
		return current, nil
	}
	value, err := time.Parse(dateFormat, text)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.ErrInvalidInput, "the date must use the DD/MM/YYYY HH:MM format")
	}
	return value, nil
}

// uuidField prompts for a record identifier.
func (p *prompter) uuidField(label string) (uuid.UUID, error) {
	text, err := p.line(label)
	if err != nil {
		return uuid.Nil, err
	}
	value, err := uuid.Parse(text)
	if err != nil {
		return uuid.Nil, apperrors.Wrap(apperrors.ErrInvalidInput, "the value must be a valid identifier")
	}
	return value, nil
}

// optionalUUIDField prompts for a record identifier, returning nil when the
// user submits an empty line.
func (p *prompter) optionalUUIDField(label string) (*uuid.UUID, error) {
	text, err := p.line(fmt.Sprintf("%s (optional)", label))
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	value, err := uuid.Parse(text)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "the value must be a valid identifier")
	}
	return &value, nil
}

// yesNo prompts for a confirmation and reports whether the user accepted.
func (p *prompter) yesNo(label string) (bool, error) {
	text, err := p.line(fmt.Sprintf("%s [y/n]", label))
	if err != nil {
		return false, err
	}
	return strings.EqualFold(text, "y"), nil
}
