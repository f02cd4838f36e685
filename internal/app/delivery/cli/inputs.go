package cli

import (
	"errors"
	"fmt"
	"io"
	"pod-tracker-service/internal/pkg/constvars"
	"pod-tracker-service/internal/pkg/utils"
	"strings"
)

var ErrInputClosed = errors.New("input closed before the form was complete")

func (p *Prompter) readLine() (string, error) {
	line, err := p.In.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func fieldLabel(label string, required bool) string {
	if required {
		return label + " *: "
	}
	return label + ": "
}

// Text asks for a single line. A required field is asked again until it is
// not blank.
func (p *Prompter) Text(label string, required bool) (string, error) {
	for {
		fmt.Fprint(p.Out, fieldLabel(label, required))
		value, err := p.readLine()
		if err != nil {
			return "", err
		}
		if value != "" || !required {
			return value, nil
		}
		fmt.Fprintf(p.Out, "%s is required\n", label)
	}
}

// Date asks for a calendar day and returns it as YYYY-MM-DD.
func (p *Prompter) Date(label string, required bool) (string, error) {
	for {
		value, err := p.Text(label+" (YYYY-MM-DD)", required)
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", nil
		}
		date, err := utils.ParseCalendarDate(value)
		if err == nil {
			return date.Format(constvars.CalendarDateLayout), nil
		}
		fmt.Fprintf(p.Out, "%s must be a date formatted as YYYY-MM-DD\n", label)
	}
}

// Confirm defaults to no.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.Out, "%s [y/N]: ", question)
	answer, err := p.readLine()
	if err != nil {
		if errors.Is(err, ErrInputClosed) {
			return false, nil
		}
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
