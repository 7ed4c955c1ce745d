package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/sevigo/triage-warden/internal/core"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

// report is the printable form of one delivery run through the rules.
type report struct {
	Delivery string          `yaml:"delivery"`
	Repo     string          `yaml:"repo,omitempty"`
	Action   string          `yaml:"action,omitempty"`
	Subject  string          `yaml:"subject,omitempty"`
	Number   int             `yaml:"number,omitempty"`
	Ignored  bool            `yaml:"ignored,omitempty"`
	Cases    []string        `yaml:"cases"`
	Outcomes []outcomeReport `yaml:"outcomes,omitempty"`
}

type outcomeReport struct {
	Case   string `yaml:"case"`
	Status string `yaml:"status"`
	Error  string `yaml:"error,omitempty"`
}

const (
	statusOK       = "ok"
	statusNotFound = "not found"
	statusFailed   = "failed"
)

func newReport(id string, d *core.Delivery, cases []core.Case) report {
	r := report{Delivery: id, Cases: make([]string, 0, len(cases))}
	if d != nil {
		r.Repo = d.FullName()
		r.Action = d.Action
		if d.Subject.Kind != core.SubjectNone {
			r.Subject = d.Subject.Kind.String()
			r.Number = d.Subject.Number
		}
	}
	for _, c := range cases {
		r.Cases = append(r.Cases, string(c))
	}
	return r
}

func (r *report) addOutcomes(outcomes []core.HandlerOutcome) {
	for _, o := range outcomes {
		or := outcomeReport{Case: string(o.Case), Status: statusOK}
		if o.Err != nil {
			or.Status = statusFailed
			if errors.Is(o.Err, core.ErrNotFound) {
				or.Status = statusNotFound
			}
			or.Error = o.Err.Error()
		}
		r.Outcomes = append(r.Outcomes, or)
	}
}

func printReport(w io.Writer, format string, r report) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	}

	titleColor.Fprintf(w, "Delivery %s\n", r.Delivery)
	if r.Ignored {
		warnColor.Fprintln(w, "  ignored: no repository in payload")
		return nil
	}
	fmt.Fprintf(w, "  repo:    %s\n", r.Repo)
	if r.Subject != "" {
		fmt.Fprintf(w, "  subject: %s #%d\n", r.Subject, r.Number)
	}
	if r.Action != "" {
		fmt.Fprintf(w, "  action:  %s\n", r.Action)
	}

	if len(r.Cases) == 0 {
		dimColor.Fprintln(w, "  no rule matched")
		return nil
	}
	if r.Outcomes == nil {
		for _, c := range r.Cases {
			successColor.Fprintf(w, "  ✓ %s\n", c)
		}
		return nil
	}
	for _, o := range r.Outcomes {
		switch o.Status {
		case statusOK:
			successColor.Fprintf(w, "  ✓ %s\n", o.Case)
		case statusNotFound:
			warnColor.Fprintf(w, "  ~ %s: %s\n", o.Case, o.Error)
		default:
			errorColor.Fprintf(w, "  ✗ %s: %s\n", o.Case, o.Error)
		}
	}
	return nil
}
