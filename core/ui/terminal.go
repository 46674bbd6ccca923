// Package ui - Terminal user interface
// Rich CLI output with tables, spinners, colors, and interactive prompts.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Colors for terminal output
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
)

// Writer is the UI output destination
type Writer struct {
	out       io.Writer
	noColor   bool
	verbosity int
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{
		out:       out,
		noColor:   noColor,
		verbosity: 1,
	}
}

// SetVerbosity sets output verbosity (0=quiet, 1=normal, 2=verbose)
func (w *Writer) SetVerbosity(level int) {
	w.verbosity = level
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes a line
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println(w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Green, "✓ ") + msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Yellow, "⚠ ") + msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Red, "✗ ") + msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	if w.verbosity < 1 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Blue, "ℹ ") + msg)
}

// Debug prints a debug message
func (w *Writer) Debug(format string, args ...interface{}) {
	if w.verbosity < 2 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Dim, "  "+msg))
}

// Table renders a table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	// Build format string
	format := ""
	for i, w := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", w)
	}
	format += "\n"

	// Header
	headerArgs := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	t.w.Print(t.w.color(Bold, fmt.Sprintf(format, headerArgs...)))

	// Separator
	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println(sep)

	// Rows
	for _, row := range t.rows {
		args := make([]interface{}, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		t.w.Print(format, args...)
	}
}

// RunSummary renders the outcome of a batch run
type RunSummary struct {
	w           *Writer
	RunID       string
	Projects    int
	Succeeded   int
	Failed      int
	Artifacts   int
	SkippedRows int
	OutputDir   string
	Duration    time.Duration
}

// NewRunSummary creates a run summary
func (w *Writer) NewRunSummary() *RunSummary {
	return &RunSummary{w: w}
}

// Render prints the run summary
func (s *RunSummary) Render() {
	s.w.Header("Batch Summary")

	border := strings.Repeat("─", 37)

	// Main outcome box
	s.w.Println(s.w.color(Bold, "╭"+border+"╮"))
	s.w.Println(s.w.color(Bold, "│") + s.w.color(Green, fmt.Sprintf("  %-12s%-23s", "Succeeded:", fmt.Sprintf("%d of %d projects", s.Succeeded, s.Projects))) + s.w.color(Bold, "│"))
	s.w.Println(s.w.color(Bold, "│") + s.w.color(Dim, fmt.Sprintf("  %-12s%-23s", "Artifacts:", fmt.Sprintf("%d files", s.Artifacts))) + s.w.color(Bold, "│"))
	s.w.Println(s.w.color(Bold, "╰"+border+"╯"))

	s.w.Println("")

	// Status indicator
	statusColor := Green
	statusIcon := "●"
	statusText := "all projects processed"
	switch {
	case s.Failed > 0 && s.Succeeded == 0:
		statusColor = Red
		statusIcon = "○"
		statusText = "every project failed"
	case s.Failed > 0:
		statusColor = Yellow
		statusIcon = "◐"
		statusText = fmt.Sprintf("%d of %d projects failed", s.Failed, s.Projects)
	}
	s.w.Println(s.w.color(statusColor, fmt.Sprintf("%s Status: %s", statusIcon, statusText)))

	// Stats
	s.w.Println(s.w.color(Dim, fmt.Sprintf("  Output: %s", s.OutputDir)))
	s.w.Println(s.w.color(Dim, fmt.Sprintf("  Run ID: %s", s.RunID)))
	if s.SkippedRows > 0 {
		s.w.Warning("%d input rows skipped", s.SkippedRows)
	}
	s.w.Println(s.w.color(Dim, fmt.Sprintf("  Completed in %s", formatDuration(s.Duration))))
}

// Spinner shows a loading spinner
type Spinner struct {
	w       *Writer
	label   string
	frames  []string
	current int
	stop    chan struct{}
	done    chan struct{}
}

// NewSpinner creates a spinner
func (w *Writer) NewSpinner(label string) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start starts the spinner
func (s *Spinner) Start() {
	go func() {
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				close(s.done)
				return
			case <-ticker.C:
				s.current = (s.current + 1) % len(s.frames)
				fmt.Fprintf(s.w.out, "\r%s %s", s.w.color(Cyan, s.frames[s.current]), s.label)
			}
		}
	}()
}

// Stop stops the spinner
func (s *Spinner) Stop(success bool) {
	close(s.stop)
	<-s.done

	icon := s.w.color(Green, "✓")
	if !success {
		icon = s.w.color(Red, "✗")
	}
	fmt.Fprintf(s.w.out, "\r%s %s\n", icon, s.label)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
