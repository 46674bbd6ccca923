package ui

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Prompter asks the interactive questions of a batch run on a
// line-oriented reader. The reader is injected so tests can script answers.
type Prompter struct {
	w  *Writer
	in *bufio.Scanner
}

// NewPrompter creates a prompter reading answers from in
func NewPrompter(w *Writer, in io.Reader) *Prompter {
	return &Prompter{
		w:  w,
		in: bufio.NewScanner(in),
	}
}

// readLine returns the next trimmed input line; ok is false once the
// reader is exhausted
func (p *Prompter) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}

// InputFilePath asks for the input workbook path until an existing path
// is given. Empty input, or end of input, cancels: ok is false.
func (p *Prompter) InputFilePath() (string, bool) {
	for {
		p.w.Print("Enter the path to your input Excel file: ")
		line, more := p.readLine()
		if !more || line == "" {
			return "", false
		}
		if _, err := os.Stat(line); err == nil {
			return line, true
		}
		p.w.Println("Error: File '%s' does not exist.", line)
	}
}

// OutputDirPath asks where artifacts should be written. Empty input means
// the current working directory. A path that does not exist is created
// after a y/n confirmation; any other answer re-prompts.
func (p *Prompter) OutputDirPath() (string, bool) {
	for {
		p.w.Print("\nEnter the folder path to save results (or press Enter to use current directory): ")
		line, more := p.readLine()
		if !more {
			return "", false
		}
		if line == "" {
			dir, err := os.Getwd()
			if err != nil {
				p.w.Error("cannot determine current directory: %v", err)
				return "", false
			}
			return dir, true
		}
		if info, err := os.Stat(line); err == nil && info.IsDir() {
			return line, true
		}

		p.w.Print("Directory '%s' doesn't exist. Create it? (y/n): ", line)
		answer, more := p.readLine()
		if !more {
			return "", false
		}
		if strings.EqualFold(answer, "y") {
			if err := os.MkdirAll(line, 0755); err != nil {
				p.w.Println("Error creating directory: %v", err)
				continue
			}
			p.w.Println("Created directory: %s", line)
			return line, true
		}
		p.w.Println("Please enter a valid directory path.")
	}
}
