package assist

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// TTY is a numbered menu on a terminal.
type TTY struct {
	reader *bufio.Reader
	w      io.Writer

	// pending holds a read abandoned by a cancelled prompt; the next prompt
	// takes its answer instead of starting a second reader.
	pending chan answer
}

type answer struct {
	line string
	err  error
}

// NewTTY reads answers from r and writes prompts to w.
func NewTTY(r io.Reader, w io.Writer) *TTY {
	return &TTY{reader: bufio.NewReader(r), w: w}
}

// Name implements Assistant.
func (t *TTY) Name() string { return "tty" }

// Choose prints the request and the candidates, then reads one answer:
// a number, "m" for manual entry, or "q" (or anything else) to cancel.
func (t *TTY) Choose(ctx context.Context, req Request) (Choice, error) {
	fmt.Fprintf(t.w, "%s\n", req.Text())
	for i, c := range req.Candidates {
		fmt.Fprintf(t.w, "  %d) %s\n", i+1, c)
	}
	fmt.Fprintf(t.w, "  m) Manual path\n")
	fmt.Fprintf(t.w, "  q) Cancel\n> ")

	line, err := t.readLine(ctx)
	if err != nil {
		return Choice{}, err
	}
	switch {
	case line == "", line[0] == 'q', line[0] == 'Q':
		return Choice{Action: Cancel}, nil
	case line[0] == 'm', line[0] == 'M':
		return Choice{Action: Manual}, nil
	}

	num, err := strconv.Atoi(line)
	if err != nil || num < 1 || num > len(req.Candidates) {
		return Choice{Action: Cancel}, nil
	}
	return Choice{Action: Pick, Prefix: req.Candidates[num-1]}, nil
}

// PickDirectory reads a path typed by the user. An empty line cancels.
func (t *TTY) PickDirectory(ctx context.Context, _ string) (string, bool, error) {
	fmt.Fprintf(t.w, "Enter mount prefix (example: /mnt/DRIVE) or empty to cancel:\n> ")
	line, err := t.readLine(ctx)
	if err != nil {
		return "", false, err
	}
	if line == "" {
		return "", false, nil
	}
	return line, true, nil
}

// readLine returns the trimmed next line. EOF counts as an empty answer.
// It returns ctx.Err() as soon as ctx is done, leaving the read pending.
func (t *TTY) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if t.pending == nil {
		ch := make(chan answer, 1)
		t.pending = ch
		go func() {
			line, err := t.reader.ReadString('\n')
			ch <- answer{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-t.pending:
		t.pending = nil
		if a.err != nil && a.err != io.EOF {
			return "", fmt.Errorf("reading answer: %w", a.err)
		}
		return strings.TrimSpace(a.line), nil
	}
}
