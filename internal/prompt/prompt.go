// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package prompt asks the user to confirm commands before they are run
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// Terminal confirms using an interactive question on a terminal, or by reading a line otherwise
type Terminal struct {
	in     io.Reader
	out    io.Writer
	reader *bufio.Reader
	mu     sync.Mutex
}

// New creates a confirmer reading answers from in and writing questions to out
func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

// Confirm asks question and reports if the user agreed, the default answer is no
func (t *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return false, err
	}

	in, isFile := t.in.(*os.File)
	out, outFile := t.out.(*os.File)
	if isFile && outFile && term.IsTerminal(int(in.Fd())) {
		return t.ask(question, in, out)
	}

	return t.readLine(question)
}

func (t *Terminal) ask(question string, in *os.File, out *os.File) (bool, error) {
	var ok bool

	err := survey.AskOne(&survey.Confirm{Message: question, Default: false}, &ok, survey.WithStdio(in, out, out))
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return ok, nil
}

func (t *Terminal) readLine(question string) (bool, error) {
	_, err := fmt.Fprintf(t.out, "%s [y/N] ", question)
	if err != nil {
		return false, err
	}

	line, err := t.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	return IsYes(line), nil
}

// Input is the reader commands should be attached to, it holds any input read ahead of the last answer
func (t *Terminal) Input() io.Reader {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.reader.Buffered() == 0 {
		return t.in
	}

	return t.reader
}

// IsYes determines if answer is an affirmative answer
func IsYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
