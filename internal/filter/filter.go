// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package filter selects lines of captured output matching all of a set of keywords
package filter

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/choria-io/upm/model"
)

// Filter matches lines where every keyword pattern matches somewhere in the line
type Filter struct {
	patterns []*regexp.Regexp
}

// Compile compiles every keyword independently, any invalid keyword fails the whole filter
func Compile(keywords []string) (*Filter, error) {
	f := &Filter{patterns: make([]*regexp.Regexp, 0, len(keywords))}

	for _, kw := range keywords {
		re, err := regexp.Compile(kw)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", model.ErrInvalidFilterPattern, kw, err)
		}
		f.patterns = append(f.patterns, re)
	}

	return f, nil
}

// Match determines if line matches all patterns, with no patterns every line matches
func (f *Filter) Match(line string) bool {
	for _, re := range f.patterns {
		if !re.MatchString(line) {
			return false
		}
	}

	return true
}

// Each calls cb for every matching line of text as soon as it is found, in source order.
// Lines end in \n or \r\n and may be of any length.
func (f *Filter) Each(text string, cb func(line string)) {
	for line := range strings.Lines(text) {
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if f.Match(line) {
			cb(line)
		}
	}
}

// Emit writes every matching line of text to w
func (f *Filter) Emit(text string, w io.Writer) error {
	var err error

	f.Each(text, func(line string) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(w, line)
	})

	return err
}

// Lines compiles keywords and writes lines of text matching all of them to w
func Lines(text string, keywords []string, w io.Writer) error {
	f, err := Compile(keywords)
	if err != nil {
		return err
	}

	return f.Emit(text, w)
}
