// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     parser
// Description: Table-driven command parser
// Created:     2026-10-16
// License:     MIT
// ============================================================================

// Package parser turns script lines into typed commands.
//
// Each line is tokenized, its first token selects a verb, its second an
// action, and the remaining tokens are handed to that action's argument
// parser. A whole script is parsed before anything runs.
package parser

import (
	"strings"

	"github.com/msto63/scripter/internal/command"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// Parser parses script lines and scripts
type Parser struct {
	logger  *sclog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger *sclog.Logger
	// MaxLineLength caps a single script line in bytes
	MaxLineLength int
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = sclog.GetDefault()
	}
	if opts.MaxLineLength <= 0 {
		opts.MaxLineLength = ChunkSize
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "parser"),
		options: opts,
	}
}

// ParseTokens parses one tokenized line. Failures are *SyntaxError values
// without line information.
func ParseTokens(tokens []string) (command.Command, error) {
	if len(tokens) == 0 {
		return nil, syntaxErrorf("empty line")
	}

	verb := tokens[0]
	actions, ok := grammar[verb]
	if !ok {
		return nil, syntaxErrorf("unknown command %q", verb)
	}
	if len(tokens) < 2 {
		return nil, syntaxErrorf("%s requires an action", verb)
	}

	name := tokens[1]
	a, ok := actions[name]
	if !ok {
		return nil, syntaxErrorf("unknown %s action %q", verb, name)
	}

	return a.parse(tokens[2:])
}

// ParseLine parses one script line. lineNo is 1-based and is reported in
// errors together with the original text.
func (p *Parser) ParseLine(lineNo int, line string) (command.Command, error) {
	cmd, err := ParseTokens(Tokenize(line))
	if err != nil {
		se, ok := err.(*SyntaxError)
		if !ok {
			se = &SyntaxError{Reason: err.Error()}
		}
		se.Line = lineNo
		se.Text = strings.TrimRight(line, "\r\n")

		p.logger.Debug("Line rejected", sclog.Fields{
			"line":   lineNo,
			"reason": se.Reason,
		})
		return nil, se
	}

	p.logger.Trace("Line parsed", sclog.Fields{
		"line":    lineNo,
		"command": cmd.String(),
	})
	return cmd, nil
}
