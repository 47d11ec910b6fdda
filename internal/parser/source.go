// ============================================================================
// scripter - Input Automation Scripts
// ============================================================================
//
// Package:     parser
// Description: Script reading and whole-script parsing
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package parser

import (
	"bufio"
	"io"
	"os"

	"github.com/msto63/scripter/internal/command"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

// ChunkSize is the read buffer size and the default line length cap
const ChunkSize = 10 * 1024 * 1024

// Statement is one parsed script line
type Statement struct {
	Line    int
	Text    string
	Command command.Command
}

// Script is a fully parsed script in file order
type Script struct {
	Source     string
	Statements []Statement
}

// Commands returns the commands in file order
func (s *Script) Commands() []command.Command {
	cmds := make([]command.Command, len(s.Statements))
	for i, st := range s.Statements {
		cmds[i] = st.Command
	}
	return cmds
}

// Len returns the number of statements
func (s *Script) Len() int {
	return len(s.Statements)
}

// ParseFile opens and parses a script file
func (p *Parser) ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, scerr.Wrap(err, "unable to open script").
			WithCode(scerr.CodeScriptUnreadable).
			WithDetail("path", path)
	}
	defer f.Close()

	script, err := p.Parse(f)
	if script != nil {
		script.Source = path
	}
	return script, err
}

// Parse reads r line by line and parses every line. It stops at the first
// syntax error, which is returned as *SyntaxError. No partial script is
// returned on error.
func (p *Parser) Parse(r io.Reader) (*Script, error) {
	maxLine := p.options.MaxLineLength
	scanner := bufio.NewScanner(bufio.NewReaderSize(r, min(maxLine, ChunkSize)))
	scanner.Buffer(make([]byte, 0, min(maxLine, 64*1024)), maxLine)

	script := &Script{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()

		cmd, err := p.ParseLine(lineNo, text)
		if err != nil {
			return nil, err
		}
		script.Statements = append(script.Statements, Statement{
			Line:    lineNo,
			Text:    text,
			Command: cmd,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, scerr.Wrap(err, "unable to read script").
			WithCode(scerr.CodeScriptUnreadable).
			WithDetail("line", lineNo+1)
	}

	p.logger.Debug("Script parsed", sclog.Fields{
		"statements": len(script.Statements),
	})
	return script, nil
}
