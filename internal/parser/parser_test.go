package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/scripter/internal/command"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

func newTestParser() *Parser {
	return New(Options{Logger: sclog.Discard()})
}

func wait(amount uint32, unit command.Unit) command.Command {
	return command.Wait{Duration: command.Duration{Amount: amount, Unit: unit}}
}

func TestParseLine_Wait(t *testing.T) {
	tests := []struct {
		line string
		want command.Command
	}{
		{"wait time", wait(0, command.Milliseconds)},
		{"wait time 5", wait(5, command.Seconds)},
		{"wait time 250 milliseconds", wait(250, command.Milliseconds)},
		{"wait time 3 seconds", wait(3, command.Seconds)},
		{"wait time 2 minutes", wait(2, command.Minutes)},
		{"WAIT TIME 1 HOURS", wait(1, command.Hours)},
		{"wait time 4294967295", wait(4294967295, command.Seconds)},
		{"wait time 2562047 hours", wait(2562047, command.Hours)},
		{"wait time 153722867 minutes", wait(153722867, command.Minutes)},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.ParseLine(1, tt.line)
			if err != nil {
				t.Fatalf("ParseLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_Keyboard(t *testing.T) {
	tests := []struct {
		line string
		want command.Command
	}{
		{"kbd press a", command.Keyboard{Action: command.KeyPress, Key: command.KeySpec{Char: 'a'}}},
		{"kbd release space", command.Keyboard{Action: command.KeyRelease, Key: command.KeySpec{Named: command.KeySpace}}},
		{"kbd click page-down", command.Keyboard{Action: command.KeyClick, Key: command.KeySpec{Named: command.KeyPageDown}}},
		{"kbd click Escape", command.Keyboard{Action: command.KeyClick, Key: command.KeySpec{Named: command.KeyEscape}}},
		{"kbd press hello", command.Keyboard{Action: command.KeyPress, Key: command.KeySpec{Char: 'h'}}},
		{"kbd press tab extra args", command.Keyboard{Action: command.KeyPress, Key: command.KeySpec{Named: command.KeyTab}}},
		{"kbd type hello world", command.Keyboard{Action: command.KeyType, Text: "hello world"}},
		{"kbd type  Hello   World ", command.Keyboard{Action: command.KeyType, Text: "hello world"}},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.ParseLine(1, tt.line)
			if err != nil {
				t.Fatalf("ParseLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_Mouse(t *testing.T) {
	tests := []struct {
		line string
		want command.Command
	}{
		{"mouse press left", command.Mouse{Action: command.MousePress, Button: command.ButtonLeft}},
		{"mouse release right", command.Mouse{Action: command.MouseRelease, Button: command.ButtonRight}},
		{"mouse click middle", command.Mouse{Action: command.MouseClick, Button: command.ButtonMiddle}},
		{"mouse double left", command.Mouse{Action: command.MouseDouble, Button: command.ButtonLeft}},
		{"mouse triple right", command.Mouse{Action: command.MouseTriple, Button: command.ButtonRight}},
		{"mouse scroll 3 y", command.Mouse{Action: command.MouseScroll, Scroll: command.ScrollSpec{Amount: 3, Axis: command.Vertical}}},
		{"mouse scroll -5 x", command.Mouse{Action: command.MouseScroll, Scroll: command.ScrollSpec{Amount: -5, Axis: command.Horizontal}}},
		{"mouse move 100 200 abs", command.Mouse{Action: command.MouseMove, Move: command.MoveSpec{X: 100, Y: 200, Mode: command.Absolute}}},
		{"mouse move -10 15 rel", command.Mouse{Action: command.MouseMove, Move: command.MoveSpec{X: -10, Y: 15, Mode: command.Relative}}},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := p.ParseLine(1, tt.line)
			if err != nil {
				t.Fatalf("ParseLine() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"empty line", "", "empty line"},
		{"blank line", "   ", "empty line"},
		{"unknown verb", "jump high", "unknown command"},
		{"legacy click verb", "click left", "unknown command"},
		{"verb only", "kbd", "requires an action"},
		{"unknown wait action", "wait forever", "unknown wait action"},
		{"wait too many args", "wait time 1 seconds now", "at most 2 arguments"},
		{"wait negative", "wait time -1", "invalid wait amount"},
		{"wait non numeric", "wait time soon", "invalid wait amount"},
		{"wait overflow", "wait time 4294967296", "invalid wait amount"},
		{"wait unknown unit", "wait time 5 ms", "unknown time unit"},
		{"wait hours overflow", "wait time 3000000 hours", "wait amount too large"},
		{"wait minutes overflow", "wait time 200000000 minutes", "wait amount too large"},
		{"wait max hours", "wait time 4294967295 hours", "wait amount too large"},
		{"kbd missing key", "kbd press", "requires a key"},
		{"kbd type missing text", "kbd type", "requires text"},
		{"kbd unknown action", "kbd hold a", "unknown kbd action"},
		{"mouse unknown button", "mouse click back", "unknown mouse button"},
		{"mouse missing button", "mouse click", "takes 1 argument(s), got 0"},
		{"mouse extra args", "mouse click left twice", "takes 1 argument(s), got 2"},
		{"scroll bad axis", "mouse scroll 3 z", "unknown scroll axis"},
		{"scroll bad amount", "mouse scroll up y", "invalid integer"},
		{"move invalid mode", "mouse move 10 20 foo", "unknown move mode"},
		{"move missing args", "mouse move 10 20", "takes 3 argument(s), got 2"},
		{"move bad coordinate", "mouse move ten 20 abs", "invalid integer"},
	}

	p := newTestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseLine(7, tt.line)
			if err == nil {
				t.Fatalf("ParseLine(%q) expected error", tt.line)
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected *SyntaxError, got %T", err)
			}
			if se.Line != 7 {
				t.Errorf("Line = %d, want 7", se.Line)
			}
			if se.Text != tt.line {
				t.Errorf("Text = %q, want %q", se.Text, tt.line)
			}
			if !strings.Contains(se.Reason, tt.reason) {
				t.Errorf("Reason = %q, want it to contain %q", se.Reason, tt.reason)
			}
		})
	}
}

func TestParseTokens_NoLineInfo(t *testing.T) {
	_, err := ParseTokens([]string{"mouse", "move", "1", "2", "sideways"})

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Line != 0 {
		t.Errorf("Line = %d, want 0", se.Line)
	}
}

func TestSyntaxError_Error(t *testing.T) {
	err := &SyntaxError{Line: 2, Text: "mouse click back", Reason: `unknown mouse button "back"`}

	want := `syntax error at line 2: unknown mouse button "back" (in "mouse click back")`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParse_WholeScript(t *testing.T) {
	script := strings.Join([]string{
		"wait time 1",
		"mouse move 100 200 abs",
		"mouse double left",
		"kbd type hello world",
		"kbd click enter",
		"wait time 500 milliseconds\r",
	}, "\n") + "\n"

	want := []command.Command{
		wait(1, command.Seconds),
		command.Mouse{Action: command.MouseMove, Move: command.MoveSpec{X: 100, Y: 200, Mode: command.Absolute}},
		command.Mouse{Action: command.MouseDouble, Button: command.ButtonLeft},
		command.Keyboard{Action: command.KeyType, Text: "hello world"},
		command.Keyboard{Action: command.KeyClick, Key: command.KeySpec{Char: 'e'}},
		wait(500, command.Milliseconds),
	}

	p := newTestParser()
	first, err := p.Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if diff := cmp.Diff(want, first.Commands()); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}

	second, err := p.Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("second Parse() error = %v", err)
	}
	if diff := cmp.Diff(first.Statements, second.Statements); diff != "" {
		t.Errorf("parsing is not idempotent (-first +second):\n%s", diff)
	}

	if first.Statements[2].Line != 3 || first.Statements[2].Text != "mouse double left" {
		t.Errorf("statement 3 = %+v", first.Statements[2])
	}
}

func TestParse_StopsAtFirstError(t *testing.T) {
	script := "kbd press a\n\nmouse click back\n"

	_, err := newTestParser().Parse(strings.NewReader(script))

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if se.Line != 2 || se.Reason != "empty line" {
		t.Errorf("got line %d reason %q, want line 2 empty line", se.Line, se.Reason)
	}
}

func TestParse_LineTooLong(t *testing.T) {
	p := New(Options{Logger: sclog.Discard(), MaxLineLength: 32})

	_, err := p.Parse(strings.NewReader("kbd type " + strings.Repeat("x", 64) + "\n"))
	if !scerr.HasCode(err, scerr.CodeScriptUnreadable) {
		t.Errorf("expected SCRIPT_UNREADABLE, got %v", err)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := newTestParser().ParseFile("/nonexistent/script.txt")
	if !scerr.HasCode(err, scerr.CodeScriptUnreadable) {
		t.Errorf("expected SCRIPT_UNREADABLE, got %v", err)
	}
}

func TestGrammar(t *testing.T) {
	rules := Grammar()
	if len(rules) != 12 {
		t.Fatalf("expected 12 rules, got %d", len(rules))
	}
	if rules[0].Verb != "kbd" || rules[0].Action != "click" {
		t.Errorf("first rule = %+v, want kbd click", rules[0])
	}
	for _, r := range rules {
		if r.Verb == "click" {
			t.Error("click must not be a verb")
		}
		if !strings.HasPrefix(r.Usage, r.Verb+" "+r.Action) {
			t.Errorf("usage %q does not start with %q", r.Usage, r.Verb+" "+r.Action)
		}
	}
	if diff := cmp.Diff([]string{"kbd", "mouse", "wait"}, Verbs()); diff != "" {
		t.Errorf("Verbs() mismatch:\n%s", diff)
	}
}
