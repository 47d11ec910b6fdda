package input

import (
	"bytes"
	"testing"

	"github.com/msto63/scripter/internal/command"
	"github.com/msto63/scripter/pkg/core/config"
	scerr "github.com/msto63/scripter/pkg/core/errors"
	sclog "github.com/msto63/scripter/pkg/core/log"
)

func TestDryRun_PrintsPrimitives(t *testing.T) {
	var buf bytes.Buffer
	dev := NewDryRun(&buf, sclog.Discard())

	cmds := []command.Command{
		command.Keyboard{Action: command.KeyPress, Key: command.KeySpec{Named: command.KeyPageUp}},
		command.Keyboard{Action: command.KeyType, Text: "hello world"},
		command.Mouse{Action: command.MouseDouble, Button: command.ButtonMiddle},
		command.Mouse{Action: command.MouseScroll, Scroll: command.ScrollSpec{Amount: -2, Axis: command.Horizontal}},
		command.Mouse{Action: command.MouseMove, Move: command.MoveSpec{X: 5, Y: 6, Mode: command.Relative}},
	}
	for _, c := range cmds {
		if err := c.Execute(dev); err != nil {
			t.Fatalf("Execute(%s) error = %v", c, err)
		}
	}

	want := "key down pageup\n" +
		"type \"hello world\"\n" +
		"button click middle\n" +
		"button click middle\n" +
		"scroll -2 x\n" +
		"move 5 6 rel\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
	if dev.Events() != 6 {
		t.Errorf("Events() = %d, want 6", dev.Events())
	}
	if err := dev.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestOpen(t *testing.T) {
	handle, err := Open(Options{Backend: config.BackendDryRun, Logger: sclog.Discard()})
	if err != nil {
		t.Fatalf("Open(dryrun) error = %v", err)
	}
	if _, ok := handle.(*DryRun); !ok {
		t.Errorf("Open(dryrun) = %T, want *DryRun", handle)
	}

	_, err = Open(Options{Backend: "xdotool", Logger: sclog.Discard()})
	if !scerr.HasCode(err, scerr.CodeBackendUnavailable) {
		t.Errorf("expected BACKEND_UNAVAILABLE, got %v", err)
	}
}

func TestRobotgoKeyName(t *testing.T) {
	tests := []struct {
		key  command.KeySpec
		want string
	}{
		{command.KeySpec{Named: command.KeyEscape}, "escape"},
		{command.KeySpec{Named: command.KeyPageDown}, "pagedown"},
		{command.KeySpec{Char: 'q'}, "q"},
	}
	for _, tt := range tests {
		if got := robotgoKeyName(tt.key); got != tt.want {
			t.Errorf("robotgoKeyName(%+v) = %q, want %q", tt.key, got, tt.want)
		}
	}

	for named := command.KeySpace; named <= command.KeyEscape; named++ {
		if _, ok := robotgoKeys[named]; !ok {
			t.Errorf("no robotgo name for %s", named)
		}
	}
}
