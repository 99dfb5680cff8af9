package cli

import (
	"strings"
	"testing"
)

func TestResolveUIMode(t *testing.T) {
	cases := []struct {
		name     string
		mode     string
		inTTY    bool
		outTTY   bool
		wantLive bool
		wantWarn bool
		wantErr  bool
	}{
		{name: "auto interactive", mode: "auto", inTTY: true, outTTY: true, wantLive: true},
		{name: "auto piped stdout", mode: "auto", inTTY: true},
		{name: "auto piped stdin", mode: "auto", outTTY: true},
		{name: "empty means auto", mode: "", inTTY: true, outTTY: true, wantLive: true},
		{name: "plain on a terminal", mode: " Plain ", inTTY: true, outTTY: true},
		{name: "live interactive", mode: "live", inTTY: true, outTTY: true, wantLive: true},
		{name: "live piped falls back", mode: "live", outTTY: true, wantWarn: true},
		{name: "invalid", mode: "fancy", inTTY: true, outTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	in, out := strings.NewReader(""), &strings.Builder{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(stream any) bool {
				if stream == any(in) {
					return tc.inTTY
				}
				return tc.outTTY
			}
			decision, err := resolveUIMode(tc.mode, in, out)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useLive != tc.wantLive {
				t.Fatalf("expected useLive=%v, got %v", tc.wantLive, decision.useLive)
			}
			if (decision.warning != "") != tc.wantWarn {
				t.Fatalf("unexpected warning state %q", decision.warning)
			}
		})
	}
}

func TestStreamIsTerminalWithoutFd(t *testing.T) {
	if streamIsTerminal(&strings.Builder{}) || streamIsTerminal(nil) {
		t.Fatalf("expected non-file streams to be non-interactive")
	}
}
