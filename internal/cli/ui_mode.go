package cli

import (
	"fmt"
	"strings"

	"golang.org/x/term"

	"pracexam/internal/config"
)

// uiModeDecision records which exam adapter to run and why.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a stream is attached to a TTY.
var isTerminal = streamIsTerminal

// resolveUIMode picks the live UI only when both ends of the exam are
// interactive; answers piped through stdin always get the plain adapter.
func resolveUIMode(mode string, in, out any) (uiModeDecision, error) {
	interactive := isTerminal(in) && isTerminal(out)
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", config.UIModeAuto:
		return uiModeDecision{useLive: interactive}, nil
	case config.UIModeLive:
		if interactive {
			return uiModeDecision{useLive: true}, nil
		}
		return uiModeDecision{
			warning: "Live UI requested but the terminal is not interactive; falling back to plain output.",
		}, nil
	case config.UIModePlain:
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
}

func streamIsTerminal(stream any) bool {
	fder, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fder.Fd()))
}
