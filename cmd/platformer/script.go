package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/platformer/internal/core"
)

// script is a timeline of key events keyed by tick.
type script map[int][]core.KeyEvent

// parseScript parses a comma separated list of tick:kind:action entries,
// e.g. "0:down:right,120:down:jump,300:up:right". Events sharing a tick keep
// their order.
func parseScript(s string) (script, error) {
	out := make(script)
	s = strings.TrimSpace(s)
	if s == "" {
		return out, nil
	}

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		parts := strings.Split(entry, ":")
		if len(parts) != 3 {
			return nil, fmt.Errorf("script entry %q: want tick:kind:action", entry)
		}

		tick, err := strconv.Atoi(parts[0])
		if err != nil || tick < 0 {
			return nil, fmt.Errorf("script entry %q: bad tick %q", entry, parts[0])
		}

		action, ok := core.ParseAction(parts[2])
		if !ok || action == core.ActionQuit {
			return nil, fmt.Errorf("script entry %q: unknown action %q", entry, parts[2])
		}

		var e core.KeyEvent
		switch parts[1] {
		case "down":
			e = core.Down(action)
		case "up":
			e = core.Up(action)
		default:
			return nil, fmt.Errorf("script entry %q: kind must be down or up", entry)
		}
		out[tick] = append(out[tick], e)
	}
	return out, nil
}

// frame returns the input for a tick.
func (s script) frame(tick int) core.InputFrame {
	return core.NewInputFrame(s[tick]...)
}
