package anim

import (
	"strings"

	"github.com/benoitkugler/shapecraft/config"
	"github.com/pkg/errors"
)

// Mode is an animation kind.
type Mode uint8

const (
	None Mode = iota // no animation
	Rotate
	Move
	Expand
	Contract
	Blink
	ColorCycle
)

var modeNames = [...]string{
	None:       "stop",
	Rotate:     "rotate",
	Move:       "move",
	Expand:     "expand",
	Contract:   "contract",
	Blink:      "blink",
	ColorCycle: "color_cycle",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "<unknown Mode>"
}

// Cyclic returns true for the modes running until stopped.
func (m Mode) Cyclic() bool { return m == ColorCycle }

// iterations returns the number of steps of one-shot modes.
func (m Mode) iterations() int {
	switch m {
	case Rotate:
		return config.RotateIterations
	case Move:
		return config.MoveIterations
	case Expand:
		return config.ExpandIterations
	case Contract:
		return config.ContractIterations
	case Blink:
		return config.BlinkIterations
	default:
		return 0
	}
}

// ParseMode is case insensitive. "stop" is parsed as None.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return None, errors.Errorf("unknown animation mode %q", s)
}
