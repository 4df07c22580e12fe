// Where: internal/domain/bench/mode.go
// What: Build mode selection and normalization.
// Why: Keep target selection pure so prompt and flag paths share one mapping.
package bench

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSelection is returned when operator input matches no build target.
var ErrInvalidSelection = errors.New("invalid choice")

// Mode is the set of release targets exercised by a run.
type Mode string

const (
	ModeWeb  Mode = "web"
	ModeAPK  Mode = "apk"
	ModeBoth Mode = "both"
)

// IncludesWeb reports whether the web enable and web release build run.
func (m Mode) IncludesWeb() bool {
	return m == ModeWeb || m == ModeBoth
}

// IncludesMobile reports whether the apk release build runs.
func (m Mode) IncludesMobile() bool {
	return m == ModeAPK || m == ModeBoth
}

// ChoiceOption is one entry of the interactive build target menu.
type ChoiceOption struct {
	Key   string
	Label string
	Mode  Mode
}

// ChoiceOptions lists the menu entries in display order.
func ChoiceOptions() []ChoiceOption {
	return []ChoiceOption{
		{Key: "1", Label: "Web (flutter build web --release)", Mode: ModeWeb},
		{Key: "2", Label: "APK (flutter build apk --release)", Mode: ModeAPK},
		{Key: "3", Label: "Both", Mode: ModeBoth},
	}
}

// ParseChoice maps a menu answer ("1", "2" or "3") to a Mode.
func ParseChoice(input string) (Mode, error) {
	trimmed := strings.TrimSpace(input)
	for _, opt := range ChoiceOptions() {
		if trimmed == opt.Key {
			return opt.Mode, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSelection, trimmed)
}

// ParseMode normalizes a mode name given on the command line.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case string(ModeWeb):
		return ModeWeb, nil
	case string(ModeAPK), "mobile":
		return ModeAPK, nil
	case string(ModeBoth):
		return ModeBoth, nil
	default:
		return "", fmt.Errorf("%w: unsupported mode %q", ErrInvalidSelection, value)
	}
}
