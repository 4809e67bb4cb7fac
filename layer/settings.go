package layer

import (
	"fmt"
	"strings"

	"github.com/wippyai/vk-validation/errors"
)

// DebugAction selects where reports go.
type DebugAction uint8

const (
	ActionLog DebugAction = 1 << iota
	ActionCallback

	ActionIgnore DebugAction = 0
)

func (a DebugAction) String() string {
	if a == ActionIgnore {
		return "ignore"
	}
	var parts []string
	if a&ActionLog != 0 {
		parts = append(parts, "log")
	}
	if a&ActionCallback != 0 {
		parts = append(parts, "callback")
	}
	return strings.Join(parts, ",")
}

// ParseDebugAction parses a comma separated list of log, callback and ignore.
func ParseDebugAction(text string) (DebugAction, error) {
	var a DebugAction
	for _, part := range strings.Split(text, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "log":
			a |= ActionLog
		case "callback":
			a |= ActionCallback
		case "ignore", "":
		default:
			return 0, fmt.Errorf("unknown debug action %q", part)
		}
	}
	return a, nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *DebugAction) UnmarshalText(text []byte) error {
	v, err := ParseDebugAction(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Settings control reporting. They can be swapped while the layer is in use.
type Settings struct {
	// ReportFlags selects the severities written to the log.
	ReportFlags errors.Severity
	// BlockOn lists severities that block forwarding in addition to errors.
	BlockOn errors.Severity
	// DebugAction selects the log and the debug-report callbacks.
	DebugAction DebugAction
	// DisabledCodes are never written to the log.
	DisabledCodes []errors.Code
	// MaxStringLength bounds the length of names passed to the API.
	MaxStringLength int
	// HistorySize is the number of reports each session retains.
	HistorySize int
}

// DefaultSettings returns the settings used when none are given.
func DefaultSettings() Settings {
	return Settings{
		ReportFlags:     errors.SeverityError | errors.SeverityWarning | errors.SeverityPerformance,
		DebugAction:     ActionLog | ActionCallback,
		MaxStringLength: 256,
		HistorySize:     128,
	}
}
