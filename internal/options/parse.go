package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBlock accepts true/yes, false/no, or an integer where zero means
// non-blocking.
func ParseBlock(text string) (bool, error) {
	switch text {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return false, fmt.Errorf("bad -b block format [%s] ignored", text)
	}
	return v != 0, nil
}

// ParseMode reads an octal permission value in (0, 07777].
func ParseMode(text string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(text, "0o"), 8, 32)
	if err != nil || v == 0 || v >= 0o10000 {
		return 0, fmt.Errorf("impossible -m mode value [%s] ignored", text)
	}
	return uint32(v), nil
}

// ParsePriority reads a decimal priority in [0, limit).
func ParsePriority(text string, limit uint) (uint, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad -p priority format [%s] ignored", text)
	}
	if v < 0 || uint64(v) >= uint64(limit) {
		return 0, fmt.Errorf("bad -p priority range [%s] ignored", text)
	}
	return uint(v), nil
}

// ParseOutput accepts one of the supported output formats.
func ParseOutput(text string) (string, error) {
	switch format := strings.ToLower(strings.TrimSpace(text)); format {
	case OutputText, OutputTable, OutputJSON:
		return format, nil
	default:
		return "", fmt.Errorf("unknown -o output format [%s] ignored", text)
	}
}

func parseLong(text, knob, name string) (int64, error) {
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s %s invalid format [%s]", knob, name, text)
	}
	return v, nil
}

// parseIdentity resolves a name first, then falls back to a decimal id.
func parseIdentity(text, knob, name string, lookup func(string) (uint32, bool)) (uint32, error) {
	if lookup != nil {
		if id, ok := lookup(text); ok {
			return id, nil
		}
	}
	if id, ok := parseID(text); ok {
		return id, nil
	}
	return 0, fmt.Errorf("%s %s format [%s] ignored", knob, name, text)
}
