package internal

import (
	"fmt"
	"strings"
)

const optionPrefix = "-"

type Target string

const (
	TargetHeader Target = "header"
	TargetSplit  Target = "split"
	TargetGo     Target = "go"
)

func (t Target) IsValid() bool {
	switch t {
	case TargetHeader, TargetSplit, TargetGo:
		return true
	}
	return false
}

var knownOptions = map[string]bool{
	"-config":   true,
	"-base":     true,
	"-target":   true,
	"-header":   true,
	"-source":   true,
	"-output":   true,
	"-package":  true,
	"-sentinel": true,
}

// Options is the raw command line: -key=value options and descriptor names.
type Options struct {
	Values      map[string]string
	Descriptors []string
}

func ParseArgs(args []string) (*Options, error) {
	opts := &Options{Values: make(map[string]string)}
	for _, arg := range args {
		if !IsOption(arg) {
			opts.Descriptors = append(opts.Descriptors, arg)
			continue
		}
		key, value, err := ParseOption(arg)
		if err != nil {
			return nil, err
		}
		opts.Values[key] = value
	}
	return opts, nil
}

func ParseOption(arg string) (string, string, error) {
	key, value, ok := strings.Cut(strings.TrimSpace(arg), "=")
	if !ok {
		return "", "", fmt.Errorf("%w: invalid argument: %s", ErrUsage, arg)
	}
	if !knownOptions[key] {
		return "", "", fmt.Errorf("%w: unknown option: %s", ErrUsage, key)
	}
	return key, strings.Trim(value, `"'`), nil
}

func IsOption(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, optionPrefix)
}
