// Package config holds rule options and the .unusedexpr.yaml file format.
package config

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyArguments is returned when more than one positional option
	// argument is supplied.
	ErrTooManyArguments = errors.New("expected at most one options argument")

	// ErrInvalidOption is returned when an options argument is not a mapping
	// or a recognized key holds a non-boolean value.
	ErrInvalidOption = errors.New("invalid option")
)

// Options are the rule's leniency switches. The zero value is the default:
// every switch off.
type Options struct {
	// AllowShortCircuit accepts a logical expression whose right operand is
	// itself acceptable, e.g. a && b().
	AllowShortCircuit bool `yaml:"allowShortCircuit" json:"allowShortCircuit"`

	// AllowTernary accepts a conditional expression whose branches are both
	// acceptable, e.g. a ? b() : c().
	AllowTernary bool `yaml:"allowTernary" json:"allowTernary"`

	// AllowTaggedTemplates accepts any tagged template, e.g. tag`x`.
	AllowTaggedTemplates bool `yaml:"allowTaggedTemplates" json:"allowTaggedTemplates"`
}

// Option keys as they appear in rule configuration.
const (
	KeyAllowShortCircuit    = "allowShortCircuit"
	KeyAllowTernary         = "allowTernary"
	KeyAllowTaggedTemplates = "allowTaggedTemplates"
)

// FromArgs builds Options from positional rule arguments, as a host
// framework would pass them. At most one argument is accepted:
//
//   - none, or nil: defaults
//   - map[string]any: the recognized keys are read, others are ignored
//   - Options or *Options: used as is
func FromArgs(args ...any) (Options, error) {
	var opts Options

	if len(args) > 1 {
		return opts, fmt.Errorf("got %d: %w", len(args), ErrTooManyArguments)
	}
	if len(args) == 0 {
		return opts, nil
	}

	switch arg := args[0].(type) {
	case nil:
		return opts, nil
	case Options:
		return arg, nil
	case *Options:
		if arg == nil {
			return opts, nil
		}
		return *arg, nil
	case map[string]any:
		return fromMap(arg)
	default:
		return opts, fmt.Errorf("options argument is %T, want a mapping: %w", arg, ErrInvalidOption)
	}
}

func fromMap(m map[string]any) (Options, error) {
	var opts Options

	fields := []struct {
		key string
		dst *bool
	}{
		{KeyAllowShortCircuit, &opts.AllowShortCircuit},
		{KeyAllowTernary, &opts.AllowTernary},
		{KeyAllowTaggedTemplates, &opts.AllowTaggedTemplates},
	}

	for _, f := range fields {
		v, ok := m[f.key]
		if !ok || v == nil {
			continue
		}
		b, ok := v.(bool)
		if !ok {
			return Options{}, fmt.Errorf("%s is %T, want bool: %w", f.key, v, ErrInvalidOption)
		}
		*f.dst = b
	}

	return opts, nil
}
