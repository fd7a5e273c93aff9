// Package lint implements the style-lint rule framework: rule
// registration, violation records, the autofix model, and the per-file
// driver that walks a CST once and feeds every registered rule.
package lint

import (
	"fmt"
	"strings"
)

// ParamDescriptor documents one configurable key a rule accepts via
// Configure, along with its default value.
type ParamDescriptor struct {
	Key     string
	Default string
	Desc    string
}

// Descriptor is a rule's static, immutable metadata: its registry name,
// documentation topic, human-readable description, and configurable
// parameters.
type Descriptor struct {
	Name   string
	Topic  string
	Desc   string
	Params []ParamDescriptor
}

// Param looks up a parameter descriptor by key.
func (d *Descriptor) Param(key string) (ParamDescriptor, bool) {
	for _, p := range d.Params {
		if p.Key == key {
			return p, true
		}
	}
	return ParamDescriptor{}, false
}

// RejectNonEmptyConfig is Configure's implementation for rules that take
// no parameters: anything but an empty (or all-whitespace) string is a
// ConfigError.
func RejectNonEmptyConfig(ruleName, config string) error {
	if strings.TrimSpace(config) != "" {
		return fmt.Errorf("%s: accepts no configuration, got %q", ruleName, config)
	}
	return nil
}
