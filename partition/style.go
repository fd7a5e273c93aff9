// Package partition implements the token-partition tree: the formatter's
// input to the layout optimiser. A tree unwrapper
// external to this module produces a
// TokenPartitionTree from a CST and spacing annotations; this package
// owns the tree's shape and the FormatStyle the optimiser consults.
package partition

import "gopkg.in/yaml.v3"

// FormatStyle is the flat configuration record the layout optimiser
// reads. It holds only the column limit, indentation, wrap and penalty
// settings; it has no per-list-kind alignment policy fields.
type FormatStyle struct {
	ColumnLimit            int     `yaml:"column_limit"`
	IndentationSpaces      int     `yaml:"indentation_spaces"`
	WrapSpaces             int     `yaml:"wrap_spaces"`
	LineBreakPenalty       float32 `yaml:"line_break_penalty"`
	OverColumnLimitPenalty float32 `yaml:"over_column_limit_penalty"`
}

// DefaultFormatStyle returns commonly-used defaults: a 100-column
// limit, two-space indentation, four-space wrapping, and a steep overflow
// penalty so the optimiser strongly prefers staying within the limit.
func DefaultFormatStyle() FormatStyle {
	return FormatStyle{
		ColumnLimit:            100,
		IndentationSpaces:      2,
		WrapSpaces:             4,
		LineBreakPenalty:       2,
		OverColumnLimitPenalty: 100,
	}
}

// LoadFormatStyle parses a YAML document into a FormatStyle starting
// from DefaultFormatStyle, so a config file only needs to mention the
// fields it overrides.
func LoadFormatStyle(doc []byte) (FormatStyle, error) {
	style := DefaultFormatStyle()
	if err := yaml.Unmarshal(doc, &style); err != nil {
		return FormatStyle{}, err
	}
	return style, nil
}
