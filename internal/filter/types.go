// Package filter provides filter expression parsing and matching.
package filter

import (
	"github.com/ivoronin/mobilevet/internal/platform"
	"github.com/ivoronin/mobilevet/internal/version"
)

// Operator for version comparison.
type Operator string

const (
	OpEqual        Operator = "="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
)

// Constraint represents a single filter constraint.
type Constraint struct {
	Platform platform.Platform
	Operator Operator
	Version  *version.Value // nil means "match any version" (bare platform)
}

// Filter represents a parsed filter expression.
type Filter struct {
	Constraints []Constraint
}
