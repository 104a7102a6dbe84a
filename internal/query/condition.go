package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations render a SQL fragment using PostgreSQL positional
// parameters starting at $argIndex and return the matching arguments.
type Condition interface {
	SQL(argIndex int) (string, []any)
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value any
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("p.parent_id", 3) generates "p.parent_id = $1"
func Eq(field string, value any) Condition {
	return &eqCondition{field: field, value: value}
}

func (c *eqCondition) SQL(argIndex int) (string, []any) {
	return fmt.Sprintf("%s = $%d", c.field, argIndex), []any{c.value}
}

// isFalseCondition renders "field = FALSE" without a parameter.
type isFalseCondition struct {
	field string
}

// IsFalse creates a condition that matches rows whose boolean field is false.
func IsFalse(field string) Condition {
	return &isFalseCondition{field: field}
}

func (c *isFalseCondition) SQL(int) (string, []any) {
	return c.field + " = FALSE", nil
}

// containsCondition is a case-insensitive substring match over one or more
// fields, combined with OR.
type containsCondition struct {
	fields []string
	value  string
}

// Contains creates a case-insensitive substring match. With several fields
// the matches are ORed: Contains("foo", "p.name", "p.description") generates
// "(p.name ILIKE $1 OR p.description ILIKE $2)". LIKE wildcards in value are
// matched literally.
func Contains(value string, fields ...string) Condition {
	return &containsCondition{fields: fields, value: value}
}

func (c *containsCondition) SQL(argIndex int) (string, []any) {
	pattern := "%" + escapeLike(c.value) + "%"
	parts := make([]string, 0, len(c.fields))
	args := make([]any, 0, len(c.fields))
	for i, f := range c.fields {
		parts = append(parts, fmt.Sprintf("%s ILIKE $%d", f, argIndex+i))
		args = append(args, pattern)
	}
	if len(parts) == 1 {
		return parts[0], args
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
