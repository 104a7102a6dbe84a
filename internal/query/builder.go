// Package query builds parameterized PostgreSQL SELECT statements.
// Builders are immutable: every method returns a copy, so a base query can
// be shared between a paged fetch and its count without either affecting
// the other.
package query

import (
	"fmt"
	"strings"
)

// Direction represents ORDER BY direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Statement is a rendered query ready for database/sql.
type Statement struct {
	SQL  string
	Args []any
}

// Builder constructs SQL SELECT queries for PostgreSQL.
// It provides a fluent API for building queries with JOINs, WHERE clauses,
// ORDER BY, LIMIT, and OFFSET. Positional parameters ($1, $2, ...) are
// numbered at Build time.
type Builder struct {
	table        string
	selectCols   []string
	joins        []string
	whereClauses []Condition
	orderByCol   string
	orderByDir   Direction
	limitVal     int64
	offsetVal    int64
}

// From creates a new Builder for the specified table (with optional alias,
// e.g. "products p").
func From(table string) *Builder {
	return &Builder{table: table}
}

// Select specifies the columns to retrieve.
func (b *Builder) Select(columns ...string) *Builder {
	nb := b.clone()
	nb.selectCols = append(nb.selectCols, columns...)
	return nb
}

// Join adds an INNER JOIN clause, e.g. Join("parent_categories pc ON pc.id = p.parent_id").
func (b *Builder) Join(clause string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, "JOIN "+clause)
	return nb
}

// LeftJoin adds a LEFT JOIN clause.
func (b *Builder) LeftJoin(clause string) *Builder {
	nb := b.clone()
	nb.joins = append(nb.joins, "LEFT JOIN "+clause)
	return nb
}

// Where adds a WHERE condition.
// Multiple calls are combined with AND logic.
func (b *Builder) Where(condition Condition) *Builder {
	nb := b.clone()
	nb.whereClauses = append(nb.whereClauses, condition)
	return nb
}

// OrderBy specifies the column and direction for sorting.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	nb := b.clone()
	nb.orderByCol = column
	nb.orderByDir = direction
	return nb
}

// Limit sets the maximum number of rows to return.
func (b *Builder) Limit(limit int64) *Builder {
	nb := b.clone()
	nb.limitVal = limit
	return nb
}

// Offset sets the number of rows to skip.
func (b *Builder) Offset(offset int64) *Builder {
	nb := b.clone()
	nb.offsetVal = offset
	return nb
}

// Count returns a new builder that generates a COUNT(*) query
// with the same FROM, JOIN and WHERE clauses and no ordering or paging.
func (b *Builder) Count() *Builder {
	nb := b.clone()
	nb.selectCols = []string{"COUNT(*)"}
	nb.limitVal = 0
	nb.offsetVal = 0
	nb.orderByCol = ""
	return nb
}

// Build renders the SQL text and its positional arguments.
func (b *Builder) Build() Statement {
	var sql strings.Builder
	var args []any

	sql.WriteString("SELECT ")
	if len(b.selectCols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.selectCols, ", "))
	}

	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for _, j := range b.joins {
		sql.WriteString(" ")
		sql.WriteString(j)
	}

	if len(b.whereClauses) > 0 {
		sql.WriteString(" WHERE ")
		parts := make([]string, 0, len(b.whereClauses))
		for _, condition := range b.whereClauses {
			fragment, condArgs := condition.SQL(len(args) + 1)
			parts = append(parts, fragment)
			args = append(args, condArgs...)
		}
		sql.WriteString(strings.Join(parts, " AND "))
	}

	if b.orderByCol != "" {
		sql.WriteString(" ORDER BY ")
		sql.WriteString(b.orderByCol)
		if b.orderByDir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limitVal > 0 {
		args = append(args, b.limitVal)
		fmt.Fprintf(&sql, " LIMIT $%d", len(args))
	}

	if b.offsetVal > 0 {
		args = append(args, b.offsetVal)
		fmt.Fprintf(&sql, " OFFSET $%d", len(args))
	}

	return Statement{SQL: sql.String(), Args: args}
}

// clone creates a copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	nb := &Builder{
		table:        b.table,
		selectCols:   make([]string, len(b.selectCols)),
		joins:        make([]string, len(b.joins)),
		whereClauses: make([]Condition, len(b.whereClauses)),
		orderByCol:   b.orderByCol,
		orderByDir:   b.orderByDir,
		limitVal:     b.limitVal,
		offsetVal:    b.offsetVal,
	}
	copy(nb.selectCols, b.selectCols)
	copy(nb.joins, b.joins)
	copy(nb.whereClauses, b.whereClauses)
	return nb
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	stmt := b.Build()
	return fmt.Sprintf("SQL: %s\nArgs: %v", stmt.SQL, stmt.Args)
}
