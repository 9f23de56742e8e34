package storage

import (
	"strings"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	Identifier string
	Host       string
	Severity   string

	sortBy    string
	sortOrder string

	// expression the severity filter compares against, tables that keep
	// severity inside a json payload override the plain column default
	severityExpr string

	offset *int
	limit  *int
}

func WithIdentifier(identifier string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Identifier = identifier
		return c
	}
}

func WithHost(host string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Host = host
		return c
	}
}

func WithSeverity(severity string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Severity = severity
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortDesc(column string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = column
		c.sortOrder = "DESC"
		return c
	}
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.Identifier != "" {
		args["identifier"] = c.Identifier
	}
	if c.Host != "" {
		args["host"] = c.Host
	}
	if c.Severity != "" {
		args["severity"] = c.Severity
	}

	return args
}

func (c Condition) Where() string {
	w := []string{"1=1"}

	if c.Identifier != "" {
		w = append(w, "identifier = @identifier")
	}
	if c.Host != "" {
		w = append(w, "host = @host")
	}
	if c.Severity != "" {
		expr := c.severityExpr
		if expr == "" {
			expr = "severity"
		}
		w = append(w, expr+" = @severity")
	}

	return strings.Join(w, " AND ")
}

func (c Condition) Offset() int {
	if c.offset != nil {
		return *c.offset
	}
	return 0
}

func (c Condition) Limit() int {
	if c.limit != nil {
		return *c.limit
	}
	return 100
}

func (c Condition) SortBy() string {
	if c.sortBy == "" {
		return "received_at"
	}
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}
