package db

import (
	"fmt"
	"strings"
)

// whereBuilder accumulates AND-ed predicates with numbered placeholders
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

// arg binds v and returns its placeholder
func (w *whereBuilder) arg(v interface{}) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

func (w *whereBuilder) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// containsPattern builds an ILIKE pattern matching s as a literal substring
func containsPattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// setBuilder accumulates assignments for a dynamic UPDATE
type setBuilder struct {
	assignments []string
	args        []interface{}
}

func (b *setBuilder) arg(v interface{}) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *setBuilder) set(column string, v interface{}) {
	b.assignments = append(b.assignments, fmt.Sprintf("%s = %s", column, b.arg(v)))
}

func (b *setBuilder) setExpr(column, expr string) {
	b.assignments = append(b.assignments, fmt.Sprintf("%s = %s", column, expr))
}

func (b *setBuilder) String() string {
	return strings.Join(b.assignments, ", ")
}
