// Package filter compiles boolean expressions and evaluates them against
// API documents. Expressions use the expr language and see every top-level
// field of a document as a variable, plus a set of date and string helpers.
//
// Example expressions:
//
//	typeName == "REPLICA_SET"
//	daysSince(parseDate(Str(lastPing))) > 7
//	contains(hostname, "shard")
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/thegreatco/pingme/opsmngr"
)

// CompilationError indicates a filter expression could not be compiled
type CompilationError struct {
	Expression string
	Reason     string
	Err        error
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

// Filter is a compiled expression that can be matched against documents.
// A compiled Filter is safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // document fields are not known ahead of time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{
		expression: expression,
		program:    program,
	}, nil
}

// Expression returns the original expression
func (f *Filter) Expression() string {
	return f.expression
}

// Match evaluates the filter against a single document. Documents that
// cause an evaluation error are treated as non-matching.
func (f *Filter) Match(doc opsmngr.Entity) bool {
	result, err := expr.Run(f.program, runtimeEnvironment(doc))
	if err != nil {
		return false
	}

	// Result is guaranteed to be bool due to AsBool() during compilation
	return result.(bool)
}

// Apply returns the subset of docs matching the filter
func (f *Filter) Apply(docs []opsmngr.Entity) []opsmngr.Entity {
	var matched []opsmngr.Entity
	for _, doc := range docs {
		if f.Match(doc) {
			matched = append(matched, doc)
		}
	}
	return matched
}

// helperFunctions creates the static helper environment used during compilation
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)

	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, err := time.Parse(time.RFC3339, dateStr)
		if err != nil {
			t, _ = time.Parse("2006-01-02", dateStr)
		}
		return t
	}
	env["now"] = time.Now

	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper

	// Str coerces any document field to a string, empty when absent
	env["Str"] = func(v any) string {
		if s, ok := v.(string); ok {
			return s
		}
		return ""
	}

	return env
}

// runtimeEnvironment builds the evaluation environment for one document.
// Top-level document fields become variables; the whole document is also
// reachable as Doc for fields that collide with helper names.
func runtimeEnvironment(doc opsmngr.Entity) map[string]any {
	env := helperFunctions()
	env["Doc"] = map[string]any(doc)
	for k, v := range doc {
		env[k] = v
	}
	return env
}
