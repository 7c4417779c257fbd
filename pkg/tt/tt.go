// Package tt supports table-driven tests with little boilerplate.
//
// See the test case for this package for example usage.
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by the Args function,
// and offers setters that augment and return itself; those calls can
// be chained like Args(...).Rets(...).
type Case struct {
	args     []any
	wantRets []any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values
// to match the given values, and returns the receiver. An argument
// may implement the Matcher interface, in which case its Match method
// decides whether the corresponding return value matches; any other
// value is compared with go-cmp, treating empty and nil slices and
// maps as equal.
func (c *Case) Rets(rets ...any) *Case {
	c.wantRets = rets
	return c
}

// FnDescriptor describes a function to test.
type FnDescriptor struct {
	name string
	body any
}

// Fn makes a new FnDescriptor with the given function name and body.
func Fn(name string, body any) *FnDescriptor {
	return &FnDescriptor{name, body}
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnDescriptor, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		if !match(test.wantRets, rets) {
			t.Errorf("%s(%s) returns (-Wanted +Actual):\n%s",
				fn.name, sprintArgs(test.args),
				cmp.Diff(test.wantRets, rets, cmpOpts...))
		}
	}
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The
	// argument is of type RetValue so that it cannot be implemented
	// accidentally.
	Match(RetValue) bool
}

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

var cmpOpts = []cmp.Option{cmpopts.EquateEmpty()}

func match(wants, actuals []any) bool {
	if len(wants) != len(actuals) {
		return false
	}
	for i, want := range wants {
		if m, ok := want.(Matcher); ok {
			if !m.Match(actuals[i]) {
				return false
			}
		} else if !cmp.Equal(want, actuals[i], cmpOpts...) {
			return false
		}
	}
	return true
}

func sprintArgs(args []any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) returns a zero Value; work around
			// this by taking the ValueOf a pointer to nil and then
			// getting the Elem.
			var v any
			argsReflect[i] = reflect.ValueOf(&v).Elem()
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
