package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// Kind selects the entity list an expression applies to.
type Kind string

const (
	KindGroup       Kind = "groups"
	KindCategory    Kind = "categories"
	KindEnvironment Kind = "environments"
)

// ErrInvalidQuery indicates an unknown kind or an expression that does not
// compile to a boolean.
var ErrInvalidQuery = errors.New("invalid query")

// ParseKind accepts singular and plural kind names.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "group", "groups":
		return KindGroup, nil
	case "category", "categories":
		return KindCategory, nil
	case "environment", "environments", "env", "envs":
		return KindEnvironment, nil
	default:
		return "", fmt.Errorf("%w: unknown kind %q (want groups, categories or environments)", ErrInvalidQuery, name)
	}
}

// Filter is a compiled predicate over one entity kind.
// A Filter with an empty expression matches everything.
type Filter struct {
	kind       Kind
	expression string
	program    *vm.Program
}

// Compile type checks expression against the fields of kind.
func Compile(kind Kind, expression string) (*Filter, error) {
	env, err := prototype(kind)
	if err != nil {
		return nil, err
	}

	f := &Filter{kind: kind, expression: strings.TrimSpace(expression)}
	if f.expression == "" {
		return f, nil
	}

	program, err := expr.Compile(f.expression, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidQuery, f.expression, err)
	}
	f.program = program
	return f, nil
}

// Kind returns the entity kind the filter was compiled for.
func (f *Filter) Kind() Kind { return f.kind }

// Match evaluates the filter against an environment built by GroupEnv,
// CategoryEnv or EnvironmentEnv.
func (f *Filter) Match(env map[string]any) (bool, error) {
	if f.program == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate %q: %w", f.expression, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

func (f *Filter) expect(kind Kind) error {
	if f.kind != kind {
		return fmt.Errorf("%w: filter compiled for %s applied to %s", ErrInvalidQuery, f.kind, kind)
	}
	return nil
}

// Groups returns the groups of list matching f, in order.
func (f *Filter) Groups(list *comps.GroupList) ([]*comps.Group, error) {
	if err := f.expect(KindGroup); err != nil {
		return nil, err
	}
	return filter(f, list.Items(), GroupEnv)
}

// Categories returns the categories of list matching f, in order.
func (f *Filter) Categories(list *comps.CategoryList) ([]*comps.Category, error) {
	if err := f.expect(KindCategory); err != nil {
		return nil, err
	}
	return filter(f, list.Items(), CategoryEnv)
}

// Environments returns the environments of list matching f, in order.
func (f *Filter) Environments(list *comps.EnvironmentList) ([]*comps.Environment, error) {
	if err := f.expect(KindEnvironment); err != nil {
		return nil, err
	}
	return filter(f, list.Items(), EnvironmentEnv)
}

func filter[T any](f *Filter, items []T, env func(T) map[string]any) ([]T, error) {
	var out []T
	for _, item := range items {
		ok, err := f.Match(env(item))
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}
