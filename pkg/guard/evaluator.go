// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package guard

import (
	"fmt"
	"math/big"

	"carvel.dev/vurf/pkg/filepos"
	"carvel.dev/vurf/pkg/spell"
	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"
)

// Evaluator evaluates guards against a fixed set of parameters.
// It is not safe for concurrent use.
type Evaluator struct {
	params Parameters
	host   Host
	parsed map[string]syntax.Expr
}

// NewEvaluator returns an evaluator; a nil host means OSHost.
func NewEvaluator(params Parameters, host Host) *Evaluator {
	if host == nil {
		host = OSHost{}
	}
	return &Evaluator{params: params, host: host, parsed: map[string]syntax.Expr{}}
}

// Eval reports whether the guard holds.
func (e *Evaluator) Eval(guard string, pos *filepos.Position) (bool, error) {
	expr, found := e.parsed[guard]
	if !found {
		var err error
		expr, err = parse(guard)
		if err != nil {
			return false, &EvaluationError{Guard: guard, Position: pos, Msg: "Parsing", Err: err}
		}
		e.parsed[guard] = expr
	}

	val, err := e.eval(expr)
	if err != nil {
		return false, &EvaluationError{Guard: guard, Position: pos, Msg: "Evaluating", Err: err}
	}

	result, ok := val.(starlark.Bool)
	if !ok {
		return false, &EvaluationError{Guard: guard, Position: pos,
			Msg: fmt.Sprintf("Expected guard to evaluate to a bool, but was %s", val.Type())}
	}
	return bool(result), nil
}

// Check parses the guard and verifies it only uses supported syntax.
func Check(guard string, pos *filepos.Position) error {
	expr, err := parse(guard)
	if err != nil {
		return &EvaluationError{Guard: guard, Position: pos, Msg: "Parsing", Err: err}
	}
	err = check(expr)
	if err != nil {
		return &EvaluationError{Guard: guard, Position: pos, Msg: "Checking", Err: err}
	}
	return nil
}

func parse(guard string) (syntax.Expr, error) {
	return syntax.ParseExpr("guard", guard, 0)
}

func (e *Evaluator) eval(expr syntax.Expr) (starlark.Value, error) {
	switch typedExpr := expr.(type) {
	case *syntax.Ident:
		switch typedExpr.Name {
		case "True":
			return starlark.True, nil
		case "False":
			return starlark.False, nil
		}
		val, found := e.params[typedExpr.Name]
		if !found {
			return nil, fmt.Errorf("Undefined parameter '%s'%s (use defined('%s') to check for it)",
				typedExpr.Name, spell.Hint(typedExpr.Name, e.params.Names()), typedExpr.Name)
		}
		return NewGoValue(val).AsStarlarkValue()

	case *syntax.Literal:
		return literalValue(typedExpr)

	case *syntax.ParenExpr:
		return e.eval(typedExpr.X)

	case *syntax.UnaryExpr:
		x, err := e.eval(typedExpr.X)
		if err != nil {
			return nil, err
		}
		return unary(typedExpr.Op, x)

	case *syntax.BinaryExpr:
		return e.binary(typedExpr)

	case *syntax.CallExpr:
		return e.call(typedExpr)

	default:
		return nil, unsupportedErr(expr)
	}
}

func (e *Evaluator) binary(expr *syntax.BinaryExpr) (starlark.Value, error) {
	x, err := e.eval(expr.X)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case syntax.AND, syntax.OR:
		xTruth := bool(x.Truth())
		if (expr.Op == syntax.AND && !xTruth) || (expr.Op == syntax.OR && xTruth) {
			return starlark.Bool(xTruth), nil
		}
		y, err := e.eval(expr.Y)
		if err != nil {
			return nil, err
		}
		return y.Truth(), nil
	}

	y, err := e.eval(expr.Y)
	if err != nil {
		return nil, err
	}

	switch expr.Op {
	case syntax.EQL, syntax.NEQ, syntax.LT, syntax.LE, syntax.GT, syntax.GE:
		result, err := starlark.Compare(expr.Op, x, y)
		if err != nil {
			return nil, err
		}
		return starlark.Bool(result), nil

	case syntax.IN, syntax.NOT_IN:
		return starlark.Binary(expr.Op, x, y)

	default:
		return nil, fmt.Errorf("Unsupported operator '%s'", expr.Op)
	}
}

func (e *Evaluator) call(expr *syntax.CallExpr) (starlark.Value, error) {
	fn, err := helperOf(expr)
	if err != nil {
		return nil, err
	}

	var args starlark.Tuple
	var kwargs []starlark.Tuple

	for _, arg := range expr.Args {
		if kwarg, ok := arg.(*syntax.BinaryExpr); ok && kwarg.Op == syntax.EQ {
			name, ok := kwarg.X.(*syntax.Ident)
			if !ok {
				return nil, fmt.Errorf("Expected keyword argument name to be an identifier")
			}
			val, err := e.eval(kwarg.Y)
			if err != nil {
				return nil, err
			}
			kwargs = append(kwargs, starlark.Tuple{starlark.String(name.Name), val})
			continue
		}

		if len(kwargs) > 0 {
			return nil, fmt.Errorf("Positional argument follows keyword argument")
		}
		val, err := e.eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}

	return fn(e, args, kwargs)
}

func unary(op syntax.Token, x starlark.Value) (starlark.Value, error) {
	switch op {
	case syntax.NOT:
		return !x.Truth(), nil

	case syntax.MINUS:
		switch x.(type) {
		case starlark.Int:
			return starlark.Binary(syntax.MINUS, starlark.MakeInt(0), x)
		case starlark.Float:
			return starlark.Binary(syntax.MINUS, starlark.Float(0), x)
		}
		return nil, fmt.Errorf("Unary '-' expects a number, but was %s", x.Type())

	case syntax.PLUS:
		switch x.(type) {
		case starlark.Int, starlark.Float:
			return x, nil
		}
		return nil, fmt.Errorf("Unary '+' expects a number, but was %s", x.Type())

	default:
		return nil, fmt.Errorf("Unsupported operator '%s'", op)
	}
}

func literalValue(lit *syntax.Literal) (starlark.Value, error) {
	switch typedVal := lit.Value.(type) {
	case string:
		return starlark.String(typedVal), nil
	case int64:
		return starlark.MakeInt64(typedVal), nil
	case *big.Int:
		return starlark.MakeBigInt(typedVal), nil
	case float64:
		return starlark.Float(typedVal), nil
	default:
		return nil, fmt.Errorf("Unsupported literal %s", lit.Raw)
	}
}

// check mirrors eval without looking up values.
func check(expr syntax.Expr) error {
	switch typedExpr := expr.(type) {
	case *syntax.Ident, *syntax.Literal:
		return nil

	case *syntax.ParenExpr:
		return check(typedExpr.X)

	case *syntax.UnaryExpr:
		switch typedExpr.Op {
		case syntax.NOT, syntax.MINUS, syntax.PLUS:
			return check(typedExpr.X)
		}
		return fmt.Errorf("Unsupported operator '%s'", typedExpr.Op)

	case *syntax.BinaryExpr:
		switch typedExpr.Op {
		case syntax.AND, syntax.OR, syntax.EQL, syntax.NEQ, syntax.LT, syntax.LE,
			syntax.GT, syntax.GE, syntax.IN, syntax.NOT_IN:
		default:
			return fmt.Errorf("Unsupported operator '%s'", typedExpr.Op)
		}
		err := check(typedExpr.X)
		if err != nil {
			return err
		}
		return check(typedExpr.Y)

	case *syntax.CallExpr:
		_, err := helperOf(typedExpr)
		if err != nil {
			return err
		}
		for _, arg := range typedExpr.Args {
			if kwarg, ok := arg.(*syntax.BinaryExpr); ok && kwarg.Op == syntax.EQ {
				arg = kwarg.Y
			}
			err := check(arg)
			if err != nil {
				return err
			}
		}
		return nil

	default:
		return unsupportedErr(expr)
	}
}

func unsupportedErr(expr syntax.Expr) error {
	start, _ := expr.Span()
	return fmt.Errorf("Unsupported expression (%T) at col %d", expr, start.Col)
}
