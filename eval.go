package gocalc

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("integer overflow")
	ErrInvalidExpr    = errors.New("invalid expression")
)

// EvalError is a runtime failure while evaluating the node of type Op.
type EvalError struct {
	Op  ExprType
	Err error
}

func (e *EvalError) Error() string {
	return e.Err.Error()
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

type Fn func(lhs, rhs uint32, checked bool) (uint32, error)

var ops map[ExprType]Fn

func init() {
	ops = make(map[ExprType]Fn)
	ops[ExprAdd] = doAdd
	ops[ExprSub] = doSub
	ops[ExprMul] = doMul
	ops[ExprDiv] = doDiv
}

func doAdd(lhs, rhs uint32, checked bool) (uint32, error) {
	v := lhs + rhs
	if checked && v < lhs {
		return 0, ErrOverflow
	}
	return v, nil
}

func doSub(lhs, rhs uint32, checked bool) (uint32, error) {
	if checked && rhs > lhs {
		return 0, ErrOverflow
	}
	return lhs - rhs, nil
}

func doMul(lhs, rhs uint32, checked bool) (uint32, error) {
	if checked && uint64(lhs)*uint64(rhs) > math.MaxUint32 {
		return 0, ErrOverflow
	}
	return lhs * rhs, nil
}

func doDiv(lhs, rhs uint32, _ bool) (uint32, error) {
	if rhs == 0 {
		return 0, ErrDivisionByZero
	}
	return lhs / rhs, nil
}

// Evaluator reduces expression trees to values. The zero value wraps on
// overflow like uint32 arithmetic; Checked turns overflow into ErrOverflow.
type Evaluator struct {
	Checked bool
}

func apply(fn Fn, lhs, rhs Value, checked bool) (Value, error) {
	switch l := lhs.(type) {
	case Number:
		switch r := rhs.(type) {
		case Number:
			v, err := fn(uint32(l), uint32(r), checked)
			if err != nil {
				return nil, err
			}
			return Number(v), nil
		default:
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, rhs)
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, lhs)
	}
}

// Evaluate walks expr in post-order with an explicit stack, so the depth of
// the tree is not limited by the goroutine stack. Left operands are
// evaluated before right operands.
func (ev *Evaluator) Evaluate(expr *Expr) (Value, error) {
	type frame struct {
		e      *Expr
		reduce bool
	}

	work := []frame{{e: expr}}
	var vals []Value
	for len(work) > 0 {
		f := work[len(work)-1]
		work = work[:len(work)-1]

		e := f.e
		if e == nil {
			return nil, &EvalError{Err: ErrInvalidExpr}
		}
		if e.Type == ExprNumber {
			vals = append(vals, Number(e.Value))
			continue
		}
		fn, ok := ops[e.Type]
		if !ok {
			return nil, &EvalError{Op: e.Type, Err: ErrInvalidExpr}
		}
		if !f.reduce {
			work = append(work, frame{e: e, reduce: true}, frame{e: e.Right}, frame{e: e.Left})
			continue
		}

		rhs := vals[len(vals)-1]
		lhs := vals[len(vals)-2]
		vals = vals[:len(vals)-2]
		v, err := apply(fn, lhs, rhs, ev.Checked)
		if err != nil {
			return nil, &EvalError{Op: e.Type, Err: err}
		}
		vals = append(vals, v)
	}
	return vals[0], nil
}

// Evaluate evaluates expr with wrapping arithmetic.
func Evaluate(expr *Expr) (Value, error) {
	var ev Evaluator
	return ev.Evaluate(expr)
}
