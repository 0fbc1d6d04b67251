package calculator

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MaxInputLen is the maximum input length in runes that Evaluate accepts.
// Longer inputs fail with a LimitError before parsing.
const MaxInputLen = 1024

// normalizer rewrites the display tokens calculator UIs produce into the
// canonical grammar: Python-style ** exponentiation becomes ^, and % becomes
// division by 100. The × and ÷ glyphs need no rewriting; the lexer reads
// them directly. The % substitution is textual and unconditional, so the
// modulo operator is not reachable through Evaluate; use Parse for that.
var normalizer = strings.NewReplacer("**", "^", "%", "/100")

// Normalize rewrites the display tokens of raw calculator input into the
// grammar Parse accepts. Evaluate applies it automatically; callers that
// collect display glyphs and parse themselves apply it before Parse.
func Normalize(input string) string {
	return normalizer.Replace(input)
}

// Evaluate normalizes, parses, and evaluates one calculator input string
// against the default registry. Each call is independent: the input is
// parsed fresh and no state survives the call, so Evaluate is safe to call
// concurrently. On any failure the result is 0 with a non-nil error; there
// are no partial results.
func Evaluate(input string) (float64, error) {
	return Default().Evaluate(input)
}

// Evaluate normalizes, parses, and evaluates one calculator input string
// against r.
func (r *Registry) Evaluate(input string) (float64, error) {
	if n := utf8.RuneCountInString(input); n > MaxInputLen {
		return 0, &LimitError{Col: MaxInputLen + 1, What: "input length", Max: MaxInputLen}
	}
	a, err := Parse(strings.NewReader(Normalize(input)))
	if err != nil {
		return 0, err
	}
	return a.Eval(r)
}

// Eval evaluates the expression against a registry, operands before
// operators, arguments left to right. The expression itself is not modified,
// so one Expr may be evaluated concurrently.
func (e *Expr) Eval(r *Registry) (float64, error) {
	return e.n.eval(r)
}

// Eval is a shortcut to parse an expression from src and evaluate it against
// the default registry. Unlike Evaluate, no display-token normalization is
// applied, so % is the modulo operator.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(Default())
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// eval computes the node's value.
func (n *node) eval(r *Registry) (float64, error) {
	switch n.kind {
	case nodeNum:
		v, err := strconv.ParseFloat(n.name, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			// The lexer accepted the literal, so out of range is the only
			// error ParseFloat can report, and it still yields ±inf.
			panic("calculator: invalid number: " + n.name + " (" + err.Error() + ")")
		}
		return v, nil
	case nodeName:
		if v, ok := r.Const(n.name); ok {
			return v, nil
		}
		if _, ok := r.Func(n.name); ok {
			// A bare function name is not a value.
			return 0, &CallError{Func: n.name, Len: 0}
		}
		return 0, &NameError{Name: n.name}
	case nodeCall:
		fn, ok := r.Func(n.name)
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		nargs := 0
		for l := n.right; l != nil; l = l.right {
			nargs++
		}
		if !fn.CanCall(nargs) {
			return 0, &CallError{Func: n.name, Len: nargs}
		}
		args := make([]float64, 0, nargs)
		for l := n.right; l != nil; l = l.right {
			v, err := l.left.eval(r)
			if err != nil {
				return 0, err
			}
			args = append(args, v)
		}
		return fn.Call(args)
	case nodeArg:
		panic("calculator: eval on nodeArg")
	case nodeNeg:
		v, err := n.left.eval(r)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeNop:
		return n.left.eval(r)
	case nodeAdd:
		l, rv, err := n.operands(r)
		if err != nil {
			return 0, err
		}
		return opfinite("+", l, rv, l+rv)
	case nodeSub:
		l, rv, err := n.operands(r)
		if err != nil {
			return 0, err
		}
		return opfinite("-", l, rv, l-rv)
	case nodeMul:
		l, rv, err := n.operands(r)
		if err != nil {
			return 0, err
		}
		return opfinite("*", l, rv, l*rv)
	case nodeDiv:
		l, rv, err := n.operands(r)
		if err != nil {
			return 0, err
		}
		if rv == 0 {
			return 0, &DomainError{X: rv, Func: "/"}
		}
		return opfinite("/", l, rv, l/rv)
	case nodeMod:
		l, rv, err := n.operands(r)
		if err != nil {
			return 0, err
		}
		if rv == 0 {
			return 0, &DomainError{X: rv, Func: "%"}
		}
		return opfinite("%", l, rv, math.Mod(l, rv))
	case nodePow:
		l, rv, err := n.operands(r)
		if err != nil {
			return 0, err
		}
		// math.Pow reports a negative base with a fractional exponent as
		// NaN and 0 with a negative exponent as infinity; both become
		// domain errors here.
		return opfinite("^", l, rv, math.Pow(l, rv))
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
}

// operands evaluates both children of a binary node.
func (n *node) operands(r *Registry) (l, rv float64, err error) {
	l, err = n.left.eval(r)
	if err != nil {
		return 0, 0, err
	}
	rv, err = n.right.eval(r)
	if err != nil {
		return 0, 0, err
	}
	return l, rv, nil
}

// opfinite reports NaN or infinite results of an operator on finite operands
// as domain errors, so arithmetic never silently displays inf or NaN.
func opfinite(op string, x, y, r float64) (float64, error) {
	if math.IsNaN(r) && !math.IsNaN(x) && !math.IsNaN(y) ||
		math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return 0, &DomainError{X: x, Func: op}
	}
	return r, nil
}
