package calculator

import (
	"math"
)

// Func is a function from reals to reals. Call receives the evaluated
// arguments in order; invalid arguments are reported as errors, never as
// NaN or infinity results.
type Func interface {
	// Call evaluates the function. len(args) is a length for which CanCall
	// returned true.
	Call(args []float64) (float64, error)

	// CanCall reports whether the function can be called with n arguments.
	CanCall(n int) bool
}

// Registry is the closed namespace of names an expression may reference: a
// fixed mapping from identifiers to constants and functions. It is immutable
// after construction and therefore safe for concurrent use. Lookup is by
// exact, case-sensitive match.
type Registry struct {
	consts map[string]float64
	funcs  map[string]Func
}

// NewRegistry builds a registry from explicit tables. The maps are copied, so
// later changes to them do not affect the registry. A name may not appear in
// both tables.
func NewRegistry(consts map[string]float64, funcs map[string]Func) *Registry {
	r := Registry{
		consts: make(map[string]float64, len(consts)),
		funcs:  make(map[string]Func, len(funcs)),
	}
	for k, v := range consts {
		r.consts[k] = v
	}
	for k, v := range funcs {
		if _, ok := r.consts[k]; ok {
			panic("calculator: name bound to both a constant and a function: " + k)
		}
		r.funcs[k] = v
	}
	return &r
}

// Default returns the default registry: the constants and real-valued
// functions of package math, the degree-argument trig overrides, and the
// generic numeric utilities. The same registry is returned to every caller;
// it is never mutated.
func Default() *Registry {
	return &defaultRegistry
}

var defaultRegistry = Registry{consts: globalconsts, funcs: globalfuncs}

// Const returns the value of a constant.
func (r *Registry) Const(name string) (float64, bool) {
	v, ok := r.consts[name]
	return v, ok
}

// Func returns a named function.
func (r *Registry) Func(name string) (Func, bool) {
	f, ok := r.funcs[name]
	return f, ok
}

// Names returns the sorted list of all names in the registry.
func (r *Registry) Names() []string {
	v := make([]string, 0, len(r.consts)+len(r.funcs))
	for k := range r.consts {
		v = append(v, k)
	}
	for k := range r.funcs {
		v = append(v, k)
	}
	sortstrs(v)
	return v
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

var globalconsts = map[string]float64{
	"pi":  math.Pi,
	"e":   math.E,
	"tau": 2 * math.Pi,
	"phi": math.Phi,
	"inf": math.Inf(1),
	"nan": math.NaN(),
}

var globalfuncs = map[string]Func{
	"sqrt":   Monadic("sqrt", math.Sqrt),
	"cbrt":   Monadic("cbrt", math.Cbrt),
	"exp":    Monadic("exp", math.Exp),
	"exp2":   Monadic("exp2", math.Exp2),
	"expm1":  Monadic("expm1", math.Expm1),
	"ln":     Monadic("ln", math.Log),
	"log":    logfn{},
	"log10":  Monadic("log10", math.Log10),
	"log2":   Monadic("log2", math.Log2),
	"log1p":  Monadic("log1p", math.Log1p),
	"floor":  Monadic("floor", math.Floor),
	"ceil":   Monadic("ceil", math.Ceil),
	"trunc":  Monadic("trunc", math.Trunc),
	"round":  Monadic("round", math.Round),
	"abs":    Monadic("abs", math.Abs),
	"sign":   Monadic("sign", sign),
	"gamma":  Monadic("gamma", math.Gamma),
	"erf":    Monadic("erf", math.Erf),
	"erfc":   Monadic("erfc", math.Erfc),
	"asin":   Monadic("asin", math.Asin),
	"acos":   Monadic("acos", math.Acos),
	"atan":   Monadic("atan", math.Atan),
	"sinh":   Monadic("sinh", math.Sinh),
	"cosh":   Monadic("cosh", math.Cosh),
	"tanh":   Monadic("tanh", math.Tanh),
	"asinh":  Monadic("asinh", math.Asinh),
	"acosh":  Monadic("acosh", math.Acosh),
	"atanh":  Monadic("atanh", math.Atanh),

	// Trig takes its argument in degrees, with results snapped to exactly
	// zero where the exact value is zero. sin(180) is 0, not 1.2e-16.
	"sin": Monadic("sin", sinDeg),
	"cos": Monadic("cos", cosDeg),
	"tan": Monadic("tan", tanDeg),

	"degrees":   Monadic("degrees", degrees),
	"radians":   Monadic("radians", radians),
	"factorial": Monadic("factorial", factorial),

	"pow":      Dyadic("pow", math.Pow),
	"atan2":    Dyadic("atan2", math.Atan2),
	"hypot":    Dyadic("hypot", math.Hypot),
	"fmod":     Dyadic("fmod", math.Mod),
	"copysign": Dyadic("copysign", math.Copysign),
	"min":      Dyadic("min", math.Min),
	"max":      Dyadic("max", math.Max),
}

// zeroEps is the magnitude below which degree-trig results snap to zero,
// suppressing floating-point noise such as sin(180) = 1.2e-16.
const zeroEps = 1e-10

func roundSmall(v float64) float64 {
	if math.Abs(v) < zeroEps {
		return 0
	}
	return v
}

func sinDeg(x float64) float64 { return roundSmall(math.Sin(x * math.Pi / 180)) }
func cosDeg(x float64) float64 { return roundSmall(math.Cos(x * math.Pi / 180)) }
func tanDeg(x float64) float64 { return roundSmall(math.Tan(x * math.Pi / 180)) }

func degrees(x float64) float64 { return x * 180 / math.Pi }
func radians(x float64) float64 { return x * math.Pi / 180 }

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return x
	}
}

// factorial is defined on nonnegative integers only; NaN for anything else
// surfaces as a domain error through the finiteness guard.
func factorial(x float64) float64 {
	if x < 0 || x != math.Trunc(x) {
		return math.NaN()
	}
	return math.Gamma(x + 1)
}

// finite reports non-finite results computed from a finite argument as
// domain errors. An infinity that was already among the arguments passes
// through, so exp(inf) is inf rather than an error.
func finite(name string, x, r float64) (float64, error) {
	if math.IsNaN(r) && !math.IsNaN(x) || math.IsInf(r, 0) && !math.IsInf(x, 0) {
		return 0, &DomainError{X: x, Func: name}
	}
	return r, nil
}

type monadic struct {
	name string
	f    func(float64) float64
}

func (m monadic) Call(args []float64) (float64, error) {
	return finite(m.name, args[0], m.f(args[0]))
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// Monadic wraps a function of one variable into a Func. A NaN or infinite
// result from a finite argument is reported as a DomainError under name.
func Monadic(name string, f func(float64) float64) Func {
	return monadic{name, f}
}

type dyadic struct {
	name string
	f    func(x, y float64) float64
}

func (d dyadic) Call(args []float64) (float64, error) {
	x, y := args[0], args[1]
	r := d.f(x, y)
	if math.IsNaN(r) && !math.IsNaN(x) && !math.IsNaN(y) ||
		math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return 0, &DomainError{X: x, Func: d.name}
	}
	return r, nil
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// Dyadic wraps a function of two variables into a Func, with the same
// domain-error behavior as Monadic.
func Dyadic(name string, f func(x, y float64) float64) Func {
	return dyadic{name, f}
}

// logfn is the natural logarithm, callable with an explicit base as the
// second argument: log(8, 2) is 3.
type logfn struct{}

func (logfn) Call(args []float64) (float64, error) {
	r := math.Log(args[0])
	if len(args) == 2 {
		r /= math.Log(args[1])
	}
	return finite("log", args[0], r)
}

func (logfn) CanCall(n int) bool {
	return n == 1 || n == 2
}
