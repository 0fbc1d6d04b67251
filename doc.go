// Package calculator implements a safe arithmetic expression evaluator.
//
// Input strings are parsed into a restricted expression tree: numeric
// literals, the binary operators + - * / ^ % (with the display aliases ×
// and ÷), unary + and -, parenthesized subexpressions, calls of the form
// name(arg, ...), and bare names for constants. Nothing outside that
// grammar parses, and only names present in the registry evaluate, so an
// input string can never reach anything beyond fixed arithmetic.
//
// "-2^2^n" is the same as "-(2^(2^n))", where "a^b" is exponentiation.
//
// Evaluate is the whole pipeline for calculator-style input: it rewrites
// display tokens (** to ^, % to /100) and then parses and evaluates with
// the default registry. Callers that want the raw grammar, including the
// % modulo operator, use Parse and Expr.Eval directly.
package calculator
