package calculator_test

import (
	"errors"
	"strings"
	"testing"

	calc "github.com/Kiarash-sabbaghii-giit/calculator"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "(1)"},
		{"real", "1.5", "(1.5)"},
		{"exponent", "1e-3", "(1e-3)"},
		{"name", "pi", "(pi)"},
		{"plus", "+1", "(+(1))"},
		{"neg", "-1", "(-(1))"},
		{"add", "1+2", "((1) + (2))"},
		{"sub", "1-2", "((1) - (2))"},
		{"mul", "2*3", "((2) * (3))"},
		{"mul-glyph", "2×3", "((2) * (3))"},
		{"div", "2/3", "((2) / (3))"},
		{"div-glyph", "2÷3", "((2) / (3))"},
		{"mod", "5%3", "((5) % (3))"},
		{"pow", "2^3", "((2) ^ (3))"},
		{"add-assoc", "1+2+3", "(((1) + (2)) + (3))"},
		{"sub-assoc", "1-2-3", "(((1) - (2)) - (3))"},
		{"pow-assoc", "2^3^2", "((2) ^ ((3) ^ (2)))"},
		{"precedence", "2+3*4", "((2) + ((3) * (4)))"},
		{"precedence-rev", "2*3+4", "(((2) * (3)) + (4))"},
		{"mod-precedence", "1+5%3", "((1) + ((5) % (3)))"},
		{"parens", "(2+3)*4", "(((2) + (3)) * (4))"},
		{"neg-pow", "-2^2", "(-((2) ^ (2)))"},
		{"pow-neg", "2^-3", "((2) ^ (-(3)))"},
		{"double-neg", "--1", "(-(-(1)))"},
		{"call", "sin(30)", "(sin((30)))"},
		{"call-spaced", "sin (30)", "(sin((30)))"},
		{"call-two-args", "log(8, 2)", "(log((8), (2)))"},
		{"call-nested", "sqrt(abs(-2))", "(sqrt((abs((-(2))))))"},
		{"call-in-expr", "1+cos(60)*2", "((1) + ((cos((60))) * (2)))"},
		{"call-empty", "f()", "(f())"},
		{"unknown-name", "bogus", "(bogus)"},
		{"ws", " 1 + 2 ", "((1) + (2))"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := calc.Parse(strings.NewReader(c.src))
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			if got := a.String(); got != c.want {
				t.Errorf("%q parsed wrong:\n\twant %s\n\tgot  %s", c.src, c.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
	}{
		{"empty", "", new(*calc.EmptyExpressionError)},
		{"spaces", "   ", new(*calc.EmptyExpressionError)},
		{"trailing-op", "1+", new(*calc.EmptyExpressionError)},
		{"open-only", "(", new(*calc.EmptyExpressionError)},
		{"empty-parens", "()", new(*calc.EmptyExpressionError)},
		{"unclosed", "(1", new(*calc.BracketError)},
		{"unclosed-call", "sin(30", new(*calc.BracketError)},
		{"unopened", "1)", new(*calc.BracketError)},
		{"close-only", ")", new(*calc.BracketError)},
		{"binary-as-unary", "*2", new(*calc.OperatorError)},
		{"op-op", "1+*2", new(*calc.OperatorError)},
		{"adjacent-nums", "2 3", new(*calc.AdjacencyError)},
		{"adjacent-paren", "2(3)", new(*calc.AdjacencyError)},
		{"adjacent-name", "2 pi", new(*calc.AdjacencyError)},
		{"sep-toplevel", "1,2", new(*calc.SeparatorError)},
		{"sep-leading", "sin(,1)", new(*calc.SeparatorError)},
		{"sep-trailing", "sin(1,)", new(*calc.EmptyExpressionError)},
		{"bad-rune", "1&2", new(*calc.LexError)},
		{"bad-number", "1.1.1", new(*calc.LexError)},
		{"attribute", "a.b", new(*calc.LexError)},
		{"bracket-rune", "[1]", new(*calc.LexError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calc.Parse(strings.NewReader(c.src))
			if err == nil {
				t.Fatalf("%q parsed but should not have", c.src)
			}
			if !errors.As(err, c.err) {
				t.Errorf("%q gave error %#v, want %T", c.src, err, c.err)
			}
			var in calc.InputError
			if !errors.As(err, &in) {
				t.Errorf("%q gave error %#v which is not an InputError", c.src, err)
			} else if in.Pos() < 1 {
				t.Errorf("%q gave error with bad position %d", c.src, in.Pos())
			}
		})
	}
}

func TestParseDepthLimit(t *testing.T) {
	const depth = 8
	deep := strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth)
	if _, err := calc.Parse(strings.NewReader(deep), calc.MaxDepth(depth)); err == nil {
		t.Errorf("parsing %q with depth limit %d should have failed", deep, depth)
	} else if !errors.As(err, new(*calc.LimitError)) {
		t.Errorf("parsing %q gave %#v, want *LimitError", deep, err)
	}
	ok := strings.Repeat("(", depth-1) + "1" + strings.Repeat(")", depth-1)
	if _, err := calc.Parse(strings.NewReader(ok), calc.MaxDepth(depth)); err != nil {
		t.Errorf("parsing %q with depth limit %d failed: %v", ok, depth, err)
	}
	long := "1" + strings.Repeat("+1", 1000)
	if _, err := calc.Parse(strings.NewReader(long), calc.MaxDepth(depth)); err != nil {
		t.Errorf("parsing a long flat expression failed: %v", err)
	}
}

func TestParseStopOn(t *testing.T) {
	src := strings.NewReader("1+2\n3*4\n")
	a, err := calc.Parse(src, calc.StopOn('\n'))
	if err != nil {
		t.Fatalf("first line failed to parse: %v", err)
	}
	if got := a.String(); got != "((1) + (2))" {
		t.Errorf("first line parsed wrong: got %s", got)
	}
	b, err := calc.Parse(src, calc.StopOn('\n'))
	if err != nil {
		t.Fatalf("second line failed to parse: %v", err)
	}
	if got := b.String(); got != "((3) * (4))" {
		t.Errorf("second line parsed wrong: got %s", got)
	}
}
