package gocalc

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/Knetic/govaluate"
)

func oracle(t *testing.T, input string) uint32 {
	t.Helper()
	expr, err := govaluate.NewEvaluableExpression(input)
	if err != nil {
		t.Fatalf("govaluate: %q: %v", input, err)
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		t.Fatalf("govaluate: %q: %v", input, err)
	}
	f, ok := result.(float64)
	if !ok {
		t.Fatalf("govaluate: %q: unexpected result %T", input, result)
	}
	// wrapping +, - and * agree with exact arithmetic modulo 2^32
	return uint32(int64(f))
}

func TestEvalMatchesOracle(t *testing.T) {
	inputs := []string{
		"2 + 3 * 4",
		"10 - 3 - 2",
		"2 * 3 + 4 / 2",
		"100 / 5 / 2",
		"1 + 2 * 3 - 4 * 5 + 6",
		"81 / 9 * 3",
		"7 - 2 - 1 * 3",
	}

	r := rand.New(rand.NewSource(1))
	syms := []string{"+", "-", "*"}
	for i := 0; i < 200; i++ {
		var sb strings.Builder
		sb.WriteString(strconv.Itoa(r.Intn(100)))
		for j := r.Intn(7); j > 0; j-- {
			fmt.Fprintf(&sb, " %s %d", syms[r.Intn(len(syms))], r.Intn(100))
		}
		inputs = append(inputs, sb.String())
	}

	for _, input := range inputs {
		want := Number(oracle(t, input))
		got, err := Eval(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("want %v for %q but got %v", want, input, got)
		}
	}
}

func TestEvalRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	values := []uint32{0, 1, 9, 10, 4294967295}
	for i := 0; i < 100; i++ {
		values = append(values, r.Uint32())
	}
	for _, n := range values {
		input := strconv.FormatUint(uint64(n), 10)
		got, err := Eval(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if got != Number(n) {
			t.Errorf("want %d for %q but got %v", n, input, got)
		}
	}
}

func TestEvalWhitespace(t *testing.T) {
	for _, input := range []string{"1+2", "1 + 2", "  1   +   2  ", "\t1\n+\r\n2"} {
		got, err := Eval(input)
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if got != Number(3) {
			t.Errorf("want 3 for %q but got %v", input, got)
		}
	}
}

func TestCalculator(t *testing.T) {
	tests := []struct {
		calc  Calculator
		input string
		want  Value
		err   error
	}{
		{calc: Calculator{}, input: "1 % 2", err: ErrTrailingInput},
		{calc: Calculator{Strict: true}, input: "1 % 2", err: ErrInvalidCharacter},
		{calc: Calculator{Strict: true}, input: "1 + 2", want: Number(3)},
		{calc: Calculator{}, input: "0 - 1", want: Number(4294967295)},
		{calc: Calculator{Checked: true}, input: "0 - 1", err: ErrOverflow},
		{calc: Calculator{Checked: true}, input: "4294967295 * 1", want: Number(4294967295)},
		{calc: Calculator{Strict: true, Checked: true}, input: "5 / 0", err: ErrDivisionByZero},
		{calc: Calculator{}, input: "1 +", err: ErrUnexpectedEOF},
	}
	for _, test := range tests {
		got, err := test.calc.Eval(test.input)
		if test.err != nil {
			if !errors.Is(err, test.err) {
				t.Errorf("want %v for %q with %+v but got %v, %v", test.err, test.input, test.calc, got, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", test.input, err)
			continue
		}
		if got != test.want {
			t.Errorf("want %v for %q but got %v", test.want, test.input, got)
		}
	}
}

func TestEvalConcurrent(t *testing.T) {
	inputs := map[string]Value{
		"2 + 3 * 4":     Number(14),
		"10 - 3 - 2":    Number(5),
		"2 * 3 + 4 / 2": Number(8),
		"0 - 1":         Number(4294967295),
	}
	c := &Calculator{}

	var wg sync.WaitGroup
	errs := make(chan error, 64*len(inputs))
	for i := 0; i < 64; i++ {
		for input, want := range inputs {
			wg.Add(1)
			go func(input string, want Value) {
				defer wg.Done()
				got, err := c.Eval(input)
				if err != nil {
					errs <- err
					return
				}
				if got != want {
					errs <- fmt.Errorf("want %v for %q but got %v", want, input, got)
				}
			}(input, want)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func TestCalculatorParse(t *testing.T) {
	c := &Calculator{Checked: true}
	tokens, expr, err := c.Parse("0 - 1")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Errorf("want 3 tokens but got %v", tokens)
	}
	if got := expr.String(); got != "(- 0 1)" {
		t.Errorf("want %q but got %q", "(- 0 1)", got)
	}
	if _, err := c.Evaluate(expr); !errors.Is(err, ErrOverflow) {
		t.Errorf("want %v but got %v", ErrOverflow, err)
	}

	tokens, expr, err = c.Parse("1 +")
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("want %v but got %v", ErrUnexpectedEOF, err)
	}
	if len(tokens) != 2 || expr != nil {
		t.Errorf("want 2 tokens and no tree but got %v, %v", tokens, expr)
	}

	c = &Calculator{Strict: true}
	tokens, _, err = c.Parse("1 % 2")
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Errorf("want %v but got %v", ErrInvalidCharacter, err)
	}
	if tokens != nil {
		t.Errorf("want no tokens but got %v", tokens)
	}
}
