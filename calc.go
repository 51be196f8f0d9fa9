// Package gocalc evaluates unsigned 32-bit integer arithmetic expressions
// such as "2 + 3 * 4".
package gocalc

// Calculator runs the whole pipeline: Tokenize, Parse and Evaluate. It holds
// no state between calls and may be used from many goroutines at once.
type Calculator struct {
	// Strict reports unrecognized characters instead of dropping them.
	Strict bool
	// Checked reports arithmetic overflow instead of wrapping.
	Checked bool
}

// Tokenize lexes input, rejecting unrecognized characters when Strict is set.
func (c *Calculator) Tokenize(input string) ([]Token, error) {
	if c.Strict {
		return TokenizeStrict(input)
	}
	return Tokenize(input), nil
}

// Parse lexes and parses input. The tokens are returned even when parsing
// fails, so callers can show what the parser was given.
func (c *Calculator) Parse(input string) ([]Token, *Expr, error) {
	tokens, err := c.Tokenize(input)
	if err != nil {
		return nil, nil, err
	}
	expr, err := Parse(tokens)
	if err != nil {
		return tokens, nil, err
	}
	return tokens, expr, nil
}

// Evaluate reduces expr, reporting overflow when Checked is set.
func (c *Calculator) Evaluate(expr *Expr) (Value, error) {
	ev := Evaluator{Checked: c.Checked}
	return ev.Evaluate(expr)
}

// Eval runs input through Parse and Evaluate.
func (c *Calculator) Eval(input string) (Value, error) {
	_, expr, err := c.Parse(input)
	if err != nil {
		return nil, err
	}
	return c.Evaluate(expr)
}

// Eval evaluates input with the default, lenient settings.
func Eval(input string) (Value, error) {
	var c Calculator
	return c.Eval(input)
}
