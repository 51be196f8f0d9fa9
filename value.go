package gocalc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnsupportedValue = errors.New("unsupported value")
)

// Value is the result of an evaluation. Number is the only variant.
type Value interface {
	fmt.Stringer
	value()
}

type Number uint32

func (Number) value() {}

func (n Number) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// Format makes %b, %o, %x and %X format the number instead of its String
// form. %v and %s print it in decimal.
func (n Number) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		verb = 'd'
	case 'd', 'b', 'o', 'O', 'x', 'X':
	default:
		fmt.Fprintf(f, "%%!%c(gocalc.Number=%d)", verb, uint32(n))
		return
	}
	fmt.Fprintf(f, fmt.FormatString(f, verb), uint32(n))
}

type Base int

const (
	Decimal Base = 10
	Binary  Base = 2
	Octal   Base = 8
	Hex     Base = 16
)

var Bases = []Base{Decimal, Binary, Octal, Hex}

func (b Base) String() string {
	switch b {
	case Decimal:
		return "dec"
	case Binary:
		return "bin"
	case Octal:
		return "oct"
	case Hex:
		return "hex"
	}
	return "base(" + strconv.Itoa(int(b)) + ")"
}

func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "dec", "decimal", "10":
		return Decimal, nil
	case "bin", "binary", "2":
		return Binary, nil
	case "oct", "octal", "8":
		return Octal, nil
	case "hex", "16":
		return Hex, nil
	}
	return 0, fmt.Errorf("unknown base: %q", s)
}

// FormatValue renders v in base b with lowercase digits and no prefix.
func FormatValue(v Value, b Base) (string, error) {
	switch b {
	case Decimal, Binary, Octal, Hex:
	default:
		return "", fmt.Errorf("unknown base: %d", int(b))
	}
	switch v := v.(type) {
	case Number:
		return strconv.FormatUint(uint64(v), int(b)), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}
