package estree

import "strconv"

// LiteralValue is the value of a [Literal]. It is one of StringValue,
// NumberValue, BooleanValue, NullValue, RegExpValue or BigIntValue.
type LiteralValue interface {
	literalValue()
	String() string
}

// StringValue is the value of a string literal.
type StringValue string

// NumberValue is the value of a numeric literal.
type NumberValue float64

// BooleanValue is the value of true or false.
type BooleanValue bool

// NullValue is the value of null.
type NullValue struct{}

// RegExpValue is the value of a regular expression literal.
type RegExpValue struct {
	Pattern string
	Flags   string
}

// BigIntValue is the value of a bigint literal, as its decimal digits.
type BigIntValue string

func (StringValue) literalValue()  {}
func (NumberValue) literalValue()  {}
func (BooleanValue) literalValue() {}
func (NullValue) literalValue()    {}
func (RegExpValue) literalValue()  {}
func (BigIntValue) literalValue()  {}

func (v StringValue) String() string  { return strconv.Quote(string(v)) }
func (v NumberValue) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v BooleanValue) String() string { return strconv.FormatBool(bool(v)) }
func (NullValue) String() string      { return "null" }
func (v RegExpValue) String() string  { return "/" + v.Pattern + "/" + v.Flags }
func (v BigIntValue) String() string  { return string(v) + "n" }
