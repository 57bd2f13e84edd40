package nmoney

import (
	"bytes"
	"cmp"
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidFractionalUnits is returned by [New] when the fractional
	// units are greater than 99.
	ErrInvalidFractionalUnits = errors.New("invalid fractional units")
	// ErrOverflow is returned when a result is greater than [math.MaxInt64]
	// minor units.
	ErrOverflow = errors.New("amount overflow")
	// ErrUnderflow is returned when a result is less than [math.MinInt64]
	// minor units.
	ErrUnderflow = errors.New("amount underflow")
)

// Sign type represents the polarity of an amount.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Money type represents a monetary amount as a magnitude of whole units
// (e.g. dollars) and fractional units (e.g. cents), plus a [Sign].
// Its zero value corresponds to "$0.00".
//
// Each amount owns its display [Options]. Arithmetic results carry the
// default options, see [Money.Add].
//
// The == operator compares options as well as values; use [Money.Equal]
// or [Money.Cmp] to compare amounts numerically.
//
// Money is a value type. A single value must not be mutated concurrently
// by multiple goroutines.
type Money struct {
	whole uint64  // whole units
	frac  uint8   // fractional units, always in [0, 99]
	sign  Sign    // polarity
	opts  Options // display configuration
}

// New returns an amount equal to whole + frac / 100 with the given sign and
// default options.
//
// New returns an error if frac is greater than 99.
func New(whole uint64, frac uint8, sign Sign) (Money, error) {
	if frac > 99 {
		return Money{}, fmt.Errorf("constructing amount from %v and %v: %w", whole, frac, ErrInvalidFractionalUnits)
	}
	return Money{whole: whole, frac: frac, sign: sign}, nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNew(whole uint64, frac uint8, sign Sign) Money {
	m, err := New(whole, frac, sign)
	if err != nil {
		panic(fmt.Sprintf("New(%v, %v, %v) failed: %v", whole, frac, sign, err))
	}
	return m
}

// NewFromMinorUnits converts an integer, representing fractional units
// (e.g. cents), to an amount with default options.
// Zero is always [Positive].
// See also method [Money.MinorUnits].
func NewFromMinorUnits(units int64) Money {
	sign := Positive
	mag := uint64(units)
	if units < 0 {
		sign = Negative
		mag = -mag
	}
	return Money{whole: mag / 100, frac: uint8(mag % 100), sign: sign}
}

// NewFromDecimal converts a decimal to a (possibly rounded) amount with
// default options.
// The fractional part is rounded to two digits using [rounding half to even]
// (banker's rounding).
// See also method [Money.Decimal].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewFromDecimal(d decimal.Decimal) (Money, error) {
	whole, frac, ok := d.Int64(2)
	if !ok {
		err := ErrOverflow
		if d.IsNeg() {
			err = ErrUnderflow
		}
		return Money{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	m := Money{whole: uint64(whole), frac: uint8(frac)}
	if whole < 0 || frac < 0 {
		m.sign = Negative
		m.whole = -m.whole
		m.frac = uint8(-frac)
	}
	return m, nil
}

// Whole returns the whole units of the amount.
func (m Money) Whole() uint64 {
	return m.whole
}

// Frac returns the fractional units of the amount, a value in [0, 99].
func (m Money) Frac() uint8 {
	return m.frac
}

// Sign returns the polarity of the amount.
func (m Money) Sign() Sign {
	return m.sign
}

// Options returns a pointer to the display options owned by the amount,
// allowing them to be updated in place.
func (m *Money) Options() *Options {
	return &m.opts
}

// CopyOptions replaces the display options of the amount with a copy of
// the options of src.
func (m *Money) CopyOptions(src Money) {
	m.opts = src.opts
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.whole == 0 && m.frac == 0
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.sign == Negative && !m.IsZero()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.sign == Positive && !m.IsZero()
}

// Neg returns an amount with the opposite sign and the same options.
func (m Money) Neg() Money {
	if m.sign == Negative {
		m.sign = Positive
	} else {
		m.sign = Negative
	}
	return m
}

// Abs returns the absolute value of the amount with the same options.
func (m Money) Abs() Money {
	m.sign = Positive
	return m
}

// MinorUnits returns the amount as a single signed count of fractional
// units (e.g. cents): whole * 100 + frac, negated if the amount is negative.
// See also constructor [NewFromMinorUnits].
//
// MinorUnits returns [ErrOverflow] or [ErrUnderflow] if the result
// cannot be represented as an int64.
func (m Money) MinorUnits() (int64, error) {
	u, err := m.minorUnits()
	if err != nil {
		return 0, fmt.Errorf("converting %v to minor units: %w", m, err)
	}
	return u, nil
}

func (m Money) minorUnits() (int64, error) {
	limit, err := uint64(math.MaxInt64), ErrOverflow
	if m.sign == Negative {
		limit, err = uint64(math.MaxInt64)+1, ErrUnderflow
	}
	if m.whole > (limit-uint64(m.frac))/100 {
		return 0, err
	}
	mag := m.whole*100 + uint64(m.frac)
	if m.sign == Negative {
		return int64(-mag), nil
	}
	return int64(mag), nil
}

// Decimal returns the amount as a decimal with two digits after the
// decimal point.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if the amount cannot be represented as an int64
// number of minor units.
func (m Money) Decimal() (decimal.Decimal, error) {
	u, err := m.minorUnits()
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, err)
	}
	d, err := decimal.New(u, 2)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", m, err)
	}
	return d, nil
}

// Add returns the sum of amounts m and b.
// The result carries the default options, whatever the options of
// m and b are.
//
// Add returns [ErrOverflow] or [ErrUnderflow] if either amount or the sum
// cannot be represented as an int64 number of minor units.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	x, err := m.minorUnits()
	if err != nil {
		return Money{}, err
	}
	y, err := b.minorUnits()
	if err != nil {
		return Money{}, err
	}
	z := x + y
	switch {
	case y > 0 && z < x:
		return Money{}, ErrOverflow
	case y < 0 && z > x:
		return Money{}, ErrUnderflow
	}
	return NewFromMinorUnits(z), nil
}

// Sub returns the difference between amounts m and b.
// The result carries the default options, whatever the options of
// m and b are.
//
// Sub returns [ErrOverflow] or [ErrUnderflow] if either amount or the
// difference cannot be represented as an int64 number of minor units.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	x, err := m.minorUnits()
	if err != nil {
		return Money{}, err
	}
	y, err := b.minorUnits()
	if err != nil {
		return Money{}, err
	}
	z := x - y
	switch {
	case y < 0 && z < x:
		return Money{}, ErrOverflow
	case y > 0 && z > x:
		return Money{}, ErrUnderflow
	}
	return NewFromMinorUnits(z), nil
}

// Inc adds amount b to m in place, keeping the options of m.
// On error m is left unchanged. See also method [Money.Add].
func (m *Money) Inc(b Money) error {
	c, err := m.add(b)
	if err != nil {
		return fmt.Errorf("computing [%v += %v]: %w", *m, b, err)
	}
	m.whole, m.frac, m.sign = c.whole, c.frac, c.sign
	return nil
}

// Dec subtracts amount b from m in place, keeping the options of m.
// On error m is left unchanged. See also method [Money.Sub].
func (m *Money) Dec(b Money) error {
	c, err := m.sub(b)
	if err != nil {
		return fmt.Errorf("computing [%v -= %v]: %w", *m, b, err)
	}
	m.whole, m.frac, m.sign = c.whole, c.frac, c.sign
	return nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice,
// one minor unit each.
// The parts carry the default options.
//
// Split returns an error if the number of parts is not a positive integer
// or if the amount cannot be represented as an int64 number of minor units.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	u, err := m.minorUnits()
	if err != nil {
		return nil, err
	}

	// Quotient and remainder
	par := int64(parts)
	quo, rem := u/par, u%par
	ulp := int64(1)
	if rem < 0 {
		ulp, rem = -1, -rem
	}

	res := make([]Money, parts)
	for i := range res {
		q := quo
		// Remainder distribution
		if int64(i) < rem {
			q += ulp
		}
		res[i] = NewFromMinorUnits(q)
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Options are ignored.
//
// Cmp returns an error if either amount cannot be represented as an int64
// number of minor units.
func (m Money) Cmp(b Money) (int, error) {
	x, err := m.minorUnits()
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, err)
	}
	y, err := b.minorUnits()
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, err)
	}
	return cmp.Compare(x, y), nil
}

// Equal returns true if amounts are numerically equal.
// See also method [Money.Cmp].
func (m Money) Equal(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// Less returns true if m is numerically less than b.
// See also method [Money.Cmp].
func (m Money) Less(b Money) (bool, error) {
	c, err := m.Cmp(b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Min returns the smaller amount.
// If the amounts are equal, m is returned.
// See also method [Money.Cmp].
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= b
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
// If the amounts are equal, m is returned.
// See also method [Money.Cmp].
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= b
		return m, nil
	default:
		return b, nil
	}
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount according to its options:
//
//	$5.25    positive
//	5.25     positive, symbol hidden
//	-$5.25   negative, [Minus] view
//	($5.25)  negative, [Paren] view
//	$5.25    negative, [Hide] view
//
// See also method [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	var buf [32]byte
	return string(m.appendText(buf[:0]))
}

func (m Money) appendText(buf []byte) []byte {
	neg := m.sign == Negative
	view := m.opts.NegativeView()

	// Negative indicator
	if neg {
		switch view {
		case Minus:
			buf = append(buf, '-')
		case Paren:
			buf = append(buf, '(')
		}
	}

	// Symbol
	if m.opts.ShowSymbol() {
		buf = utf8.AppendRune(buf, m.opts.Symbol())
	}

	// Magnitude
	buf = m.appendMagnitude(buf)

	// Closing parenthesis
	if neg && view == Paren {
		buf = append(buf, ')')
	}
	return buf
}

func (m Money) appendMagnitude(buf []byte) []byte {
	buf = strconv.AppendUint(buf, m.whole, 10)
	return append(buf, '.', '0'+m.frac/10, '0'+m.frac%10)
}

// appendMinorUnits appends the digits of whole * 100 + frac without
// converting to int64, so it never overflows.
func (m Money) appendMinorUnits(buf []byte) []byte {
	if m.whole == 0 {
		return strconv.AppendUint(buf, uint64(m.frac), 10)
	}
	buf = strconv.AppendUint(buf, m.whole, 10)
	return append(buf, '0'+m.frac/10, '0'+m.frac%10)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example   | Description                   |
//	| ------ | --------- | ----------------------------- |
//	| %s, %v | -$5.25    | Amount rendered with options  |
//	| %q     | "-$5.25"  | Quoted amount                 |
//	| %f     | -5.25     | Signed amount without symbol  |
//	| %d     | -525      | Signed amount in minor units  |
//
// Options are ignored by %f and %d.
// Width pads the result with spaces on the left, or on the right when
// the '-' format flag is used.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var buf []byte
	switch verb {
	case 's', 'S', 'v', 'V':
		buf = m.appendText(buf)
	case 'q', 'Q':
		buf = append(buf, '"')
		buf = m.appendText(buf)
		buf = append(buf, '"')
	case 'f', 'F':
		if m.sign == Negative {
			buf = append(buf, '-')
		}
		buf = m.appendMagnitude(buf)
	case 'd', 'D':
		if m.sign == Negative {
			buf = append(buf, '-')
		}
		buf = m.appendMinorUnits(buf)
	default:
		buf = append(buf, "%!"...)
		buf = utf8.AppendRune(buf, verb)
		buf = append(buf, "(nmoney.Money="...)
		buf = m.appendText(buf)
		buf = append(buf, ')')
		state.Write(buf) //nolint:errcheck
		return
	}

	// Padding
	if w, ok := state.Width(); ok {
		if n := utf8.RuneCount(buf); w > n {
			pad := bytes.Repeat([]byte{' '}, w-n)
			if state.Flag('-') {
				buf = append(buf, pad...)
			} else {
				buf = append(pad, buf...)
			}
		}
	}

	state.Write(buf) //nolint:errcheck
}

// Scan implements the [sql.Scanner] interface.
// The value must be a signed number of minor units.
// The options of the receiver are kept.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Money) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		m.whole, m.frac, m.sign = minorParts(value)
	case nil:
		err = fmt.Errorf("%T does not support null values", Money{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Money{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as a signed number of minor units.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Money) Value() (driver.Value, error) {
	u, err := m.MinorUnits()
	if err != nil {
		return nil, err
	}
	return u, nil
}

func minorParts(units int64) (uint64, uint8, Sign) {
	c := NewFromMinorUnits(units)
	return c.whole, c.frac, c.sign
}
