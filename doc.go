/*
Package nmoney implements a precision-safe monetary value.
An amount is stored as separate whole and fractional magnitudes plus an
explicit sign, so no floating-point rounding is ever involved.

# Features

  - Exact representation of whole units (e.g. dollars) and hundredths of
    a unit (e.g. cents)
  - Checked addition and subtraction with overflow and underflow detection
  - Sign-aware comparison
  - Per-amount display options: symbol, symbol visibility and rendering
    of negative amounts
  - Conversion to and from minor units, [decimal.Decimal] and SQL values

# Representation

The package consists of two main types: Money and Options.
A Money value holds whole units as a uint64, fractional units as a uint8
in the range [0, 99], a [Sign], and its own copy of [Options].
Options are never shared between amounts, so changing how one amount
is rendered never affects another.

# Supported Ranges

Any whole value can be constructed, but arithmetic and comparison convert
amounts to a signed count of minor units, which must fit into an int64:

	| Sign     | Largest magnitude    |
	| -------- | -------------------- |
	| Positive | 92233720368547758.07 |
	| Negative | 92233720368547758.08 |

# Rendering

The string representation is built from the magnitude in the form
W.FF, where FF is always two digits.
The symbol is prepended when shown, then a negative indicator is applied
according to the [NegativeView]: a leading minus ([Minus]), enclosing
parentheses ([Paren]), or nothing ([Hide]).

# Errors

Constructors and option setters return errors for invalid input.
Arithmetic, comparison and conversion operations return [ErrOverflow] or
[ErrUnderflow] instead of wrapping around.
Failed operations never modify their receiver.
Only functions prefixed with Must panic.
*/
package nmoney
