package nmoney

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is returned by [Options.SetSymbol] when the requested
// symbol is a decimal digit.
var ErrInvalidSymbol = errors.New("invalid symbol")

const defaultSymbol = '$'

// NegativeView type represents the textual convention used for rendering
// negative amounts.
// The zero value is [Minus].
type NegativeView uint8

const (
	Minus NegativeView = iota // -$5.25
	Paren                     // ($5.25)
	Hide                      // $5.25
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v NegativeView) String() string {
	switch v {
	case Minus:
		return "minus"
	case Paren:
		return "paren"
	case Hide:
		return "hide"
	default:
		return fmt.Sprintf("NegativeView(%d)", uint8(v))
	}
}

// Options type represents the display configuration of an amount.
// Every [Money] value holds its own Options, so changing the configuration
// of one amount never affects another.
//
// The zero value is equal to [DefaultOptions]: symbol '$', symbol shown,
// negative amounts rendered with a leading minus.
type Options struct {
	symbol     rune         // 0 means defaultSymbol
	hideSymbol bool         // stored inverted so that the zero value shows the symbol
	negView    NegativeView // rendering of negative amounts
}

// DefaultOptions returns the display configuration assigned to newly
// constructed amounts.
func DefaultOptions() Options {
	return Options{}
}

// Symbol returns the currency symbol.
func (o Options) Symbol() rune {
	if o.symbol == 0 {
		return defaultSymbol
	}
	return o.symbol
}

// ShowSymbol returns true if the currency symbol is included in the
// string representation.
func (o Options) ShowSymbol() bool {
	return !o.hideSymbol
}

// NegativeView returns the rendering of negative amounts.
func (o Options) NegativeView() NegativeView {
	return o.negView
}

// SetSymbol sets the currency symbol. Default: '$'.
//
// SetSymbol returns an error and keeps the current symbol if r is a
// decimal digit ('0' to '9').
func (o *Options) SetSymbol(r rune) error {
	if isDigit(r) {
		return fmt.Errorf("setting symbol %q: %w", r, ErrInvalidSymbol)
	}
	o.symbol = r
	return nil
}

// SetShowSymbol sets whether the currency symbol is included in the
// string representation. Default: true.
func (o *Options) SetShowSymbol(show bool) {
	o.hideSymbol = !show
}

// SetNegativeView sets the rendering of negative amounts. Default: [Minus].
func (o *Options) SetNegativeView(v NegativeView) {
	o.negView = v
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
