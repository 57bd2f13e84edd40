package nmoney_test

import (
	"errors"
	"fmt"

	"github.com/0xMattB/nmoney"
	"github.com/govalues/decimal"
)

type LedgerLine struct {
	Memo   string
	Amount nmoney.Money
}

type Ledger []LedgerLine

// Balance sums the amounts of all lines.
// The balance keeps the options of the first line.
func (l Ledger) Balance() (nmoney.Money, error) {
	var bal nmoney.Money
	if len(l) > 0 {
		bal.CopyOptions(l[0].Amount)
	}
	for _, line := range l {
		if err := bal.Inc(line.Amount); err != nil {
			return nmoney.Money{}, fmt.Errorf("line %q: %w", line.Memo, err)
		}
	}
	return bal, nil
}

// In this example, a ledger balance is rendered in accounting style.
func Example_ledger() {
	rent := nmoney.MustNew(1200, 0, nmoney.Negative)
	rent.Options().SetNegativeView(nmoney.Paren)

	ledger := Ledger{
		{"rent", rent},
		{"salary", nmoney.MustNew(950, 50, nmoney.Positive)},
		{"coffee", nmoney.MustNew(3, 75, nmoney.Negative)},
	}

	bal, err := ledger.Balance()
	if err != nil {
		panic(err)
	}
	for _, line := range ledger {
		fmt.Printf("%-6s %10v\n", line.Memo, line.Amount)
	}
	fmt.Printf("%-6s %10v\n", "total", bal)
	// Output:
	// rent   ($1200.00)
	// salary    $950.50
	// coffee     -$3.75
	// total   ($253.25)
}

func ExampleNew() {
	m, err := nmoney.New(5, 25, nmoney.Positive)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	_, err = nmoney.New(5, 100, nmoney.Positive)
	fmt.Println(errors.Is(err, nmoney.ErrInvalidFractionalUnits))
	// Output:
	// $5.25
	// true
}

func ExampleNewFromMinorUnits() {
	fmt.Println(nmoney.NewFromMinorUnits(-525))
	fmt.Println(nmoney.NewFromMinorUnits(5))
	// Output:
	// -$5.25
	// $0.05
}

func ExampleNewFromDecimal() {
	d := decimal.MustParse("10.255")
	m, err := nmoney.NewFromDecimal(d)
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output: $10.26
}

func ExampleMoney_MinorUnits() {
	m := nmoney.MustNew(109, 85, nmoney.Negative)
	fmt.Println(m.MinorUnits())
	// Output: -10985 <nil>
}

func ExampleMoney_Decimal() {
	m := nmoney.MustNew(12, 96, nmoney.Negative)
	fmt.Println(m.Decimal())
	// Output: -12.96 <nil>
}

func ExampleMoney_Add() {
	a := nmoney.MustNew(10, 25, nmoney.Positive)
	b := nmoney.MustNew(21, 33, nmoney.Positive)
	fmt.Println(a.Add(b))
	fmt.Println(a.Sub(b))
	// Output:
	// $31.58 <nil>
	// -$11.08 <nil>
}

func ExampleMoney_Add_overflow() {
	a := nmoney.MustNew(92233720368547758, 7, nmoney.Positive)
	b := nmoney.MustNew(1, 0, nmoney.Positive)
	_, err := a.Add(b)
	fmt.Println(errors.Is(err, nmoney.ErrOverflow))
	// Output: true
}

func ExampleMoney_Inc() {
	m := nmoney.MustNew(21, 33, nmoney.Positive)
	m.Options().SetShowSymbol(false)
	if err := m.Inc(nmoney.MustNew(10, 25, nmoney.Positive)); err != nil {
		panic(err)
	}
	fmt.Println(m)
	if err := m.Dec(nmoney.MustNew(40, 0, nmoney.Positive)); err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output:
	// 31.58
	// -8.42
}

func ExampleMoney_Split() {
	m := nmoney.MustNew(10, 0, nmoney.Positive)
	fmt.Println(m.Split(3))
	// Output: [$3.34 $3.33 $3.33] <nil>
}

func ExampleMoney_Cmp() {
	a := nmoney.MustNew(21, 33, nmoney.Positive)
	b := nmoney.MustNew(10, 25, nmoney.Positive)
	fmt.Println(a.Cmp(b))
	fmt.Println(b.Cmp(a))
	fmt.Println(b.Cmp(b))
	// Output:
	// 1 <nil>
	// -1 <nil>
	// 0 <nil>
}

func ExampleMoney_Less() {
	a := nmoney.MustNew(1, 0, nmoney.Negative)
	b := nmoney.MustNew(0, 1, nmoney.Positive)
	fmt.Println(a.Less(b))
	// Output: true <nil>
}

func ExampleMoney_Max() {
	a := nmoney.MustNew(5, 25, nmoney.Positive)
	b := nmoney.MustNew(5, 24, nmoney.Positive)
	fmt.Println(a.Max(b))
	fmt.Println(a.Min(b))
	// Output:
	// $5.25 <nil>
	// $5.24 <nil>
}

func ExampleMoney_Options() {
	m := nmoney.MustNew(10, 25, nmoney.Positive)
	fmt.Println(m)

	if err := m.Options().SetSymbol('£'); err != nil {
		panic(err)
	}
	fmt.Println(m)

	m.Options().SetShowSymbol(false)
	fmt.Println(m)

	m = m.Neg()
	m.Options().SetNegativeView(nmoney.Paren)
	fmt.Println(m)

	m.Options().SetNegativeView(nmoney.Minus)
	fmt.Println(m)

	m.Options().SetNegativeView(nmoney.Hide)
	fmt.Println(m)
	// Output:
	// $10.25
	// £10.25
	// 10.25
	// (10.25)
	// -10.25
	// 10.25
}

func ExampleMoney_CopyOptions() {
	m1 := nmoney.MustNew(59, 99, nmoney.Negative)
	if err := m1.Options().SetSymbol('#'); err != nil {
		panic(err)
	}
	m1.Options().SetNegativeView(nmoney.Paren)

	m2 := nmoney.MustNew(1098, 54, nmoney.Negative)
	fmt.Println(m2)
	m2.CopyOptions(m1)
	fmt.Println(m2)
	// Output:
	// -$1098.54
	// (#1098.54)
}

func ExampleMoney_Format() {
	m := nmoney.MustNew(12, 96, nmoney.Negative)
	fmt.Printf("%v\n", m)
	fmt.Printf("%q\n", m)
	fmt.Printf("%f\n", m)
	fmt.Printf("%d\n", m)
	fmt.Printf("[%9v]\n", m)
	fmt.Printf("[%-9v]\n", m)
	// Output:
	// -$12.96
	// "-$12.96"
	// -12.96
	// -1296
	// [  -$12.96]
	// [-$12.96  ]
}

func ExampleOptions_SetSymbol() {
	var o nmoney.Options
	fmt.Println(o.SetSymbol('7'))
	fmt.Println(o.SetSymbol('€'), string(o.Symbol()))
	// Output:
	// setting symbol '7': invalid symbol
	// <nil> €
}
