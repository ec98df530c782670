package order

import (
	"errors"
	"math"

	"ticketing/internal/pkg/errs"
	"ticketing/internal/pkg/guard"

	"go.uber.org/zap/zapcore"
)

// MaxProductNameLength is the longest accepted product name, in bytes.
const MaxProductNameLength = 300

var (
	ErrProductNameIsEmpty   = errors.New("Product name can't be empty")
	ErrProductNameIsTooLong = errors.New("Product name is too long")
	ErrQuantityIsZero       = errors.New("Quantity is zero")
	ErrUnitPriceIsZero      = errors.New("Price is zero")

	// ErrTotalOverflows is the cause reported by CheckedTotal when the product
	// does not fit in 32 bits.
	ErrTotalOverflows = errors.New("total does not fit in 32 bits")

	// ErrLineItemIsNotConstructed is returned for a LineItem that was declared
	// rather than built by NewLineItem.
	ErrLineItemIsNotConstructed = errs.NewValueIsRequiredError(
		"LineItem must be created via NewLineItem constructor")
)

// LineItem is a product, how many of it, and what one costs.
//
// The zero value is not a valid line item; use NewLineItem. Setters are not
// synchronized, so a LineItem shared between goroutines needs external locking.
//
// Example:
//
//	item, err := order.NewLineItem("Widget", 3, 250)
//	if err != nil {
//	    return err
//	}
//	item.Total() // 750
type LineItem struct {
	// productName is 1..MaxProductNameLength bytes
	productName string

	// quantity is at least 1
	quantity uint32

	// unitPrice is in minor currency units and at least 1
	unitPrice uint32

	guard guard.ConstructorGuard
}

// NewLineItem validates every field before building the line item. If any rule is
// violated it returns nil and all violations joined, name first, then quantity,
// then price; use errors.Is with the Err* sentinels to tell them apart.
func NewLineItem(productName string, quantity, unitPrice uint32) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate reports whether the line item was built by NewLineItem.
func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

// ProductName returns the product name.
func (l *LineItem) ProductName() string {
	return l.productName
}

// Quantity returns how many units were ordered.
func (l *LineItem) Quantity() uint32 {
	return l.quantity
}

// UnitPrice returns the price of one unit in minor currency units.
func (l *LineItem) UnitPrice() uint32 {
	return l.unitPrice
}

// SetProductName replaces the product name. On error the name is unchanged.
func (l *LineItem) SetProductName(productName string) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return l.setProductName(productName)
}

// SetQuantity replaces the quantity. On error the quantity is unchanged.
func (l *LineItem) SetQuantity(quantity uint32) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return l.setQuantity(quantity)
}

// SetUnitPrice replaces the unit price. On error the price is unchanged.
func (l *LineItem) SetUnitPrice(unitPrice uint32) error {
	if err := l.Validate(); err != nil {
		return err
	}
	return l.setUnitPrice(unitPrice)
}

// Total returns quantity × unit price. The product of two 32-bit values always
// fits in 64 bits, so the result is exact.
func (l *LineItem) Total() uint64 {
	return uint64(l.quantity) * uint64(l.unitPrice)
}

// CheckedTotal returns the total in the 32-bit width of its operands, or an
// *errs.ValueIsOutOfRangeError wrapping ErrTotalOverflows when it does not fit.
func (l *LineItem) CheckedTotal() (uint32, error) {
	total := l.Total()
	if total > math.MaxUint32 {
		return 0, errs.NewValueIsOutOfRangeErrorWithCause(
			"total", total, uint64(0), uint64(math.MaxUint32), ErrTotalOverflows)
	}
	return uint32(total), nil
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (l *LineItem) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := l.Validate(); err != nil {
		return err
	}
	enc.AddString("product_name", l.productName)
	enc.AddUint32("quantity", l.quantity)
	enc.AddUint32("unit_price", l.unitPrice)
	enc.AddUint64("total", l.Total())
	return nil
}

// setProductName checks emptiness and byte length, not rune count: a name of
// multi-byte characters can exceed the limit with fewer than 300 characters.
func (l *LineItem) setProductName(productName string) error {
	switch n := len(productName); {
	case n == 0:
		return ErrProductNameIsEmpty
	case n > MaxProductNameLength:
		return ErrProductNameIsTooLong
	}

	l.productName = productName
	return nil
}

func (l *LineItem) setQuantity(quantity uint32) error {
	if quantity == 0 {
		return ErrQuantityIsZero
	}

	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice uint32) error {
	if unitPrice == 0 {
		return ErrUnitPriceIsZero
	}

	l.unitPrice = unitPrice
	return nil
}
