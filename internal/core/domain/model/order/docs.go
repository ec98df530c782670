// Package order provides the validated line item an order is built from.
//
// A LineItem pairs a product name with a quantity and a unit price in minor currency
// units (cents). Its rules hold from construction through every mutation:
//   - product name is 1 to 300 bytes long
//   - quantity is at least 1
//   - unit price is at least 1
//
// Constructors and setters return an error instead of producing or leaving behind an
// invalid line item.
package order
