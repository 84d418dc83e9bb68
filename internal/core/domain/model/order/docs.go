// Package order models a single vehicle visit at the wash and its bill.
//
// The package includes:
//   - Order: the aggregate root, owning its lines and the lifecycle state
//   - Item: a bill line with a name and price snapshot taken at sale time
//   - Status: the lifecycle state machine
//   - Source: whether the order came from the staff gate or the kiosk
//
// Lifecycle:
//
//	pending_verification -> queued -> working -> ready -> paid
//
// Any open order can be paid or cancelled. Only pending kiosk orders can be
// rejected, and only queued or working orders can advance.
//
// Money is carried as kernel.Money (two decimal places). At payment the total
// is recomputed from the lines and the washer commission is taken from the
// service lines at ServiceCommissionRate.
package order
