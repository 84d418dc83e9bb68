// Package token models the physical claim-check tokens (numbered 1..N) that
// identify a vehicle's place in the wash queue.
//
// A token is either Available or Active. An Active token points at the one
// live order that holds it. Claim and Release express the transitions. The
// same transitions are applied in storage by a compare-and-swap, so two
// terminals racing for one token cannot both win.
package token
