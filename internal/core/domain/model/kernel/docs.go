// Package kernel holds the value objects shared by every aggregate of the
// car-wash domain: UUID identifiers and Money amounts.
//
// Both have an invalid zero value and are built through constructors that
// validate their input. They are immutable and safe for concurrent use.
package kernel
