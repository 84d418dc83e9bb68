// Package staff models the people using the terminals, their roles, and the
// session a logged-in member acts under. PINs are stored as bcrypt hashes.
package staff
