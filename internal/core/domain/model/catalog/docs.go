// Package catalog holds what the wash sells: vehicle types, wash services, the
// service price matrix, and inventory consumables. Orders copy names and prices
// out of the catalog at sale time, so catalog edits never change existing bills.
package catalog
