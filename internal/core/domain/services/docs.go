// Package services holds domain logic that spans the token and order aggregates.
//
// The package includes:
//   - TokenReconciler: decides how to repair a token whose state disagrees with
//     the orders that reference it
package services
