// Package ports defines the interfaces between the application core and its
// adapters: repositories bound to a unit of work, and change publishers.
package ports
