// Package types defines the Database interface, the tabular Result type,
// and the standard error values for the labdb experiment store.
package types
