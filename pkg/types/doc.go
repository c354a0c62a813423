// Package types defines the Recipe entity, the fixed category enumeration,
// the Store interface, and the standard errors for recipebox.
package types
