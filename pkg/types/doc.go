// Package types defines the retail entity types, the error taxonomy shared
// by the store and the CLI, and the store configuration.
package types
