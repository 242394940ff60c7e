// Package types defines the Position, Item, and CheckoutRecord value
// types, the session Config, and the standard errors for the stacks
// inventory engine.
package types
