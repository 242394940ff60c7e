// Package stacks exposes module-level metadata.
package stacks

// Version is the stacks release version.
const Version = "0.1.0"
