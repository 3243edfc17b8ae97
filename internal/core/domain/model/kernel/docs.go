// Package kernel provides the shared domain primitives of the fulfillment
// service: identifiers and geographic coordinates used across aggregates.
//
// The value objects in this package are immutable and validate themselves on
// construction; their zero values are invalid and fail Validate. This keeps
// entities built on top of them free of per-field defensive checks.
package kernel
