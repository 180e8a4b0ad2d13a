// Package aggregates implements the Professional aggregate on top of the
// table repos in internal/data/repos.
//
// Write methods own their transaction boundary. Every failure leaving this
// package is a *domain/aggregates.Error.
package aggregates
