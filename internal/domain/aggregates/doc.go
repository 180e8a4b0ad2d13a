// Package aggregates defines the Professional aggregate contract and the
// typed failure taxonomy shared by rules, services and the HTTP mapper.
//
// Nothing here knows about GORM or gin; implementations live in
// internal/data/aggregates.
package aggregates
