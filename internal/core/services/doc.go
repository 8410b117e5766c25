// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The catalog reconciliation pipeline lives here: FilterStage and
// SortStage are pure transforms, ModeSelector decides which raw list is
// authoritative, PaginationCoordinator builds page requests, and
// Reconciler ties them together and drops responses that arrive after a
// newer request was issued.
package services
