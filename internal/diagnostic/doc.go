// Package diagnostic provides structured errors, warnings and notes
// produced while linting a PEtab problem or resolving its parameter mapping.
//
// Key capabilities:
//   - Table and row locations for every finding
//   - "Did you mean" suggestions for unknown identifiers
//   - Collapsing all errors into a single Go error
package diagnostic
