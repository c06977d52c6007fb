// Package plan resolves the parameter mapping of every simulation condition
// of a problem into a ResolvedMappingPlan.
//
// Resolution pipeline:
//  1. Reject measurement tables with timepoint-specific overrides
//  2. Enumerate (preequilibration, simulation) condition pairs in the order
//     they first occur in the measurement table
//  3. For each pair, resolve the preequilibration half (if any) and the
//     simulation half:
//     - condition table overrides
//     - measurement overrides of observable and noise placeholders
//       (simulation only)
//     - nominal values of fixed parameters
//     - placeholders left without an override become missing
//  4. Derive the parameter scales and optionally merge both halves
//  5. Emit diagnostics (unmapped placeholders)
package plan
