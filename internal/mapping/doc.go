// Package mapping resolves, for one condition, how model parameters map to
// optimization parameters or constants.
//
// A mapping starts as the identity (every model parameter maps to itself)
// and is refined in a fixed order, later steps overwriting earlier ones:
//
//  1. ApplyConditionOverrides: condition table columns
//  2. ApplyOutputOverrides: observable and noise overrides from the
//     measurement table (simulation half only)
//  3. FillNominalValues: non-estimated parameters become their nominal value
//  4. HandleMissingOverrides: placeholders nobody overrode become missing
//
// ScalesFor derives the parallel scale mapping, and MergePreeqAndSim
// reconciles the preequilibration and simulation halves when they must
// agree.
package mapping
