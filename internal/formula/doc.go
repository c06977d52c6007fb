// Package formula extracts free symbols and observable/noise placeholder
// parameters from observable and noise formulas.
//
// Formulas are parsed as HCL expressions after rewriting the operators HCL
// does not share with the PEtab math syntax (power operators, and dashes that
// HCL would otherwise read as part of an identifier).
package formula
