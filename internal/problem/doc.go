// Package problem loads a PEtab problem from its YAML description.
//
// The YAML file names the tables that make up the problem; paths are
// relative to the YAML file:
//
//	format_version: 1
//	parameter_file: parameters.tsv
//	problems:
//	  - model_files: [model_parameters.tsv]
//	    condition_files: [conditions.tsv]
//	    measurement_files: [measurements.tsv]
//	    observable_files: [observables.tsv]
//
// Several files of one kind are concatenated in order. Only files
// describing a single problem are supported.
package problem
