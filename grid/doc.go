// SPDX-License-Identifier: MIT

// Package grid drives verification over a Cartesian product of named axes.
//
// A run is described by:
//
//   - a list of Axis values (e.g. threads, size, trial), first axis outermost;
//   - a NamingScheme mapping each Cell to the files A, B and C;
//   - an absolute tolerance passed explicitly to Runner.Run.
//
// For every cell the Runner loads A and B, multiplies them with matrix.Mul,
// loads the candidate C and classifies the cell with matrix.Compare. A cell
// that cannot be verified (missing file, bad token, wrong shape) is recorded
// as errored and never aborts the run. Outcomes are appended to a
// report.Accumulator in canonical traversal order, also when WithWorkers
// runs cells concurrently.
package grid
