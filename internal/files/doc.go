// Package files resolves and validates gradebook export files.
//
// Validator turns user-supplied names into an InputPair: .xlsx is appended
// when missing, both files must exist, and both names must carry the same
// SHEN-<course>_grades course code. Discovery lists the exports available
// in a directory for the list command.
package files
