// Package sorting provides the four elementary comparison sorts: bubble,
// selection, insertion, and merge. Every function returns a sorted copy and
// leaves its input untouched.
//
// These exist for study and for sorting small inputs deterministically;
// for anything performance-sensitive use the standard library's slices
// package instead.
package sorting
