/*
Package runs finds maximal runs of identical bytes in a sequence.

A run is a maximal contiguous stretch of one repeated byte. The runs of a
sequence partition it exactly: every position belongs to exactly one run, and
no run can be extended without including a different byte.

All functions are pure and never modify the sequence they are given. Bytes
are compared as-is; there is no alphabet validation or case folding.
*/
package runs
