// Package report turns an analysis.Summary into serialized output.
//
// Design:
//   • Writers own all presentation knowledge (text lines, JSON).
//   • analysis stays domain-only; appcore stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package report
