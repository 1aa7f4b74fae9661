// Package timex provides calendar helpers on top of time.Time: day
// boundaries, weekend detection, age in whole years and human-readable
// relative times such as "3 hours ago".
//
// All helpers keep the location of their input. Helpers that depend on the
// current moment have a variant taking the reference time explicitly (AgeAt,
// RelativeTimeFrom), which is what tests and deterministic callers should use.
package timex
