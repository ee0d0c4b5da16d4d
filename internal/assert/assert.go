// +build !debug

// Package assert provides zero-cost invariant checks for non-debug builds.
// Only this non-debug variant exists: a build with -tags debug excludes
// this file and leaves the package without a DEBUG constant or Assert.
package assert

// DEBUG gates assertion evaluation at compile time so the release build
// pays nothing for invariant checks.
const DEBUG = false

// Assert does nothing in this build, whatever the value of test. Callers
// should additionally guard with "if assert.DEBUG" so the compiler can
// drop the whole call, since arguments are still evaluated otherwise.
func Assert(test bool, msg string, a ...interface{}) {}
