// Package sim implements the outcome and progression rules for the
// Everyday.Space life simulation.
//
// Every function in this package is pure: it reads its arguments, allocates
// new result values, and never touches shared state. Anything that samples
// takes an explicit seed or *rand.Rand so resolutions are replayable.
// Orchestration across collaborators (persistence, lifestyle evaluation)
// lives in the lifecycle package.
package sim
