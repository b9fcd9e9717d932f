// Package lifecycle orchestrates the end-of-day transition:
// Awake(day N) → Asleep → Awake(day N+1).
//
// The service composes the pure sleep rules from the sim package with
// effectful collaborators (player record lookup, travel estimation, the
// lifestyle pattern evaluator) in a fixed order. It performs no partial
// commits and assumes the caller wraps the whole sequence transactionally
// and serializes concurrent sleeps per player.
package lifecycle
