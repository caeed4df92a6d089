// Package battle resolves score-weighted contests between two meals.
//
// A Model holds an ordered pool of at most two combatants drawn from the
// catalog. Resolution computes a deterministic score per combatant, draws a
// uniform random value from an injected source, picks the winner, persists
// both outcomes through the catalog, and evicts the loser from the pool.
//
// The pool belongs to a single battle session. It is not safe for
// concurrent mutation; callers sharing a Model across goroutines must
// serialize access themselves.
package battle
