package battle

import "errors"

// ErrCombatantsFull indicates the pool already holds two combatants.
var ErrCombatantsFull = errors.New("combatant list is full, cannot add more combatants")

// ErrNotEnoughCombatants indicates a battle was attempted with fewer than
// two prepped combatants.
var ErrNotEnoughCombatants = errors.New("two combatants must be prepped for a battle")

// ErrUnknownDifficulty indicates a combatant carries a difficulty outside
// LOW, MED and HIGH. Pool entries are plain values a caller could have
// built by hand, so Score re-checks what the store already enforces.
var ErrUnknownDifficulty = errors.New("unknown difficulty")
