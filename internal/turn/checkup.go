package turn

import (
	"pockettcg/internal/model"
	"pockettcg/internal/state"
)

// tickStatuses applies the checkup-phase status catalogue: poison deals 10
// with no self-clear, burn deals 20 and then flips a coin to clear itself,
// sleep flips a coin to wake, confusion draws its own separate coin to clear
// (its self-damage fizzle flip is resolved at attack time, in Attack).
// Paralysis is cleared separately, at the start of the following turn (see
// clearExpiredParalysis).
func tickStatuses(gs *state.GameState) {
	for id, entries := range gs.Status {
		kept := entries[:0]
		for _, s := range entries {
			switch s.Kind {
			case model.StatusPoison:
				gs.Damage[id] += 10
				kept = append(kept, s)
			case model.StatusBurn:
				gs.Damage[id] += 20
				if gs.RNG.CoinFlip() {
					continue // heads: burn clears
				}
				kept = append(kept, s)
			case model.StatusSleep:
				if gs.RNG.CoinFlip() {
					continue // heads: wakes up
				}
				kept = append(kept, s)
			case model.StatusConfusion:
				if gs.RNG.CoinFlip() {
					continue // heads: confusion clears
				}
				kept = append(kept, s)
			default:
				kept = append(kept, s)
			}
		}
		gs.Status[id] = kept
	}
}
