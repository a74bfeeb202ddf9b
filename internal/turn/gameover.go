package turn

import "pockettcg/internal/state"

// CheckGameOver evaluates the win conditions of specification §4.9/§8:
// first to 3 points wins; reaching the configured turn limit without a
// winner is a tie. Returns true (and sets gs.GameOver) when the game has
// ended.
func CheckGameOver(gs *state.GameState) bool {
	for i := range gs.Players {
		if gs.Players[i].Points >= 3 {
			gs.GameOver = &state.GameOverResult{Winner: i}
			gs.Phase = state.PhaseGameOver
			return true
		}
	}
	if gs.TurnNumber > gs.Params.MaxTurns {
		gs.GameOver = &state.GameOverResult{Tie: true, Winner: -1}
		gs.Phase = state.PhaseGameOver
		return true
	}
	return false
}
