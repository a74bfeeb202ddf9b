package evaluator

import (
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// TargetScope names whose field/hand/damage a "resolved" EffectValue reads
// from. It's supplied by the caller (the applier, once the effect's own
// FieldTarget has resolved) rather than embedded in the value tree itself —
// "interpreted against the resolved target player in the context"
// (specification §4.2).
type TargetScope struct {
	Player int            // -1 if no resolved target is available
	Field  *model.ConcreteField
}

// Value evaluates an EffectValue to a non-negative integer. All arithmetic
// is non-negative integer per specification §4.2. Consumes one RNG draw per
// coin-flip node.
func Value(gs *state.GameState, repo repository.CardRepository, v model.EffectValue, ctx model.EffectContext, scope TargetScope) int {
	switch v.Kind {
	case model.ValueConstant:
		return nonNeg(v.Amount)

	case model.ValuePlayerContextResolved:
		player := state.ResolvePlayer(ctx.SourcePlayer, v.PlayerContext)
		p := &gs.Players[player]
		switch v.Source {
		case model.SourceHandSize:
			return len(p.Hand)
		case model.SourceCurrentPoints:
			return p.Points
		case model.SourcePointsToWin:
			return pointsToWin(p.Points)
		default:
			return 0
		}

	case model.ValueResolved:
		if scope.Player < 0 {
			return 0
		}
		p := &gs.Players[scope.Player]
		switch v.ResolvedSource {
		case model.ResolvedCreatureCount:
			return len(p.Field)
		case model.ResolvedBenchedCreatureCount:
			return p.BenchCount()
		case model.ResolvedCardsInHand:
			return len(p.Hand)
		case model.ResolvedEnergyCount:
			if scope.Field == nil {
				return 0
			}
			return gs.Energy[gs.FieldInstanceAt(*scope.Field)].Total()
		case model.ResolvedDamageTaken:
			if scope.Field == nil {
				return 0
			}
			return gs.Damage[gs.FieldInstanceAt(*scope.Field)]
		default:
			return 0
		}

	case model.ValueMultiplication:
		if v.Multiplier == nil || v.Base == nil {
			return 0
		}
		return nonNeg(Value(gs, repo, *v.Multiplier, ctx, scope) * Value(gs, repo, *v.Base, ctx, scope))

	case model.ValueAddition:
		total := 0
		for _, part := range v.Values {
			total += Value(gs, repo, part, ctx, scope)
		}
		return nonNeg(total)

	case model.ValueCoinFlip:
		heads := gs.RNG.CoinFlip()
		if heads {
			if v.HeadsValue == nil {
				return 0
			}
			return Value(gs, repo, *v.HeadsValue, ctx, scope)
		}
		if v.TailsValue == nil {
			return 0
		}
		return Value(gs, repo, *v.TailsValue, ctx, scope)

	case model.ValueConditional:
		if v.Condition == nil {
			return 0
		}
		candidate := model.ConcreteField{PlayerIndex: ctx.SourcePlayer}
		if scope.Field != nil {
			candidate = *scope.Field
		} else if ctx.Source != nil {
			candidate = *ctx.Source
		}
		if Condition(gs, repo, *v.Condition, candidate, ctx) {
			if v.TrueValue == nil {
				return 0
			}
			return Value(gs, repo, *v.TrueValue, ctx, scope)
		}
		if v.FalseValue == nil {
			return 0
		}
		return Value(gs, repo, *v.FalseValue, ctx, scope)

	case model.ValueCount:
		return count(gs, repo, v, ctx)

	default:
		return 0
	}
}

func nonNeg(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// pointsToWin computes max(1, 3-points) per specification §3/§4.2.
func pointsToWin(points int) int {
	remaining := 3 - points
	if remaining < 1 {
		return 1
	}
	return remaining
}

// Heal computes a clamped heal result: post-heal damage = max(0, pre - amount).
func Heal(preDamage, amount int) int {
	result := preDamage - amount
	if result < 0 {
		return 0
	}
	return result
}

func count(gs *state.GameState, repo repository.CardRepository, v model.EffectValue, ctx model.EffectContext) int {
	switch v.CountType {
	case model.CountField:
		player := state.ResolvePlayer(ctx.SourcePlayer, v.CountPlayer)
		p := &gs.Players[player]
		total := 0
		for i := range p.Field {
			candidate := model.ConcreteField{PlayerIndex: player, FieldIndex: i}
			if MatchesCriteria(gs, repo, v.Criteria, candidate, ctx) {
				total++
			}
		}
		return total
	case model.CountEnergy:
		player := state.ResolvePlayer(ctx.SourcePlayer, v.CountPlayer)
		p := &gs.Players[player]
		total := 0
		for i := range p.Field {
			candidate := model.ConcreteField{PlayerIndex: player, FieldIndex: i}
			if !MatchesCriteria(gs, repo, v.Criteria, candidate, ctx) {
				continue
			}
			hist := gs.Energy[gs.FieldInstanceAt(candidate)]
			if len(v.EnergyTypes) == 0 {
				total += hist.Total()
				continue
			}
			for _, t := range v.EnergyTypes {
				total += hist[t]
			}
		}
		return total
	case model.CountCard:
		player := state.ResolvePlayer(ctx.SourcePlayer, v.CountPlayer)
		return len(gs.Players[player].Hand)
	case model.CountDamage:
		player := state.ResolvePlayer(ctx.SourcePlayer, v.CountPlayer)
		p := &gs.Players[player]
		total := 0
		for i := range p.Field {
			candidate := model.ConcreteField{PlayerIndex: player, FieldIndex: i}
			if MatchesCriteria(gs, repo, v.Criteria, candidate, ctx) {
				total += gs.Damage[gs.FieldInstanceAt(candidate)]
			}
		}
		return total
	default:
		return 0
	}
}
