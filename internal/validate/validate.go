// Package validate implements the action validator of specification §4.9's
// action loop: pure predicates over GameState consulted before an action is
// allowed to mutate anything.
package validate

import (
	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// CanAttachEnergy reports whether the acting player may attach CurrentEnergy
// this turn: energy is queued, at most one attachment per turn, and no
// prevent-energy-attachment passive in effect.
func CanAttachEnergy(gs *state.GameState, player int) bool {
	if gs.Scratch.EnergyAttachedThisTurn {
		return false
	}
	if gs.Players[player].CurrentEnergy == nil {
		return false
	}
	return !passive.IsEnergyAttachmentPrevented(gs, player)
}

// CanPlaySupporter reports whether a supporter card may be played: at most
// one per turn.
func CanPlaySupporter(gs *state.GameState) bool {
	return !gs.Scratch.SupporterPlayedThisTurn
}

// CanEvolveCreature reports whether the stack at f may evolve into
// candidateTemplate: the stack must not have evolved already this turn, and
// the candidate's EvolvesFrom must name the stack's current top form. It
// does not check whether the stack entered play this turn.
func CanEvolveCreature(gs *state.GameState, repo repository.CardRepository, f model.ConcreteField, candidateTemplate string) (bool, error) {
	stack := gs.StackAt(f)
	if stack == nil {
		return false, nil
	}
	id := stack.FieldInstanceID()
	if gs.Scratch.EvolvedInstancesThisTurn[id] {
		return false, nil
	}
	candidate, err := repo.GetCreature(candidateTemplate)
	if err != nil {
		return false, err
	}
	top, err := repo.GetCreature(stack.Top().TemplateID)
	if err != nil {
		return false, err
	}
	return candidate.EvolvesFrom == top.Name, nil
}

// CanRetreat reports whether the active creature at player's side may
// retreat: not asleep or paralyzed, no retreat-prevention passive, and the
// (passive-modified) retreat cost is payable from attached energy, and the
// bench has a replacement.
func CanRetreat(gs *state.GameState, repo repository.CardRepository, player int, baseCost int) bool {
	if gs.Scratch.RetreatedThisTurn {
		return false
	}
	active := model.ConcreteField{PlayerIndex: player, FieldIndex: state.ActiveIndex}
	for _, s := range gs.Status[gs.FieldInstanceAt(active)] {
		if s.Kind == model.StatusSleep || s.Kind == model.StatusParalysis {
			return false
		}
	}
	if passive.IsRetreatPrevented(gs, repo, active) {
		return false
	}
	if gs.Players[player].BenchCount() == 0 {
		return false
	}
	cost := passive.EffectiveRetreatCost(gs, repo, active, baseCost)
	return gs.Energy[gs.FieldInstanceAt(active)].Total() >= cost
}

// CanUseAttack reports whether the active creature can use the named
// attack: not attack-prevented, and the (passive-modified) energy cost is
// payable from attached energy. Sleep/paralysis prevent attacking
// entirely.
func CanUseAttack(gs *state.GameState, repo repository.CardRepository, player int, cost model.EnergyHistogram) bool {
	active := model.ConcreteField{PlayerIndex: player, FieldIndex: state.ActiveIndex}
	id := gs.FieldInstanceAt(active)
	for _, s := range gs.Status[id] {
		if s.Kind == model.StatusSleep || s.Kind == model.StatusParalysis {
			return false
		}
	}
	if passive.IsAttackPrevented(gs, repo, active) {
		return false
	}
	have := gs.Energy[id]
	for t, n := range cost {
		if have[t] < n {
			return false
		}
	}
	return true
}

// CanUseAbility reports whether the named ability may currently fire,
// independent of its trigger dispatch: own-turn-only and first-turn-only
// gates, mirrored from internal/trigger's dispatch filter so a host can
// preflight a manually-activated ability before enqueuing it.
func CanUseAbility(gs *state.GameState, player int, ability model.Ability) bool {
	if ability.OwnTurnOnly && gs.ActivePlayerIndex != player {
		return false
	}
	if ability.FirstTurnOnly && gs.TurnNumber != 1 {
		return false
	}
	return true
}
