// Package trigger implements the trigger dispatcher of specification §4.8:
// given a trigger hook and the creatures on the field, enqueue every
// matching ability effect onto the pending-effect queue in a
// fixed order. The dispatcher never applies an effect itself — only the
// turn-phase state machine drains the queue, through internal/effect.
package trigger

import (
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// Dispatch enqueues every ability effect bound to kind that currently
// applies, in order: the acting/owning player's creatures before the
// opponent's, and board order (active, then bench) within each side.
// source, when non-nil, restricts dispatch to the single field position
// that caused the trigger (e.g. "damaged" only looks at the creature that
// was hit). Tool effects are not dispatched here: they register once, at
// attach time (see effect.AttachTool, called from internal/engine), since a
// tool's bonus is a standing while-attached passive rather than a
// per-trigger effect.
func Dispatch(gs *state.GameState, repo repository.CardRepository, kind model.TriggerKind, sourcePlayer int, source *model.ConcreteField, energyType model.EnergyType) error {
	order := []int{sourcePlayer, state.Opponent(sourcePlayer)}
	for _, player := range order {
		p := &gs.Players[player]
		for i := range p.Field {
			field := model.ConcreteField{PlayerIndex: player, FieldIndex: i}
			if source != nil && field != *source {
				continue
			}
			stack := &p.Field[i]
			top := stack.Top()

			creature, err := repo.GetCreature(top.TemplateID)
			if err != nil {
				return err
			}
			ability := creature.Ability
			if ability == nil || ability.Trigger != kind {
				continue
			}
			if ability.OwnTurnOnly && gs.ActivePlayerIndex != player {
				continue
			}
			if ability.FirstTurnOnly && gs.TurnNumber != 1 {
				continue
			}
			if ability.FilterEvolution && len(stack.Forms) == 1 {
				continue
			}
			if ability.RequiredEnergyType != "" && ability.RequiredEnergyType != energyType {
				continue
			}
			enqueueEffects(gs, ability.Effects, kind, player, field, energyType)
		}
	}
	return nil
}

func enqueueEffects(gs *state.GameState, effects []model.Effect, kind model.TriggerKind, player int, field model.ConcreteField, energyType model.EnergyType) {
	ctx := model.EffectContext{SourcePlayer: player, Source: &field, Trigger: kind, EnergyType: energyType}
	for _, e := range effects {
		gs.PendingEffects = append(gs.PendingEffects, state.PendingEffect{Effect: e, Context: ctx})
	}
}
