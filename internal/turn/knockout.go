package turn

import (
	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
	"pockettcg/internal/trigger"
)

// EffectiveMaxHP returns a creature's max HP plus every matching hp-bonus
// passive.
func EffectiveMaxHP(gs *state.GameState, repo repository.CardRepository, f model.ConcreteField) (int, error) {
	stack := gs.StackAt(f)
	if stack == nil {
		return 0, nil
	}
	data, err := repo.GetCreature(stack.Top().TemplateID)
	if err != nil {
		return 0, err
	}
	return data.MaxHP + passive.EffectiveHPBonus(gs, repo, f), nil
}

// CheckKnockouts walks both sides' fields and knocks out every stack whose
// damage has reached its effective max HP, dispatching before-knockout
// first, then moving the stack and its tool to discard, its energy to the
// owner's discarded-energy histogram, and
// awarding points to the opponent (specification §4.9/§8: an EX creature is
// worth 2 points, others 1).
func CheckKnockouts(gs *state.GameState, repo repository.CardRepository) error {
	for player := 0; player < 2; player++ {
		i := 0
		for i < len(gs.Players[player].Field) {
			f := model.ConcreteField{PlayerIndex: player, FieldIndex: i}
			maxHP, err := EffectiveMaxHP(gs, repo, f)
			if err != nil {
				return err
			}
			id := gs.FieldInstanceAt(f)
			if maxHP == 0 || gs.Damage[id] < maxHP {
				i++
				continue
			}
			if err := knockOut(gs, repo, f); err != nil {
				return err
			}
			if gs.Phase == state.PhaseGameOver || gs.Phase == state.PhaseSelectNewActive || gs.PendingSelection != nil {
				return nil
			}
			// Stacks below i shifted down one slot; recheck this index.
		}
	}
	return nil
}

func knockOut(gs *state.GameState, repo repository.CardRepository, f model.ConcreteField) error {
	if err := trigger.Dispatch(gs, repo, model.TriggerBeforeKnockout, f.PlayerIndex, &f, ""); err != nil {
		return err
	}
	if err := DrainPending(gs, repo); err != nil {
		return err
	}
	if gs.PendingSelection != nil {
		return nil
	}

	player := f.PlayerIndex
	id := gs.FieldInstanceAt(f)
	stack := gs.Players[player].Field[f.FieldIndex]

	creature, err := repo.GetCreature(stack.Top().TemplateID)
	if err != nil {
		return err
	}

	removed := gs.Players[player].RemoveField(f.FieldIndex)
	for _, form := range removed.Forms {
		gs.Players[player].Discard = append(gs.Players[player].Discard, form)
	}
	if tool, ok := gs.Tools[id]; ok {
		gs.Players[player].Discard = append(gs.Players[player].Discard, tool)
		delete(gs.Tools, id)
		passive.RemoveForDetachedTool(gs, tool.InstanceID, id)
	}
	if gs.Players[player].DiscardedEnergy == nil {
		gs.Players[player].DiscardedEnergy = model.EnergyHistogram{}
	}
	for t, n := range gs.Energy[id] {
		gs.Players[player].DiscardedEnergy[t] += n
	}
	delete(gs.Energy, id)
	delete(gs.Status, id)
	passive.RemoveForInstance(gs, id)

	points := 1
	if creature.EX {
		points = 2
	}
	opponent := &gs.Players[state.Opponent(player)]
	opponent.Points += points

	if opponent.Points >= 3 {
		gs.GameOver = &state.GameOverResult{Winner: state.Opponent(player)}
		gs.Phase = state.PhaseGameOver
		return nil
	}

	if f.FieldIndex == state.ActiveIndex {
		if gs.Players[player].BenchCount() == 0 {
			gs.GameOver = &state.GameOverResult{Winner: state.Opponent(player)}
			gs.Phase = state.PhaseGameOver
			return nil
		}
		gs.ReturnPhase = gs.Phase
		gs.Phase = state.PhaseSelectNewActive
	}
	return nil
}

// SelectNewActive promotes the bench stack at fieldIndex to active, after a
// knockout leaves the active slot empty, and hands control back to whatever
// phase the knockout interrupted.
func SelectNewActive(gs *state.GameState, player, fieldIndex int) error {
	promoted := gs.Players[player].RemoveField(fieldIndex)
	gs.Players[player].Field = append([]model.CreatureStack{promoted}, gs.Players[player].Field...)
	if gs.Phase == state.PhaseSelectNewActive {
		gs.Phase = gs.ReturnPhase
	}
	return nil
}
