// Package bot implements the trivial opponent of SPEC_FULL.md §4: it never
// chooses strategically, only legally. Selections take the first offered
// candidate; an action turn attaches queued energy to the active creature
// first, else uses the first attack it can currently afford, else retreats
// to the first bench slot if that is legal, else ends the turn.
package bot

import (
	"pockettcg/internal/message"
	"pockettcg/internal/model"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
	"pockettcg/internal/turn"
	"pockettcg/internal/validate"
)

// RespondToSelection answers gs.PendingSelection with its first candidate.
// Returns an empty Response if there is nothing pending.
func RespondToSelection(gs *state.GameState) message.Response {
	ps := gs.PendingSelection
	if ps == nil {
		return message.Response{}
	}
	switch ps.Kind {
	case state.PendingField:
		if len(ps.FieldCandidates) == 0 {
			return message.Response{}
		}
		return message.Response{Kind: message.ResponseFieldSelection, FieldSelection: ps.FieldCandidates[:1]}
	case state.PendingEnergy:
		if len(ps.EnergyCandidates) == 0 {
			return message.Response{}
		}
		f := ps.EnergyCandidates[0]
		return message.Response{Kind: message.ResponseEnergySelection, EnergySelection: &f}
	case state.PendingCard:
		if len(ps.CardCandidates) == 0 {
			return message.Response{}
		}
		return message.Response{Kind: message.ResponseCardSelection, CardSelection: ps.CardCandidates[:1]}
	default:
		return message.Response{}
	}
}

// Act picks this bot's move for the action loop: attach energy if it has
// one queued and hasn't yet this turn, else attack with the first
// affordable attack, else retreat to the first bench slot if the active
// creature cannot attack and a retreat is legal, else end the turn.
func Act(gs *state.GameState, repo repository.CardRepository, player int) (message.Response, error) {
	active := model.ConcreteField{PlayerIndex: player, FieldIndex: state.ActiveIndex}
	if validate.CanAttachEnergy(gs, player) {
		return message.Response{Kind: message.ResponseAction, Action: message.ActionAttachEnergy, DestField: &active}, nil
	}

	retreatCost := 0
	stack := gs.StackAt(active)
	if stack != nil {
		creature, err := repo.GetCreature(stack.Top().TemplateID)
		if err != nil {
			return message.Response{}, err
		}
		for _, atk := range creature.Attacks {
			cost := turn.AttackEnergyCost(gs, repo, active, atk)
			if validate.CanUseAttack(gs, repo, player, cost) {
				return message.Response{Kind: message.ResponseAction, Action: message.ActionUseAttack, AttackName: atk.Name}, nil
			}
		}
		retreatCost = creature.RetreatCost
	}

	if validate.CanRetreat(gs, repo, player, retreatCost) {
		bench := model.ConcreteField{PlayerIndex: player, FieldIndex: 1}
		return message.Response{Kind: message.ResponseAction, Action: message.ActionRetreat, DestField: &bench}, nil
	}

	return message.Response{Kind: message.ResponseAction, Action: message.ActionEndTurn}, nil
}
