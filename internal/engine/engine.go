// Package engine is the facade a host (internal/bot, cmd/duel, cmd/server)
// drives: it turns a message.Response into state mutation by routing
// through internal/validate, internal/effect, and internal/turn, and
// reports back a message.Status. It owns no game rules itself — every
// decision is delegated to the packages named above.
package engine

import (
	"context"
	"fmt"

	"pockettcg/internal/effect"
	engerrors "pockettcg/internal/errors"
	"pockettcg/internal/message"
	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
	"pockettcg/internal/trigger"
	"pockettcg/internal/turn"
	"pockettcg/internal/validate"
)

// Engine binds one in-progress game to its card repository and outbound
// notifier.
type Engine struct {
	GameID   string
	GS       *state.GameState
	Repo     repository.CardRepository
	Notifier *message.Notifier
}

// New wires a fresh Engine around an already-built GameState.
func New(gameID string, gs *state.GameState, repo repository.CardRepository, notifier *message.Notifier) *Engine {
	return &Engine{GameID: gameID, GS: gs, Repo: repo, Notifier: notifier}
}

// Submit routes one player Response through the engine and returns the
// resulting Status. Every non-fatal exit path also publishes the Status to
// Notifier; a fatal error is returned without publishing. Publishing keeps
// so spectators stay in sync with the acting player.
func (e *Engine) Submit(ctx context.Context, player int, resp message.Response) (message.Status, error) {
	status, err := e.submit(player, resp)
	if err != nil {
		if fatal, ok := err.(engerrors.Fatal); ok && fatal.Fatal() {
			return status, err
		}
		status = message.Status{Kind: message.StatusRejected, RejectReason: err.Error()}
	}
	_ = e.Notifier.Publish(ctx, e.GameID, status)
	return status, nil
}

func (e *Engine) submit(player int, resp message.Response) (message.Status, error) {
	if e.GS.PendingSelection != nil {
		return e.resume(player, resp)
	}
	return e.act(player, resp)
}

func (e *Engine) resume(player int, resp message.Response) (message.Status, error) {
	ps := e.GS.PendingSelection
	if ps.Chooser != player {
		return message.Status{}, &engerrors.ValidationError{Reason: "selection response from the wrong player"}
	}

	var err error
	switch resp.Kind {
	case message.ResponseFieldSelection:
		err = effect.ResumeField(e.GS, e.Repo, resp.FieldSelection)
	case message.ResponseEnergySelection:
		if resp.EnergySelection == nil {
			return message.Status{}, &engerrors.ValidationError{Reason: "energy selection response missing field"}
		}
		err = effect.ResumeEnergy(e.GS, e.Repo, *resp.EnergySelection)
	case message.ResponseCardSelection:
		err = effect.ResumeCard(e.GS, e.Repo, resp.CardSelection)
	default:
		return message.Status{}, &engerrors.ValidationError{Reason: "expected a selection response"}
	}
	if err != nil {
		return message.Status{}, err
	}
	if err := turn.Continue(e.GS, e.Repo); err != nil {
		return message.Status{}, err
	}
	if err := e.advance(); err != nil {
		return message.Status{}, err
	}
	return e.settle()
}

func (e *Engine) act(player int, resp message.Response) (message.Status, error) {
	if resp.Kind != message.ResponseAction {
		return message.Status{}, &engerrors.ValidationError{Reason: "expected an action response"}
	}
	if e.GS.ActivePlayerIndex != player {
		return message.Status{}, &engerrors.ValidationError{Reason: "not this player's turn"}
	}

	switch resp.Action {
	case message.ActionAttachEnergy:
		if err := e.attachEnergy(player, resp); err != nil {
			return message.Status{}, err
		}
	case message.ActionEvolve:
		if err := e.evolve(player, resp); err != nil {
			return message.Status{}, err
		}
	case message.ActionPlayCard:
		if err := e.playCard(player, resp); err != nil {
			return message.Status{}, err
		}
	case message.ActionRetreat:
		if err := e.retreat(player, resp); err != nil {
			return message.Status{}, err
		}
	case message.ActionUseAttack:
		if err := e.useAttack(player, resp); err != nil {
			return message.Status{}, err
		}
	case message.ActionSelectNewActive:
		if resp.SourceField == nil {
			return message.Status{}, &engerrors.ValidationError{Reason: "select-new-active requires sourceField"}
		}
		if err := turn.SelectNewActive(e.GS, player, resp.SourceField.FieldIndex); err != nil {
			return message.Status{}, err
		}
	case message.ActionEndTurn:
		if e.GS.Phase != state.PhaseActionLoop {
			return message.Status{}, &engerrors.ValidationError{Reason: "cannot end turn outside the action loop"}
		}
		if err := turn.EndTurn(e.GS, e.Repo); err != nil {
			return message.Status{}, err
		}
	default:
		return message.Status{}, &engerrors.ValidationError{Reason: fmt.Sprintf("unsupported action %q", resp.Action)}
	}

	if err := turn.DrainPending(e.GS, e.Repo); err != nil {
		return message.Status{}, err
	}
	if err := turn.Continue(e.GS, e.Repo); err != nil {
		return message.Status{}, err
	}
	if err := e.advance(); err != nil {
		return message.Status{}, err
	}

	return e.settle()
}

func (e *Engine) attachEnergy(player int, resp message.Response) error {
	if !validate.CanAttachEnergy(e.GS, player) {
		return &engerrors.CannotApplyError{EffectType: "attach-energy", Reason: "no energy available or already attached this turn"}
	}
	if resp.DestField == nil {
		return &engerrors.ValidationError{Reason: "attach-energy requires destField"}
	}
	id := e.GS.FieldInstanceAt(*resp.DestField)
	if id == "" {
		return &engerrors.ValidationError{Reason: "destField is empty"}
	}
	t := *e.GS.Players[player].CurrentEnergy
	hist := e.GS.Energy[id]
	if hist == nil {
		hist = model.EnergyHistogram{}
	}
	hist[t]++
	e.GS.Energy[id] = hist
	e.GS.Players[player].CurrentEnergy = nil
	e.GS.Scratch.EnergyAttachedThisTurn = true

	return trigger.Dispatch(e.GS, e.Repo, model.TriggerEnergyAttachment, player, resp.DestField, t)
}

func (e *Engine) evolve(player int, resp message.Response) error {
	if resp.SourceField == nil || resp.HandInstanceID == "" {
		return &engerrors.ValidationError{Reason: "evolve requires sourceField and handInstanceId"}
	}
	card, ok := state.RemoveCard(&e.GS.Players[player].Hand, resp.HandInstanceID)
	if !ok {
		return &engerrors.ValidationError{Reason: "evolution card not in hand"}
	}
	ok, err := validate.CanEvolveCreature(e.GS, e.Repo, *resp.SourceField, card.TemplateID)
	if err != nil {
		return err
	}
	if !ok {
		e.GS.Players[player].Hand = append(e.GS.Players[player].Hand, card)
		return &engerrors.CannotApplyError{EffectType: "evolve", Reason: "card does not evolve from the target creature"}
	}

	stack := e.GS.StackAt(*resp.SourceField)
	stack.Forms = append(stack.Forms, card)
	e.GS.Scratch.EvolvedInstancesThisTurn[stack.FieldInstanceID()] = true

	return trigger.Dispatch(e.GS, e.Repo, model.TriggerOnPlay, player, resp.SourceField, "")
}

// playCard plays an item, supporter, or tool card from hand. Items and
// supporters enqueue their effect list onto the pending queue, then
// discard; tools attach to resp.DestField and register their effects as a
// standing passive via effect.AttachTool, per specification §4.1 ("at most
// one tool per creature").
func (e *Engine) playCard(player int, resp message.Response) error {
	if resp.HandInstanceID == "" {
		return &engerrors.ValidationError{Reason: "play-card requires handInstanceId"}
	}
	card, ok := state.RemoveCard(&e.GS.Players[player].Hand, resp.HandInstanceID)
	if !ok {
		return &engerrors.ValidationError{Reason: "card not in hand"}
	}

	switch card.Kind {
	case model.CardSupporter:
		if !validate.CanPlaySupporter(e.GS) {
			e.GS.Players[player].Hand = append(e.GS.Players[player].Hand, card)
			return &engerrors.CannotApplyError{EffectType: "play-supporter", Reason: "a supporter was already played this turn"}
		}
		data, err := e.Repo.GetSupporter(card.TemplateID)
		if err != nil {
			return err
		}
		e.enqueueCardEffects(player, data.Effects)
		e.GS.Players[player].Discard = append(e.GS.Players[player].Discard, card)
		e.GS.Scratch.SupporterPlayedThisTurn = true
		return nil
	case model.CardItem:
		data, err := e.Repo.GetItem(card.TemplateID)
		if err != nil {
			return err
		}
		e.enqueueCardEffects(player, data.Effects)
		e.GS.Players[player].Discard = append(e.GS.Players[player].Discard, card)
		return nil
	case model.CardTool:
		if resp.DestField == nil {
			e.GS.Players[player].Hand = append(e.GS.Players[player].Hand, card)
			return &engerrors.ValidationError{Reason: "attaching a tool requires destField"}
		}
		id := e.GS.FieldInstanceAt(*resp.DestField)
		if id == "" {
			e.GS.Players[player].Hand = append(e.GS.Players[player].Hand, card)
			return &engerrors.ValidationError{Reason: "destField is empty"}
		}
		if _, taken := e.GS.Tools[id]; taken {
			e.GS.Players[player].Hand = append(e.GS.Players[player].Hand, card)
			return &engerrors.CannotApplyError{EffectType: "attach-tool", Reason: "that creature already carries a tool"}
		}
		data, err := e.Repo.GetTool(card.TemplateID)
		if err != nil {
			return err
		}
		effect.AttachTool(e.GS, player, *resp.DestField, card, data.Effects)
		return nil
	default:
		e.GS.Players[player].Hand = append(e.GS.Players[player].Hand, card)
		return &engerrors.ValidationError{Reason: "hand instance is not a playable item, supporter, or tool"}
	}
}

func (e *Engine) enqueueCardEffects(player int, effects []model.Effect) {
	ctx := model.EffectContext{SourcePlayer: player, Trigger: model.TriggerOnPlay}
	for _, eff := range effects {
		e.GS.PendingEffects = append(e.GS.PendingEffects, state.PendingEffect{Effect: eff, Context: ctx})
	}
}

func (e *Engine) retreat(player int, resp message.Response) error {
	if resp.DestField == nil {
		return &engerrors.ValidationError{Reason: "retreat requires destField (the bench position to promote)"}
	}
	active := model.ConcreteField{PlayerIndex: player, FieldIndex: state.ActiveIndex}

	creature, err := e.Repo.GetCreature(e.GS.StackAt(active).Top().TemplateID)
	if err != nil {
		return err
	}
	baseCost := creature.RetreatCost
	if !validate.CanRetreat(e.GS, e.Repo, player, baseCost) {
		return &engerrors.CannotApplyError{EffectType: "retreat", Reason: "retreat is prevented, unpayable, or already used this turn"}
	}

	cost := passive.EffectiveRetreatCost(e.GS, e.Repo, active, baseCost)
	id := e.GS.FieldInstanceAt(active)
	hist := e.GS.Energy[id]
	for _, t := range model.AllEnergyTypes {
		for hist[t] > 0 && cost > 0 {
			hist[t]--
			cost--
		}
	}

	delete(e.GS.Status, id)
	bench := e.GS.Players[player].RemoveField(resp.DestField.FieldIndex)
	oldActive := e.GS.Players[player].Field[0]
	e.GS.Players[player].Field[0] = bench
	e.GS.Players[player].Field = append(e.GS.Players[player].Field, oldActive)
	e.GS.Scratch.RetreatedThisTurn = true

	return trigger.Dispatch(e.GS, e.Repo, model.TriggerOnRetreat, player, &active, "")
}

func (e *Engine) useAttack(player int, resp message.Response) error {
	active := model.ConcreteField{PlayerIndex: player, FieldIndex: state.ActiveIndex}
	creature, err := e.Repo.GetCreature(e.GS.StackAt(active).Top().TemplateID)
	if err != nil {
		return err
	}
	var chosen *model.Attack
	for i := range creature.Attacks {
		if creature.Attacks[i].Name == resp.AttackName {
			chosen = &creature.Attacks[i]
			break
		}
	}
	if chosen == nil {
		return &engerrors.ValidationError{Reason: "unknown attack name"}
	}
	cost := turn.AttackEnergyCost(e.GS, e.Repo, active, *chosen)
	if !validate.CanUseAttack(e.GS, e.Repo, player, cost) {
		return &engerrors.CannotApplyError{EffectType: "use-attack", Reason: "attack is prevented or unpayable"}
	}
	return turn.Attack(e.GS, e.Repo, player, *chosen)
}

// advance drives the turn-phase machine through every phase that requires
// no player input (generate-energy-and-draw, checkup) until it either
// lands on action_loop, needs a new-active selection, or ends the game.
func (e *Engine) advance() error {
	for {
		switch e.GS.Phase {
		case state.PhaseGenerateEnergyAndDraw:
			if err := turn.GenerateEnergyAndDraw(e.GS, e.Repo); err != nil {
				return err
			}
		case state.PhaseCheckup:
			if err := turn.Checkup(e.GS, e.Repo); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (e *Engine) settle() (message.Status, error) {
	if e.GS.PendingSelection != nil {
		ps := e.GS.PendingSelection
		return message.Status{
			Kind:            message.StatusSelectionRequired,
			PendingKind:     string(ps.Kind),
			FieldCandidates: ps.FieldCandidates,
			CardCandidates:  ps.CardCandidates,
			Chooser:         ps.Chooser,
		}, nil
	}
	if e.GS.GameOver != nil {
		return message.Status{Kind: message.StatusGameOver, Winner: e.GS.GameOver.Winner, Tie: e.GS.GameOver.Tie}, nil
	}
	return message.Status{Kind: message.StatusActionApplied}, nil
}
