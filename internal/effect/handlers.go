package effect

import (
	"pockettcg/internal/evaluator"
	"pockettcg/internal/model"
	"pockettcg/internal/passive"
	"pockettcg/internal/repository"
	"pockettcg/internal/state"
)

// dispatch applies an effect whose targets have all resolved. Apart from
// AttachTool and the pending-selection bookkeeping of Apply and Resume*, it
// is where the package mutates GameState.
func dispatch(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext) error {
	switch e.Type {
	case model.EffectHeal:
		return applyHeal(gs, repo, e, ctx)
	case model.EffectDamage:
		return applyDamage(gs, repo, e, ctx)
	case model.EffectDraw:
		return applyDraw(gs, repo, e, ctx)
	case model.EffectSearch:
		return applySearch(gs, e)
	case model.EffectShuffle:
		return applyShuffle(gs, repo, e, ctx)
	case model.EffectHandDiscard:
		return applyHandDiscard(gs, e, ctx)
	case model.EffectEnergyTransfer:
		return applyEnergyTransfer(gs, e)
	case model.EffectToolDiscard:
		return applyToolDiscard(gs, e)
	case model.EffectShuffleIntoDeck:
		return applyShuffleIntoDeck(gs, e)
	case model.EffectMoveToHand:
		return applyMoveToHand(gs, e)
	case model.EffectHPBonus, model.EffectDamageBoost, model.EffectDamageReduction,
		model.EffectRetreatCostModification, model.EffectRetreatPrevention,
		model.EffectPreventAttack, model.EffectPreventDamage,
		model.EffectAttackEnergyCostModifier:
		registerPassive(gs, ctx, e, e.ResolvedTarget)
		return nil
	case model.EffectPreventEnergyAttachment:
		registerPassive(gs, ctx, e, nil)
		return nil
	case model.EffectStatusEffect:
		return applyStatus(gs, e)
	default:
		return nil
	}
}

func applyHeal(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext) error {
	for _, t := range e.ResolvedTarget {
		id := gs.FieldInstanceAt(t)
		if id == "" {
			continue
		}
		amount := evaluator.Value(gs, repo, e.Amount, ctx, evaluator.TargetScope{Player: t.PlayerIndex, Field: &t})
		gs.Damage[id] = evaluator.Heal(gs.Damage[id], amount)
	}
	return nil
}

func applyDamage(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext) error {
	for _, t := range e.ResolvedTarget {
		id := gs.FieldInstanceAt(t)
		if id == "" {
			continue
		}
		if ctx.Source != nil && passive.IsDamagePreventedFrom(gs, repo, t, *ctx.Source) {
			continue
		}
		amount := evaluator.Value(gs, repo, e.Amount, ctx, evaluator.TargetScope{Player: t.PlayerIndex, Field: &t})
		if ctx.Source != nil {
			amount += passive.DamageModifier(gs, repo, *ctx.Source, t)
		}
		if amount < 0 {
			amount = 0
		}
		gs.Damage[id] += amount
	}
	return nil
}

func applyDraw(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext) error {
	player := state.ResolvePlayer(ctx.SourcePlayer, e.ForPlayer)
	p := &gs.Players[player]
	count := evaluator.Value(gs, repo, e.AmountValue, ctx, evaluator.TargetScope{Player: -1})
	for i := 0; i < count && len(p.Deck) > 0 && len(p.Hand) < gs.Params.MaxHandSize; i++ {
		card := p.Deck[0]
		p.Deck = p.Deck[1:]
		p.Hand = append(p.Hand, card)
	}
	return nil
}

// applySearch moves every already-resolved search result (chosen by the
// player from their own deck) to the effect's destination zone and
// reshuffles the remainder of that deck, per specification §4.6.
func applySearch(gs *state.GameState, e model.Effect) error {
	if len(e.ResolvedCardTarget) == 0 {
		return nil
	}
	player := e.ResolvedCardTarget[0].PlayerIndex
	p := &gs.Players[player]
	for _, c := range e.ResolvedCardTarget {
		card, ok := state.RemoveCard(&p.Deck, c.InstanceID)
		if !ok {
			continue
		}
		appendToZone(p, e.Destination, card)
	}
	gs.RNG.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
	return nil
}

func applyShuffle(gs *state.GameState, repo repository.CardRepository, e model.Effect, ctx model.EffectContext) error {
	players := shuffleScopePlayers(ctx.SourcePlayer, e.ShuffleTarget)
	for _, player := range players {
		p := &gs.Players[player]
		if e.ShuffleHand {
			p.Deck = append(p.Deck, p.Hand...)
			p.Hand = nil
		}
		gs.RNG.Shuffle(len(p.Deck), func(i, j int) {
			p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
		})
		if e.DrawAfter.Kind != "" {
			drawCtx := model.EffectContext{SourcePlayer: player}
			count := evaluator.Value(gs, repo, e.DrawAfter, drawCtx, evaluator.TargetScope{Player: -1})
			for i := 0; i < count && len(p.Deck) > 0 && len(p.Hand) < gs.Params.MaxHandSize; i++ {
				p.Hand = append(p.Hand, p.Deck[0])
				p.Deck = p.Deck[1:]
			}
		}
	}
	return nil
}

func shuffleScopePlayers(sourcePlayer int, scope model.ShuffleScope) []int {
	switch scope {
	case model.ShuffleOpponent:
		return []int{state.Opponent(sourcePlayer)}
	case model.ShuffleBoth:
		return []int{sourcePlayer, state.Opponent(sourcePlayer)}
	default:
		return []int{sourcePlayer}
	}
}

func applyHandDiscard(gs *state.GameState, e model.Effect, ctx model.EffectContext) error {
	for _, c := range e.ResolvedCardTarget {
		p := &gs.Players[c.PlayerIndex]
		card, ok := state.RemoveCard(&p.Hand, c.InstanceID)
		if !ok {
			continue
		}
		p.Discard = append(p.Discard, card)
	}
	return nil
}

func applyEnergyTransfer(gs *state.GameState, e model.Effect) error {
	if len(e.ResolvedEnergySource) == 0 || len(e.ResolvedEnergyDest) == 0 {
		return nil
	}
	src := e.ResolvedEnergySource[0]
	srcID := gs.FieldInstanceAt(src.Field)
	destID := gs.FieldInstanceAt(e.ResolvedEnergyDest[0])
	if srcID == "" || destID == "" {
		return nil
	}
	srcHist := gs.Energy[srcID]
	destHist := gs.Energy[destID]
	if destHist == nil {
		destHist = model.EnergyHistogram{}
	}
	for t, n := range src.Histogram {
		if srcHist[t] < n {
			n = srcHist[t]
		}
		srcHist[t] -= n
		destHist[t] += n
	}
	gs.Energy[srcID] = srcHist
	gs.Energy[destID] = destHist
	return nil
}

func applyToolDiscard(gs *state.GameState, e model.Effect) error {
	for _, t := range e.ResolvedTarget {
		id := gs.FieldInstanceAt(t)
		if id == "" {
			continue
		}
		tool, ok := gs.Tools[id]
		if !ok {
			continue
		}
		delete(gs.Tools, id)
		gs.Players[t.PlayerIndex].Discard = append(gs.Players[t.PlayerIndex].Discard, tool)
		passive.RemoveForDetachedTool(gs, tool.InstanceID, id)
	}
	return nil
}

func applyShuffleIntoDeck(gs *state.GameState, e model.Effect) error {
	for _, c := range e.ResolvedCardTarget {
		p := &gs.Players[c.PlayerIndex]
		card, ok := removeFromZone(p, e.SourceZone, c.InstanceID)
		if !ok {
			continue
		}
		p.Deck = append(p.Deck, card)
	}
	for i := range gs.Players {
		p := &gs.Players[i]
		gs.RNG.Shuffle(len(p.Deck), func(a, b int) { p.Deck[a], p.Deck[b] = p.Deck[b], p.Deck[a] })
	}
	return nil
}

func applyMoveToHand(gs *state.GameState, e model.Effect) error {
	for _, c := range e.ResolvedCardTarget {
		p := &gs.Players[c.PlayerIndex]
		card, ok := removeFromZone(p, e.SourceZone, c.InstanceID)
		if !ok {
			continue
		}
		p.Hand = append(p.Hand, card)
	}
	return nil
}

func applyStatus(gs *state.GameState, e model.Effect) error {
	for _, t := range e.ResolvedTarget {
		id := gs.FieldInstanceAt(t)
		if id == "" {
			continue
		}
		entries := gs.Status[id]
		var rivals [2]model.StatusKind
		switch e.Status {
		case model.StatusSleep, model.StatusParalysis:
			rivals = [2]model.StatusKind{model.StatusSleep, model.StatusParalysis}
		case model.StatusPoison, model.StatusBurn:
			rivals = [2]model.StatusKind{model.StatusPoison, model.StatusBurn}
		}
		if rivals[0] != "" {
			kept := entries[:0]
			for _, s := range entries {
				if s.Kind != rivals[0] && s.Kind != rivals[1] {
					kept = append(kept, s)
				}
			}
			entries = kept
		}
		already := false
		for _, s := range entries {
			if s.Kind == e.Status {
				already = true
				break
			}
		}
		if !already {
			entries = append(entries, state.StatusEntry{Kind: e.Status, AppliedTurn: gs.TurnNumber})
		}
		gs.Status[id] = entries
	}
	return nil
}

// AttachTool attaches tool to target, recording it in gs.Tools and
// registering each of its effects as a passive scoped to that field. Tools
// have no trigger kind of their own (see trigger.Dispatch): this is the only
// place a tool's effects ever take hold, and it runs exactly once, at
// attach time.
func AttachTool(gs *state.GameState, player int, target model.ConcreteField, tool model.CardInstance, effects []model.Effect) {
	id := gs.FieldInstanceAt(target)
	if id == "" {
		return
	}
	gs.Tools[id] = tool
	ctx := model.EffectContext{SourcePlayer: player, Source: &target, Trigger: model.TriggerOnPlay}
	for _, e := range effects {
		if e.Duration.Kind == model.DurationWhileAttached {
			e.Duration.ToolInstanceID = tool.InstanceID
			e.Duration.CardInstanceID = id
		}
		registerPassive(gs, ctx, e, []model.ConcreteField{target})
	}
}

func registerPassive(gs *state.GameState, ctx model.EffectContext, e model.Effect, targets []model.ConcreteField) {
	if len(targets) > 0 {
		e.Target = model.FieldTarget{Kind: model.FieldResolved, Targets: targets}
	}
	gs.RegisterPassive(ctx.SourcePlayer, e.DisplayName, e, e.Duration)
}

func appendToZone(p *state.Player, zone model.CardZone, card model.CardInstance) {
	switch zone {
	case model.ZoneHand:
		p.Hand = append(p.Hand, card)
	case model.ZoneDiscard:
		p.Discard = append(p.Discard, card)
	case model.ZoneDeck:
		p.Deck = append(p.Deck, card)
	}
}

func removeFromZone(p *state.Player, zone model.CardZone, instanceID string) (model.CardInstance, bool) {
	switch zone {
	case model.ZoneHand:
		return state.RemoveCard(&p.Hand, instanceID)
	case model.ZoneDiscard:
		return state.RemoveCard(&p.Discard, instanceID)
	case model.ZoneDeck:
		return state.RemoveCard(&p.Deck, instanceID)
	default:
		return model.CardInstance{}, false
	}
}
