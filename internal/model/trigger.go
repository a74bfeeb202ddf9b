package model

// TriggerKind enumerates the declarative trigger hooks of specification §4.8.
type TriggerKind string

const (
	TriggerOnPlay          TriggerKind = "on-play"
	TriggerDamaged         TriggerKind = "damaged"
	TriggerEndOfTurn       TriggerKind = "end-of-turn"
	TriggerStartOfTurn     TriggerKind = "start-of-turn"
	TriggerEnergyAttachment TriggerKind = "energy-attachment"
	TriggerBeforeKnockout  TriggerKind = "before-knockout"
	TriggerOnRetreat       TriggerKind = "on-retreat"
	TriggerOnCheckup       TriggerKind = "on-checkup"
)

// EffectContext carries the information handlers, resolvers, and the
// evaluator need beyond the raw Effect: who caused it, what creature it
// originated from (if any — the "source" position FieldTarget.Fixed can
// reference), and which trigger (if any) produced it.
//
// @name EffectContext
type EffectContext struct {
	SourcePlayer int          `json:"sourcePlayer"`
	// Source is the originating creature's field position, when the effect
	// came from an attack, ability, or attached tool. Nil for effects with
	// no natural "source" (most supporter/item effects).
	Source *ConcreteField `json:"source,omitempty"`
	Trigger TriggerKind   `json:"trigger,omitempty"`
	// EnergyType is set for energy-attachment triggers, gating a trigger's
	// energyType filter.
	EnergyType EnergyType `json:"energyType,omitempty"`
}
