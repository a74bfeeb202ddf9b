package model

// EffectValue is a tagged union evaluated by the value evaluator into a
// non-negative integer. Exactly one of the kind-specific fields is
// meaningful for a given Kind; the rest are zero.
//
// @name EffectValue
type EffectValue struct {
	Kind ValueKind `json:"kind"`

	// Constant
	Amount int `json:"amount,omitempty"`

	// PlayerContextResolved
	Source         PlayerContextSource `json:"source,omitempty"`
	PlayerContext  PlayerContext       `json:"playerContext,omitempty"`

	// Resolved (field/energy/hand counts for the context's resolved target player)
	ResolvedSource ResolvedSource `json:"resolvedSource,omitempty"`

	// Multiplication
	Multiplier *EffectValue `json:"multiplier,omitempty"`
	Base       *EffectValue `json:"base,omitempty"`

	// Addition
	Values []EffectValue `json:"values,omitempty"`

	// CoinFlip
	HeadsValue *EffectValue `json:"headsValue,omitempty"`
	TailsValue *EffectValue `json:"tailsValue,omitempty"`

	// Conditional
	Condition  *Condition   `json:"condition,omitempty"`
	TrueValue  *EffectValue `json:"trueValue,omitempty"`
	FalseValue *EffectValue `json:"falseValue,omitempty"`

	// Count
	CountType CountType      `json:"countType,omitempty"`
	CountPlayer PlayerContext `json:"countPlayer,omitempty"`
	Criteria  *FieldCriteria `json:"criteria,omitempty"`
	EnergyTypes []EnergyType `json:"energyTypes,omitempty"`
}

// ValueKind discriminates EffectValue.
type ValueKind string

const (
	ValueConstant              ValueKind = "constant"
	ValuePlayerContextResolved ValueKind = "player-context-resolved"
	ValueResolved              ValueKind = "resolved"
	ValueMultiplication        ValueKind = "multiplication"
	ValueAddition              ValueKind = "addition"
	ValueCoinFlip              ValueKind = "coin-flip"
	ValueConditional           ValueKind = "conditional"
	ValueCount                 ValueKind = "count"
)

// PlayerContextSource enumerates sources for player-context-resolved values.
type PlayerContextSource string

const (
	SourceHandSize      PlayerContextSource = "hand-size"
	SourceCurrentPoints PlayerContextSource = "current-points"
	SourcePointsToWin   PlayerContextSource = "points-to-win"
)

// ResolvedSource enumerates sources for resolved values (against the
// context's already-resolved target player).
type ResolvedSource string

const (
	ResolvedCreatureCount       ResolvedSource = "creature-count"
	ResolvedBenchedCreatureCount ResolvedSource = "benched-creature-count"
	ResolvedEnergyCount         ResolvedSource = "energy-count"
	ResolvedDamageTaken         ResolvedSource = "damage-taken"
	ResolvedCardsInHand         ResolvedSource = "cards-in-hand"
)

// PlayerContext selects self or opponent relative to the effect's source player.
type PlayerContext string

const (
	ContextSelf     PlayerContext = "self"
	ContextOpponent PlayerContext = "opponent"
)

// CountType enumerates what a `count` EffectValue counts.
type CountType string

const (
	CountField  CountType = "field"
	CountEnergy CountType = "energy"
	CountCard   CountType = "card"
	CountDamage CountType = "damage"
)

// Const builds a constant EffectValue.
func Const(n int) EffectValue { return EffectValue{Kind: ValueConstant, Amount: n} }
