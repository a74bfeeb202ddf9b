package model

// FieldTarget is a tagged union describing how to pick one or more field
// positions. Resolvers translate it into concrete FieldPosition values; see
// resolver.Field.
//
// @name FieldTarget
type FieldTarget struct {
	Kind FieldTargetKind `json:"kind"`

	// Fixed
	Player   PlayerContext `json:"player,omitempty"`
	Position FieldPosition `json:"position,omitempty"`

	// SingleChoice / MultiChoice / AllMatching
	Chooser  PlayerContext  `json:"chooser,omitempty"`
	Criteria *FieldCriteria `json:"criteria,omitempty"`
	Count    int            `json:"count,omitempty"`

	// Resolved — already concrete
	Targets []ConcreteField `json:"targets,omitempty"`

	// ForceExplicitSelection overrides the "exactly one candidate
	// auto-resolves" rule (specification §4.4: bench-damage effects always
	// force explicit selection for fairness).
	ForceExplicitSelection bool `json:"forceExplicitSelection,omitempty"`
}

// FieldTargetKind discriminates FieldTarget.
type FieldTargetKind string

const (
	FieldFixed       FieldTargetKind = "fixed"
	FieldSingleChoice FieldTargetKind = "single-choice"
	FieldMultiChoice FieldTargetKind = "multi-choice"
	FieldAllMatching FieldTargetKind = "all-matching"
	FieldResolved    FieldTargetKind = "resolved"
)

// ConcreteField identifies one field position: which player's side, and the
// index into that side's stacks (0 = active, 1..3 = bench).
//
// @name ConcreteField
type ConcreteField struct {
	PlayerIndex int `json:"playerIndex"`
	FieldIndex  int `json:"fieldIndex"`
}

// EnergyTarget wraps a FieldTarget plus an energy-type filter and a count of
// energy units to select from the resolved field position(s).
//
// @name EnergyTarget
type EnergyTarget struct {
	Field       FieldTarget    `json:"field"`
	EnergyTypes []EnergyType   `json:"energyTypes,omitempty"`
	Count       int            `json:"count"`
}

// ConcreteEnergy is one resolved energy target: the field position it was
// attached to, and the histogram of units selected from it.
//
// @name ConcreteEnergy
type ConcreteEnergy struct {
	Field     ConcreteField   `json:"field"`
	Histogram EnergyHistogram `json:"histogram"`
}

// CardZone identifies a player's zone.
type CardZone string

const (
	ZoneHand    CardZone = "hand"
	ZoneDeck    CardZone = "deck"
	ZoneDiscard CardZone = "discard"
	ZoneField   CardZone = "field"
)

// CardTarget is a tagged union describing how to pick cards from a zone.
//
// @name CardTarget
type CardTarget struct {
	Kind FieldTargetKind `json:"kind"`

	Player PlayerContext `json:"player,omitempty"`
	Zone   CardZone      `json:"zone,omitempty"`

	Chooser PlayerContext `json:"chooser,omitempty"`
	Count   int           `json:"count,omitempty"`

	Targets []ConcreteCard `json:"targets,omitempty"`
}

// ConcreteCard identifies one resolved card by its stable instance id.
//
// @name ConcreteCard
type ConcreteCard struct {
	PlayerIndex int    `json:"playerIndex"`
	InstanceID  string `json:"instanceId"`
}
