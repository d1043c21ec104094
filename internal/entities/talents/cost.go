package talents

import (
	"encoding/json"
	"fmt"
)

// CostKind discriminates cost variants
type CostKind string

// Cost kinds
const (
	CostResource CostKind = "resource"
	CostCooldown CostKind = "cooldown"
	CostCharges  CostKind = "charges"
)

// CostKinds lists every cost variant in declaration order
var CostKinds = []CostKind{CostResource, CostCooldown, CostCharges}

// ResourceType names what a resource cost spends
type ResourceType string

// Built-in resources. Deployments may configure others.
const (
	ResourceMana    ResourceType = "mana"
	ResourceStamina ResourceType = "stamina"
	ResourceGold    ResourceType = "gold"
	ResourceEnergy  ResourceType = "energy"
	ResourceItem    ResourceType = "item"
	ResourceEther   ResourceType = "ether"
	ResourceNone    ResourceType = "none"
)

// DefaultResources is the resource set used when none is configured
var DefaultResources = []ResourceType{
	ResourceMana, ResourceStamina, ResourceGold, ResourceEnergy, ResourceItem, ResourceNone,
}

// CostPer is how often a resource cost is paid
type CostPer string

// Payment cadences
const (
	PerCast   CostPer = "cast"
	PerTurn   CostPer = "turn"
	PerSecond CostPer = "second"
)

// CostPers lists the accepted cadences
var CostPers = []CostPer{PerCast, PerTurn, PerSecond}

// Recharge is when charges come back
type Recharge string

// Recharge triggers
const (
	RechargeShortRest Recharge = "short-rest"
	RechargeLongRest  Recharge = "long-rest"
	RechargeTime      Recharge = "time"
)

// Recharges lists the accepted recharge triggers
var Recharges = []Recharge{RechargeShortRest, RechargeLongRest, RechargeTime}

// Cost is what using a talent consumes
type Cost interface {
	Kind() CostKind
	GetID() string
	isCost()
}

// ResourceCost spends Amount of Resource every Per
type ResourceCost struct {
	ID       string       `json:"id,omitempty"`
	Resource ResourceType `json:"resource"`
	Amount   float64      `json:"amount"`
	Per      CostPer      `json:"per"`
	ItemID   string       `json:"itemId,omitempty"`
	MaxUses  *int         `json:"maxUses,omitempty"`
}

// CooldownCost locks the talent for a number of turns
type CooldownCost struct {
	ID    string `json:"id,omitempty"`
	Turns int    `json:"turns"`
}

// ChargesCost limits uses to Max until they recharge
type ChargesCost struct {
	ID       string   `json:"id,omitempty"`
	Max      int      `json:"max"`
	Recharge Recharge `json:"recharge,omitempty"`
}

func (ResourceCost) Kind() CostKind { return CostResource }
func (CooldownCost) Kind() CostKind { return CostCooldown }
func (ChargesCost) Kind() CostKind  { return CostCharges }

func (c ResourceCost) GetID() string { return c.ID }
func (c CooldownCost) GetID() string { return c.ID }
func (c ChargesCost) GetID() string  { return c.ID }

func (ResourceCost) isCost() {}
func (CooldownCost) isCost() {}
func (ChargesCost) isCost()  {}

// MarshalJSON includes the kind tag
func (c ResourceCost) MarshalJSON() ([]byte, error) {
	type alias ResourceCost
	return json.Marshal(struct {
		Kind CostKind `json:"kind"`
		alias
	}{c.Kind(), alias(c)})
}

// MarshalJSON includes the kind tag
func (c CooldownCost) MarshalJSON() ([]byte, error) {
	type alias CooldownCost
	return json.Marshal(struct {
		Kind CostKind `json:"kind"`
		alias
	}{c.Kind(), alias(c)})
}

// MarshalJSON includes the kind tag
func (c ChargesCost) MarshalJSON() ([]byte, error) {
	type alias ChargesCost
	return json.Marshal(struct {
		Kind CostKind `json:"kind"`
		alias
	}{c.Kind(), alias(c)})
}

// UnmarshalCost decodes a stored cost by its kind tag
func UnmarshalCost(data []byte) (Cost, error) {
	kind, err := peekKind(data)
	if err != nil {
		return nil, err
	}

	switch CostKind(kind) {
	case CostResource:
		return decodeAs[ResourceCost, Cost](data)
	case CostCooldown:
		return decodeAs[CooldownCost, Cost](data)
	case CostCharges:
		return decodeAs[ChargesCost, Cost](data)
	default:
		return nil, fmt.Errorf("unknown cost kind %q, expected one of: %s", kind, joinKinds(CostKinds))
	}
}
