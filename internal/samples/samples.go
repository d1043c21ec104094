// Package samples provides the canonical example requirements, costs, effects,
// rarities and talents. Typed values are already normalized; raw values are
// shaped the way a form submits them, with defaults left out.
//
// Every call returns fresh values, so callers may modify what they get.
package samples

import (
	"github.com/KirkDiggler/talent-api/internal/entities/talents"
)

func intPtr(n int) *int {
	return &n
}

// Requirements returns the sample requirements
func Requirements() []talents.Requirement {
	return []talents.Requirement{
		talents.LevelRequirement{ID: "req-level-5", Min: 5},
		talents.StatRequirement{ID: "req-str-10", Stat: "strength", Min: 10},
		talents.LevelRequirement{ID: "req-level-3", Min: 3},
		talents.StatRequirement{ID: "req-cha-12", Stat: "charisma", Min: 12},
		talents.TalentRequirement{ID: "req-talent-basic-casting", TalentID: "basic-casting"},
		talents.TagRequirement{ID: "req-tag-pyromancy-2", Tag: "pyromancy", Count: intPtr(2)},
		talents.TagRequirement{ID: "req-tag-pyromancy-1", Tag: "pyromancy", Count: intPtr(1)},
		talents.ClassRequirement{ID: "req-class-mage", ClassID: "mage"},
	}
}

// Costs returns the sample cost components
func Costs() []talents.Cost {
	return []talents.Cost{
		talents.ResourceCost{ID: "cost-mana-20-cast", Resource: talents.ResourceMana, Amount: 20, Per: talents.PerCast},
		talents.ResourceCost{ID: "cost-mana-10-cast", Resource: talents.ResourceMana, Amount: 10, Per: talents.PerCast},
		talents.ResourceCost{ID: "cost-stamina-5-turn", Resource: talents.ResourceStamina, Amount: 5, Per: talents.PerTurn},
		talents.ResourceCost{
			ID: "cost-item-potion-1", Resource: talents.ResourceItem, Amount: 1, Per: talents.PerCast, ItemID: "health-potion",
		},
		talents.CooldownCost{ID: "cooldown-3", Turns: 3},
		talents.CooldownCost{ID: "cooldown-2", Turns: 2},
		talents.ChargesCost{ID: "charges-2-short-rest", Max: 2, Recharge: talents.RechargeShortRest},
	}
}

// Effects returns the sample effects
func Effects() []talents.Effect {
	return []talents.Effect{
		talents.StatModEffect{
			ID:       "eff-self-str-add-5-3t",
			Target:   talents.TargetSelf,
			Stat:     "strength",
			Op:       talents.OpAdd,
			Value:    talents.NumberAmount(5),
			Duration: talents.Duration{Type: talents.DurationTurns, Amount: 3},
			Stacking: talents.StackingStack,
		},
		talents.DamageEffect{
			ID:         "eff-fire-dmg-30",
			Target:     talents.TargetEnemy,
			DamageType: "fire",
			Amount:     talents.NumberAmount(30),
			Duration:   talents.Instant(),
		},
		talents.StatModEffect{
			ID:       "eff-ally-attack+10-2t",
			Target:   talents.TargetAlly,
			Stat:     "attack",
			Op:       talents.OpAdd,
			Value:    talents.NumberAmount(10),
			Duration: talents.Duration{Type: talents.DurationTurns, Amount: 2},
			Stacking: talents.StackingRefresh,
		},
		talents.HealEffect{
			ID:       "eff-heal-ally-20",
			Target:   talents.TargetAlly,
			Amount:   talents.NumberAmount(20),
			Duration: talents.Duration{Type: talents.DurationSeconds, Amount: 2},
		},
		talents.TagEffect{
			ID:       "eff-tag-burning-2t",
			Target:   talents.TargetEnemy,
			Action:   talents.TagAdd,
			Tag:      "burning",
			Duration: talents.Duration{Type: talents.DurationTurns, Amount: 2},
		},
		talents.DamageEffect{
			ID:         "eff-frost-dmg-2d6+3",
			Target:     talents.TargetArea,
			DamageType: "cold",
			Amount:     talents.DiceAmount(talents.DiceExpression{Count: 2, Sides: 6, Modifier: 3}),
			Duration:   talents.Instant(),
		},
	}
}

// Rarities returns the sample rarity tiers, most common first
func Rarities() []talents.Rarity {
	return []talents.Rarity{
		{ID: "rarity-common", Tier: "common", Weight: 1, Color: "#A0A0A0"},
		{ID: "rarity-uncommon", Tier: "uncommon", Weight: 0.7, Color: "#4CAF50"},
		{ID: "rarity-rare", Tier: "rare", Weight: 0.3, Color: "#2196F3"},
		{ID: "rarity-epic", Tier: "epic", Weight: 0.1, Color: "#9C27B0"},
		{ID: "rarity-legendary", Tier: "legendary", Weight: 0.02, Color: "#FFC107"},
	}
}

// Talents returns the sample talents
func Talents() []*talents.Talent {
	return []*talents.Talent{
		{
			ID:          "1",
			Name:        "Firebolt",
			Description: "Hurl a bolt of fire at an enemy",
			Tags:        []string{"pyromancy", "ranged"},
			Category:    "Offense",
			Requirements: []talents.Requirement{
				mustFind(Requirements(), "req-level-3"),
				mustFind(Requirements(), "req-tag-pyromancy-1"),
			},
			Costs: []talents.Cost{
				mustFind(Costs(), "cost-mana-20-cast"),
				mustFind(Costs(), "cooldown-2"),
			},
			Rarity:  findRarity("rarity-uncommon"),
			Effects: []talents.Effect{mustFind(Effects(), "eff-fire-dmg-30")},
			Rank:    1,
			MaxRank: 5,
		},
		{
			ID:           "2",
			Name:         "Battle Cry",
			Description:  "Bolster allies with a powerful shout",
			IsKeyTalent:  true,
			Tags:         []string{"support", "buff"},
			Category:     "Support",
			Requirements: []talents.Requirement{mustFind(Requirements(), "req-cha-12")},
			Costs:        []talents.Cost{mustFind(Costs(), "cost-stamina-5-turn")},
			Rarity:       findRarity("rarity-rare"),
			Effects:      []talents.Effect{mustFind(Effects(), "eff-ally-attack+10-2t")},
			Cooldown:     1,
			Rank:         1,
			MaxRank:      3,
		},
		{
			ID:           "3",
			Name:         "Shadow Brand",
			Description:  "Mark an enemy with a shadowy curse",
			Tags:         []string{"debuff", "shadow"},
			Category:     "Control",
			Requirements: []talents.Requirement{mustFind(Requirements(), "req-talent-basic-casting")},
			Costs:        []talents.Cost{mustFind(Costs(), "cost-mana-10-cast")},
			Rarity:       findRarity("rarity-epic"),
			Effects:      []talents.Effect{mustFind(Effects(), "eff-tag-burning-2t")},
			Rank:         1,
			MaxRank:      1,
		},
	}
}

// Talent returns the sample talent with the given name, or nil
func Talent(name string) *talents.Talent {
	for _, t := range Talents() {
		if t.Name == name {
			return t
		}
	}
	return nil
}

func mustFind[T interface{ GetID() string }](items []T, id string) T {
	for _, item := range items {
		if item.GetID() == id {
			return item
		}
	}
	panic("samples: unknown sample " + id)
}

func findRarity(id string) talents.Rarity {
	for _, r := range Rarities() {
		if r.ID == id {
			return r
		}
	}
	panic("samples: unknown rarity " + id)
}
