package samples

// RawRequirements returns the sample requirements as submitted
func RawRequirements() []map[string]any {
	return []map[string]any{
		{"id": "req-level-5", "kind": "level", "min": 5.0},
		{"id": "req-str-10", "kind": "stat", "stat": "strength", "min": 10.0},
		{"id": "req-level-3", "kind": "level", "min": 3.0},
		{"id": "req-cha-12", "kind": "stat", "stat": "charisma", "min": 12.0},
		{"id": "req-talent-basic-casting", "kind": "talent", "talentId": "basic-casting"},
		{"id": "req-tag-pyromancy-2", "kind": "tag", "tag": "pyromancy", "count": 2.0},
		{"id": "req-tag-pyromancy-1", "kind": "tag", "tag": "pyromancy", "count": 1.0},
		{"id": "req-class-mage", "kind": "class", "classId": "mage"},
	}
}

// RawCosts returns the sample cost components as submitted
func RawCosts() []map[string]any {
	return []map[string]any{
		{"id": "cost-mana-20-cast", "kind": "resource", "resource": "mana", "amount": 20.0, "per": "cast"},
		{"id": "cost-mana-10-cast", "kind": "resource", "resource": "mana", "amount": 10.0},
		{"id": "cost-stamina-5-turn", "kind": "resource", "resource": "stamina", "amount": 5.0, "per": "turn"},
		{
			"id": "cost-item-potion-1", "kind": "resource", "resource": "item", "amount": 1.0, "per": "cast",
			"itemId": "health-potion",
		},
		{"id": "cooldown-3", "kind": "cooldown", "turns": 3.0},
		{"id": "cooldown-2", "kind": "cooldown", "turns": 2.0},
		{"id": "charges-2-short-rest", "kind": "charges", "max": 2.0, "recharge": "short-rest"},
	}
}

// RawEffects returns the sample effects as submitted
func RawEffects() []map[string]any {
	return []map[string]any{
		{
			"id": "eff-self-str-add-5-3t", "kind": "stat-mod", "target": "self", "stat": "strength", "op": "add",
			"value": 5.0, "duration": map[string]any{"type": "turns", "amount": 3.0}, "stacking": "stack",
		},
		{
			"id": "eff-fire-dmg-30", "kind": "damage", "target": "enemy", "damageType": "fire", "amount": 30.0,
			"duration": map[string]any{"type": "instant"},
		},
		{
			"id": "eff-ally-attack+10-2t", "kind": "stat-mod", "target": "ally", "stat": "attack",
			"value": "10", "duration": map[string]any{"type": "turns", "amount": 2.0}, "stacking": "refresh",
		},
		{
			"id": "eff-heal-ally-20", "kind": "heal", "amount": 20.0,
			"duration": map[string]any{"type": "seconds", "amount": 2.0},
		},
		{
			"id": "eff-tag-burning-2t", "kind": "tag", "action": "add", "tag": "burning",
			"duration": map[string]any{"type": "turns", "amount": 2.0},
		},
		{"id": "eff-frost-dmg-2d6+3", "kind": "damage", "target": "area", "damageType": "cold", "amount": "2d6+3"},
	}
}

// RawRarities returns the sample rarity tiers as submitted
func RawRarities() []map[string]any {
	return []map[string]any{
		{"id": "rarity-common", "tier": "common", "weight": 1.0, "color": "#A0A0A0"},
		{"id": "rarity-uncommon", "tier": "uncommon", "weight": 0.7, "color": "#4CAF50"},
		{"id": "rarity-rare", "tier": "rare", "weight": 0.3, "color": "#2196F3"},
		{"id": "rarity-epic", "tier": "epic", "weight": 0.1, "color": "#9C27B0"},
		{"id": "rarity-legendary", "tier": "legendary", "weight": 0.02, "color": "#FFC107"},
	}
}

// RawTalents returns the sample talents as submitted
func RawTalents() []map[string]any {
	return []map[string]any{
		{
			"id":           1.0,
			"name":         "Firebolt",
			"description":  "Hurl a bolt of fire at an enemy",
			"isKeyTalent":  false,
			"tags":         []any{"pyromancy", "ranged"},
			"category":     "Offense",
			"requirements": []any{rawByID(RawRequirements(), "req-level-3"), rawByID(RawRequirements(), "req-tag-pyromancy-1")},
			"costs":        []any{rawByID(RawCosts(), "cost-mana-20-cast"), rawByID(RawCosts(), "cooldown-2")},
			"rarity":       rawByID(RawRarities(), "rarity-uncommon"),
			"effects":      []any{rawByID(RawEffects(), "eff-fire-dmg-30")},
			"cooldown":     0.0,
			"rank":         1.0,
			"maxRank":      5.0,
		},
		{
			"id":           2.0,
			"name":         "Battle Cry",
			"description":  "Bolster allies with a powerful shout",
			"isKeyTalent":  true,
			"tags":         []any{"support", "buff"},
			"category":     "Support",
			"requirements": []any{rawByID(RawRequirements(), "req-cha-12")},
			"costs":        []any{rawByID(RawCosts(), "cost-stamina-5-turn")},
			"rarity":       rawByID(RawRarities(), "rarity-rare"),
			"effects":      []any{rawByID(RawEffects(), "eff-ally-attack+10-2t")},
			"cooldown":     1.0,
			"maxRank":      3.0,
		},
		{
			"id":           3.0,
			"name":         "Shadow Brand",
			"description":  "Mark an enemy with a shadowy curse",
			"tags":         []any{"debuff", "shadow"},
			"category":     "Control",
			"requirements": []any{rawByID(RawRequirements(), "req-talent-basic-casting")},
			"costs":        []any{rawByID(RawCosts(), "cost-mana-10-cast")},
			"rarity":       rawByID(RawRarities(), "rarity-epic"),
			"effects":      []any{rawByID(RawEffects(), "eff-tag-burning-2t")},
		},
	}
}

// RawTalent returns the raw sample talent with the given name, or nil
func RawTalent(name string) map[string]any {
	for _, t := range RawTalents() {
		if t["name"] == name {
			return t
		}
	}
	return nil
}

func rawByID(items []map[string]any, id string) map[string]any {
	for _, item := range items {
		if item["id"] == id {
			return item
		}
	}
	panic("samples: unknown sample " + id)
}
