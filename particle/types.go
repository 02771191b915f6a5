package particle

import (
	"math/rand"
	"strings"
)

// Type identifies a particle kind by its canonical lowercase name.
// The set mirrors the vanilla particle registry; hosts are free to accept
// additional names, the library never validates against this list.
type Type string

// Common particle kinds. Shape samplers work with any of them, but dust is
// the only kind that carries color data.
const (
	AmbientEntityEffect Type = "ambient_entity_effect"
	AngryVillager       Type = "angry_villager"
	Ash                 Type = "ash"
	Bubble              Type = "bubble"
	BubblePop           Type = "bubble_pop"
	CampfireSmoke       Type = "campfire_cosy_smoke"
	Cloud               Type = "cloud"
	Composter           Type = "composter"
	Crit                Type = "crit"
	DamageIndicator     Type = "damage_indicator"
	DragonBreath        Type = "dragon_breath"
	DrippingLava        Type = "dripping_lava"
	DrippingWater       Type = "dripping_water"
	Dust                Type = "dust"
	Effect              Type = "effect"
	Enchant             Type = "enchant"
	EnchantedHit        Type = "enchanted_hit"
	EndRod              Type = "end_rod"
	EntityEffect        Type = "entity_effect"
	Explosion           Type = "explosion"
	FallingDust         Type = "falling_dust"
	Firework            Type = "firework"
	Fishing             Type = "fishing"
	Flame               Type = "flame"
	Flash               Type = "flash"
	HappyVillager       Type = "happy_villager"
	Heart               Type = "heart"
	InstantEffect       Type = "instant_effect"
	Lava                Type = "lava"
	Mycelium            Type = "mycelium"
	Note                Type = "note"
	Poof                Type = "poof"
	Portal              Type = "portal"
	Rain                Type = "rain"
	Smoke               Type = "smoke"
	Snowball            Type = "snowball"
	SoulFireFlame       Type = "soul_fire_flame"
	Spit                Type = "spit"
	Splash              Type = "splash"
	SweepAttack         Type = "sweep_attack"
	TotemOfUndying      Type = "totem_of_undying"
	Underwater          Type = "underwater"
	Witch               Type = "witch"
)

// aliases maps legacy uppercase registry names to their modern kinds.
// Pre-flattening servers used these enum names.
var aliases = map[string]Type{
	"redstone":          Dust,
	"enchantment_table": Enchant,
	"magic_crit":        EnchantedHit,
	"crit_magic":        EnchantedHit,
	"explosion_normal":  Poof,
	"explosion_huge":    Explosion,
	"smoke_normal":      Smoke,
	"smoke_large":       Smoke,
	"spell":             Effect,
	"spell_instant":     InstantEffect,
	"spell_mob":         EntityEffect,
	"spell_witch":       Witch,
	"drip_lava":         DrippingLava,
	"drip_water":        DrippingWater,
	"villager_angry":    AngryVillager,
	"villager_happy":    HappyVillager,
	"town_aura":         Mycelium,
	"suspended_depth":   Underwater,
	"water_bubble":      Bubble,
	"water_splash":      Splash,
	"water_drop":        Rain,
	"water_wake":        Fishing,
	"fireworks_spark":   Firework,
	"totem":             TotemOfUndying,
	"snow_shovel":       Poof,
}

// ByName resolves a particle name to its canonical Type. Lookup is
// case-insensitive and understands legacy enum names, so "REDSTONE" and
// "dust" resolve to the same kind. Returns false for unknown names.
func ByName(name string) (Type, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}
	if t, ok := aliases[n]; ok {
		return t, true
	}
	t := Type(n)
	if knownTypes[t] {
		return t, true
	}
	return "", false
}

// RandomOf picks a random particle from the given kinds.
// Panics if called with no arguments.
func RandomOf(types ...Type) Type {
	return types[rand.Intn(len(types))]
}

var knownTypes = func() map[Type]bool {
	all := []Type{
		AmbientEntityEffect, AngryVillager, Ash, Bubble, BubblePop,
		CampfireSmoke, Cloud, Composter, Crit, DamageIndicator, DragonBreath,
		DrippingLava, DrippingWater, Dust, Effect, Enchant, EnchantedHit,
		EndRod, EntityEffect, Explosion, FallingDust, Firework, Fishing,
		Flame, Flash, HappyVillager, Heart, InstantEffect, Lava, Mycelium,
		Note, Poof, Portal, Rain, Smoke, Snowball, SoulFireFlame, Spit,
		Splash, SweepAttack, TotemOfUndying, Underwater, Witch,
	}
	m := make(map[Type]bool, len(all))
	for _, t := range all {
		m[t] = true
	}
	return m
}()
