package engine

// Character kinds. Eight characters spanning all seven elements plus a
// second Pyro character, chosen so every reaction in reaction.go has at
// least one character on each side able to trigger it (DESIGN.md: "a
// representative, architecturally-complete subset" rather than the
// hundreds-of-cards original roster).
const (
	CharKeqing CharacterKind = iota + 1
	CharKlee
	CharXingqiu
	CharNoelle
	CharKaeya
	CharCollei
	CharSucrose
	CharYoimiya
)

func init() {
	registerCharacter(&CharacterDescriptor{
		Kind: CharKeqing, Name: "Keqing", Element: Electro, Weapon: WeaponSword,
		MaxHP: 10, MaxEnergy: 3, Talent: StatusEngulfingLightning,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Yunlai Swordsmanship", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Stellar Restoration", Element: Electro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Electro, Amount: 3, DamageType: DamageFromElementalSkill}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Starward Sword", Element: Electro,
				Cost: DiceRequirement{SameElem: 4},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Electro, Amount: 4, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharKlee, Name: "Klee", Element: Pyro, Weapon: WeaponCatalyst,
		MaxHP: 10, MaxEnergy: 3,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Kaboom!", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Jumpy Dumpty", Element: Pyro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Pyro, Amount: 3, DamageType: DamageFromElementalSkill}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Sparks'n'Splash", Element: Pyro,
				Cost: DiceRequirement{SameElem: 4},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Pyro, Amount: 3, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharXingqiu, Name: "Xingqiu", Element: Hydro, Weapon: WeaponSword,
		MaxHP: 10, MaxEnergy: 3,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Guhua Style", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Fatal Rainscreen", Element: Hydro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{
						ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Hydro, Amount: 1, DamageType: DamageFromElementalSkill},
						AddStatus{Target: StaticTarget{Pid: pid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusRainSwordShield, 1).WithExtra("amount", 1)},
					}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Rain Sword", Element: Hydro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Hydro, Amount: 1, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharNoelle, Name: "Noelle", Element: Geo, Weapon: WeaponClaymore,
		MaxHP: 12, MaxEnergy: 3,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Favonius Bladework", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Breastplate", Element: Geo,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{RecoverHP{Target: self, Amount: 1}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Sweeping Time", Element: Geo,
				Cost: DiceRequirement{SameElem: 4},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Geo, Amount: 4, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharKaeya, Name: "Kaeya", Element: Cryo, Weapon: WeaponSword,
		MaxHP: 10, MaxEnergy: 3,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Ceremonial Bladework", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Frostgnaw", Element: Cryo,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Cryo, Amount: 3, DamageType: DamageFromElementalSkill}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Glacial Waltz", Element: Cryo,
				Cost: DiceRequirement{SameElem: 4},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Cryo, Amount: 1, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharCollei, Name: "Collei", Element: Dendro, Weapon: WeaponBow,
		MaxHP: 10, MaxEnergy: 3,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Supplementary Aim", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Floral Brush", Element: Dendro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Dendro, Amount: 1, DamageType: DamageFromElementalSkill}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Trump-Card Kitty", Element: Dendro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Dendro, Amount: 3, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharSucrose, Name: "Sucrose", Element: Anemo, Weapon: WeaponCatalyst,
		MaxHP: 10, MaxEnergy: 3,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "E Pluribus Unum", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 1, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Astable Anemohypostasis Creation", Element: Anemo,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Anemo, Amount: 1, DamageType: DamageFromElementalSkill}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Forbidden Creation - Isomer 75/Type II", Element: Anemo,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Anemo, Amount: 1, DamageType: DamageFromElementalBurst}}
				}},
		},
	})

	registerCharacter(&CharacterDescriptor{
		Kind: CharYoimiya, Name: "Yoimiya", Element: Pyro, Weapon: WeaponBow,
		MaxHP: 10, MaxEnergy: 2, Talent: StatusNone,
		Skills: []SkillDescriptor{
			{Id: 1, Kind: SkillNormalAttack, Name: "Firework Flare-Up", Element: Physical,
				Cost: DiceRequirement{SameElem: 1, Any: 2},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Physical, Amount: 2, DamageType: DamageFromNormalAttack}}
				}},
			{Id: 2, Kind: SkillElementalSkill, Name: "Niwabi Fire-Dance", Element: Pyro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{AddStatus{Target: self, Inst: NewStatusInstance(StatusPyroInfusion, 2)}}
				}},
			{Id: 3, Kind: SkillElementalBurst, Name: "Ryuukin Saxifrage", Element: Pyro,
				Cost: DiceRequirement{SameElem: 3},
				Execute: func(gs GameState, pid Pid, self StaticTarget) []Effect {
					return []Effect{ReferredDamage{Source: self, TargetPid: pid.Other(), Dynamic: DynActive, Element: Pyro, Amount: 4, DamageType: DamageFromElementalBurst}}
				}},
		},
	})
}
