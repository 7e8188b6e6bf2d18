package engine

// Card kinds, one representative per CardCategory (DESIGN.md: the card
// catalogue is a "representative, architecturally-complete subset" rather
// than the hundreds of named cards the original game ships).
const (
	CardLeaveItToMe              CardKind = iota + 1 // event: free swap, no dice cost
	CardSweetMadame                                  // food: heal the active character for 1
	CardThunderingPenance                            // talent: Keqing's talent equipment
	CardAquilaFavoniaCard                            // weapon: sword, on-hit heal
	CardCrimsonWitchOfFlamesCard                     // artifact: Pyro/reaction booster
	CardVanaranaCard                                 // support
	CardLiyueHarborWharfCard                         // support
	CardXudongTavernCard                             // support
	CardWindAndFreedom                               // event: combat status granting one fast action
	CardChangingShiftsCard                           // event: combat status discounting next swap
	CardAbyssalSummonsCard                           // event: Pyro resonance, requires 2+ Pyro characters
)

func init() {
	registerCard(&CardDescriptor{
		Kind: CardLeaveItToMe, Name: "Leave It to Me!", Category: CardEvent,
		Description: "Your next swap this round is a fast action.",
		Cost:        DiceRequirement{},
		Play: func(gs GameState, pid Pid, target *StaticTarget) []Effect {
			return []Effect{AddStatus{Target: StaticTarget{Pid: pid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusFreshWindOfFreedom, 1)}}
		},
	})

	registerCard(&CardDescriptor{
		Kind: CardSweetMadame, Name: "Sweet Madame", Category: CardFood,
		Description: "Heal your active character for 1 HP.",
		Cost:        DiceRequirement{Any: 1},
		Play: func(gs GameState, pid Pid, target *StaticTarget) []Effect {
			active, ok := gs.Player(pid).ActiveCharacter()
			if !ok {
				return nil
			}
			return []Effect{RecoverHP{Target: CharTarget(pid, active.Id), Amount: 1}}
		},
	})

	registerCard(&CardDescriptor{
		Kind: CardThunderingPenance, Name: "Thundering Penance", Category: CardTalentEquipment,
		Description:       "Equip Keqing. Her Elemental Skill costs 1 less.",
		Cost:              DiceRequirement{SameElem: 3},
		RequiresCharacter: CharKeqing, HasCharacterReq: true,
		EquipStatus: StatusEngulfingLightning,
	})

	registerCard(&CardDescriptor{
		Kind: CardAquilaFavoniaCard, Name: "Aquila Favonia", Category: CardWeaponEquipment,
		Description: "Equip a sword-wielding character. On taking damage while active, heal 1.",
		Cost:        DiceRequirement{SameElem: 3},
		EquipStatus: StatusAquilaFavonia,
	})

	registerCard(&CardDescriptor{
		Kind: CardCrimsonWitchOfFlamesCard, Name: "Crimson Witch of Flames", Category: CardArtifactEquipment,
		Description: "Equip any character. Pyro damage dealt +1; Vaporize/Melt bonus +1.",
		Cost:        DiceRequirement{SameElem: 2},
		EquipStatus: StatusCrimsonWitchOfFlames,
	})

	registerCard(&CardDescriptor{
		Kind: CardVanaranaCard, Name: "Vanarana", Category: CardSupport,
		Description:   "When you roll dice, fix up to 2 of them as Omni dice.",
		Cost:          DiceRequirement{Any: 2},
		SupportStatus: SupportVanarana,
	})

	registerCard(&CardDescriptor{
		Kind: CardLiyueHarborWharfCard, Name: "Liyue Harbor Wharf", Category: CardSupport,
		Description:   "At the start of each of your next 3 rounds, draw no additional effect (reserved slot).",
		Cost:          DiceRequirement{Any: 2},
		SupportStatus: SupportLiyueHarborWharf,
	})

	registerCard(&CardDescriptor{
		Kind: CardXudongTavernCard, Name: "Xudong's Tavern", Category: CardSupport,
		Description:   "Your next 3 card plays this match cost 1 less.",
		Cost:          DiceRequirement{Any: 1},
		SupportStatus: SupportXudongTavern,
	})

	registerCard(&CardDescriptor{
		Kind: CardWindAndFreedom, Name: "Wind and Freedom", Category: CardEvent,
		Description: "Create Fresh Wind of Freedom: your next skill this round is a fast action.",
		Cost:        DiceRequirement{},
		Play: func(gs GameState, pid Pid, target *StaticTarget) []Effect {
			return []Effect{AddStatus{Target: StaticTarget{Pid: pid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusFreshWindOfFreedom, 1)}}
		},
	})

	registerCard(&CardDescriptor{
		Kind: CardChangingShiftsCard, Name: "Changing Shifts", Category: CardEvent,
		Description: "Your next swap this round costs 1 less.",
		Cost:        DiceRequirement{},
		Play: func(gs GameState, pid Pid, target *StaticTarget) []Effect {
			return []Effect{AddStatus{Target: StaticTarget{Pid: pid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusChangingShifts, 1)}}
		},
	})

	registerCard(&CardDescriptor{
		Kind: CardAbyssalSummonsCard, Name: "Abyssal Summons", Category: CardEvent,
		Description:     "Elemental Resonance: Fervent Flames. Requires 2+ Pyro characters. This round, your Vaporize/Melt/Overloaded/Burning damage is increased by 3.",
		Cost:            DiceRequirement{SameElem: 1},
		RequiresElement: Pyro, HasElementReq: true,
		Play: func(gs GameState, pid Pid, target *StaticTarget) []Effect {
			return []Effect{AddStatus{Target: StaticTarget{Pid: pid, Zone: ZoneCombat}, Inst: NewStatusInstance(StatusFerventFlamesResonance, 1)}}
		},
	})
}
