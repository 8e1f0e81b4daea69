package pokedex

// Ability is a passive battle effect carried by a Pokémon. Zero is not a
// valid ability.
type Ability uint8

const (
	AbilityStench Ability = iota + 1
	AbilityDrizzle
	AbilitySpeedBoost
	AbilityBattleArmor
	AbilitySturdy
	AbilityDamp
	AbilityLimber
	AbilitySandVeil
	AbilityStatic
	AbilityVoltAbsorb
	AbilityWaterAbsorb
	AbilityOblivious
	AbilityCloudNine
	AbilityCompoundEyes
	AbilityInsomnia
	AbilityColorChange
	AbilityImmunity
	AbilityFlashFire
	AbilityShieldDust
	AbilityOwnTempo
	AbilitySuctionCups
	AbilityIntimidate
	AbilityShadowTag
	AbilityRoughSkin
	AbilityWonderGuard
	AbilityLevitate
	AbilityEffectSpore
	AbilitySynchronize
	AbilityClearBody
	AbilityNaturalCure
	AbilityLightningRod
	AbilitySereneGrace
	AbilitySwiftSwim
	AbilityChlorophyll
	AbilityIlluminate
	AbilityTrace
	AbilityHugePower
	AbilityPoisonPoint
	AbilityInnerFocus
	AbilityMagmaArmor
	AbilityWaterVeil
	AbilityMagnetPull
	AbilitySoundproof
	AbilityRainDish
	AbilitySandStream
	AbilityPressure
	AbilityThickFat
	AbilityEarlyBird
	AbilityFlameBody
	AbilityRunAway
	AbilityKeenEye
	AbilityHyperCutter
	AbilityPickup
	AbilityTruant
	AbilityHustle
	AbilityCuteCharm
	AbilityPlus
	AbilityMinus
	AbilityForecast
	AbilityStickyHold
	AbilityShedSkin
	AbilityGuts
	AbilityMarvelScale
	AbilityLiquidOoze
	AbilityOvergrow
	AbilityBlaze
	AbilityTorrent
	AbilitySwarm
	AbilityRockHead
	AbilityDrought
	AbilityArenaTrap
	AbilityVitalSpirit
	AbilityWhiteSmoke
	AbilityPurePower
	AbilityShellArmor
	AbilityAirLock
	AbilityTangledFeet
	AbilityMotorDrive
	AbilityRivalry
	AbilitySteadfast
	AbilitySnowCloak
	AbilityGluttony
	AbilityAngerPoint
	AbilityUnburden
	AbilityHeatproof
	AbilitySimple
	AbilityDrySkin
	AbilityDownload
	AbilityIronFist
	AbilityPoisonHeal
	AbilityAdaptability
	AbilitySkillLink
	AbilityHydration
	AbilitySolarPower
	AbilityQuickFeet
	AbilityNormalize
	AbilitySniper
	AbilityMagicGuard
	AbilityNoGuard
	AbilityStall
	AbilityTechnician
	AbilityLeafGuard
	AbilityKlutz
	AbilityMoldBreaker
	AbilitySuperLuck
	AbilityAftermath
	AbilityAnticipation
	AbilityForewarn
	AbilityUnaware
	AbilityTintedLens
	AbilityFilter
	AbilitySlowStart
	AbilityScrappy
	AbilityStormDrain
	AbilityIceBody
	AbilitySolidRock
	AbilitySnowWarning
	AbilityHoneyGather
	AbilityFrisk
	AbilityReckless
	AbilityMultitype
	AbilityFlowerGift
	AbilityBadDreams
	AbilityPickpocket
	AbilitySheerForce
	AbilityContrary
	AbilityUnnerve
	AbilityDefiant
	AbilityDefeatist
	AbilityCursedBody
	AbilityHealer
	AbilityFriendGuard
	AbilityWeakArmor
	AbilityHeavyMetal
	AbilityLightMetal
	AbilityMultiscale
	AbilityToxicBoost
	AbilityFlareBoost
	AbilityHarvest
	AbilityTelepathy
	AbilityMoody
	AbilityOvercoat
	AbilityPoisonTouch
	AbilityRegenerator
	AbilityBigPecks
	AbilitySandRush
	AbilityWonderSkin
	AbilityAnalytic
	AbilityIllusion
	AbilityImposter
	AbilityInfiltrator
	AbilityMummy
	AbilityMoxie
	AbilityJustified
	AbilityRattled
	AbilityMagicBounce
	AbilitySapSipper
	AbilityPrankster
	AbilitySandForce
	AbilityIronBarbs
	AbilityZenMode
	AbilityVictoryStar
	AbilityTurboblaze
	AbilityTeravolt
)

// AbilityCount is the number of abilities through generation V.
const AbilityCount = 164

var abilityNames = [AbilityCount]string{
	"Stench", "Drizzle", "SpeedBoost", "BattleArmor", "Sturdy",
	"Damp", "Limber", "SandVeil", "Static", "VoltAbsorb",
	"WaterAbsorb", "Oblivious", "CloudNine", "CompoundEyes", "Insomnia",
	"ColorChange", "Immunity", "FlashFire", "ShieldDust", "OwnTempo",
	"SuctionCups", "Intimidate", "ShadowTag", "RoughSkin", "WonderGuard",
	"Levitate", "EffectSpore", "Synchronize", "ClearBody", "NaturalCure",
	"LightningRod", "SereneGrace", "SwiftSwim", "Chlorophyll", "Illuminate",
	"Trace", "HugePower", "PoisonPoint", "InnerFocus", "MagmaArmor",
	"WaterVeil", "MagnetPull", "Soundproof", "RainDish", "SandStream",
	"Pressure", "ThickFat", "EarlyBird", "FlameBody", "RunAway",
	"KeenEye", "HyperCutter", "Pickup", "Truant", "Hustle",
	"CuteCharm", "Plus", "Minus", "Forecast", "StickyHold",
	"ShedSkin", "Guts", "MarvelScale", "LiquidOoze", "Overgrow",
	"Blaze", "Torrent", "Swarm", "RockHead", "Drought",
	"ArenaTrap", "VitalSpirit", "WhiteSmoke", "PurePower", "ShellArmor",
	"AirLock", "TangledFeet", "MotorDrive", "Rivalry", "Steadfast",
	"SnowCloak", "Gluttony", "AngerPoint", "Unburden", "Heatproof",
	"Simple", "DrySkin", "Download", "IronFist", "PoisonHeal",
	"Adaptability", "SkillLink", "Hydration", "SolarPower", "QuickFeet",
	"Normalize", "Sniper", "MagicGuard", "NoGuard", "Stall",
	"Technician", "LeafGuard", "Klutz", "MoldBreaker", "SuperLuck",
	"Aftermath", "Anticipation", "Forewarn", "Unaware", "TintedLens",
	"Filter", "SlowStart", "Scrappy", "StormDrain", "IceBody",
	"SolidRock", "SnowWarning", "HoneyGather", "Frisk", "Reckless",
	"Multitype", "FlowerGift", "BadDreams", "Pickpocket", "SheerForce",
	"Contrary", "Unnerve", "Defiant", "Defeatist", "CursedBody",
	"Healer", "FriendGuard", "WeakArmor", "HeavyMetal", "LightMetal",
	"Multiscale", "ToxicBoost", "FlareBoost", "Harvest", "Telepathy",
	"Moody", "Overcoat", "PoisonTouch", "Regenerator", "BigPecks",
	"SandRush", "WonderSkin", "Analytic", "Illusion", "Imposter",
	"Infiltrator", "Mummy", "Moxie", "Justified", "Rattled",
	"MagicBounce", "SapSipper", "Prankster", "SandForce", "IronBarbs",
	"ZenMode", "VictoryStar", "Turboblaze", "Teravolt",
}

func (a Ability) String() string {
	if a < 1 || int(a) > len(abilityNames) {
		return "Ability(?)"
	}
	return abilityNames[a-1]
}

func abilityFromVeekun(v uint64) (Ability, bool) {
	if v < 1 || v > AbilityCount {
		return 0, false
	}
	return Ability(v), true
}
