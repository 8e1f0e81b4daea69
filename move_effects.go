package pokedex

import "math"

// Effect is the battle effect of a move. Some effects are shared among
// several moves, others belong to a single move and carry its name. Zero is
// not a valid effect; the identifier space has gaps where no generation V
// move uses the effect.
type Effect uint16

const (
	EffectRegularDamage                       Effect = 1
	EffectSleepTarget                         Effect = 2
	EffectChancePoisonTarget                  Effect = 3
	EffectHealUserHalfInflicted               Effect = 4
	EffectChanceBurnTarget                    Effect = 5
	EffectChanceFreezeTarget                  Effect = 6
	EffectChanceParalyzeTarget                Effect = 7
	EffectFaintUser                           Effect = 8
	EffectDreamEater                          Effect = 9
	EffectMirrorMove                          Effect = 10
	EffectRaiseUserAttack                     Effect = 11
	EffectRaiseUserDefense                    Effect = 12
	EffectRaiseUserSpecialAttack              Effect = 14
	EffectRaiseUserEvasion                    Effect = 17
	EffectNeverMisses                         Effect = 18
	EffectLowerTargetAttack                   Effect = 19
	EffectLowerTargetDefense                  Effect = 20
	EffectLowerTargetSpeed                    Effect = 21
	EffectLowerTargetAccuracy                 Effect = 24
	EffectLowerTargetEvasion                  Effect = 25
	EffectHaze                                Effect = 26
	EffectBide                                Effect = 27
	EffectHit2To3TurnsThenConfuseUser         Effect = 28
	EffectSwitchOutTarget                     Effect = 29
	EffectHit2To5Times                        Effect = 30
	EffectConversion                          Effect = 31
	EffectChanceFlinchTarget                  Effect = 32
	EffectHealUserByHalfMaxHP                 Effect = 33
	EffectToxic                               Effect = 34
	EffectPayDay                              Effect = 35
	EffectLightScreen                         Effect = 36
	EffectTriAttack                           Effect = 37
	EffectRest                                Effect = 38
	EffectOneHitKO                            Effect = 39
	EffectRazorWind                           Effect = 40
	EffectSuperFang                           Effect = 41
	EffectDragonRage                          Effect = 42
	EffectSixteenthHP2To5Turns                Effect = 43
	EffectIncreasedCritical                   Effect = 44
	EffectHitTwice                            Effect = 45
	EffectHalfRecoilIfMiss                    Effect = 46
	EffectMist                                Effect = 47
	EffectFocusEnergy                         Effect = 48
	EffectQuarterRecoil                       Effect = 49
	EffectConfuseTarget                       Effect = 50
	EffectRaiseUserAttack2                    Effect = 51
	EffectRaiseUserDefense2                   Effect = 52
	EffectRaiseUserSpeed2                     Effect = 53
	EffectRaiseUserSpecialAttack2             Effect = 54
	EffectRaiseUserSpecialDefense2            Effect = 55
	EffectTransform                           Effect = 58
	EffectLowerTargetAttack2                  Effect = 59
	EffectLowerTargetDefense2                 Effect = 60
	EffectLowerTargetSpeed2                   Effect = 61
	EffectLowerTargetSpecialDefense2          Effect = 63
	EffectReflect                             Effect = 66
	EffectPoisonTarget                        Effect = 67
	EffectParalyzeTarget                      Effect = 68
	EffectChanceLowerTargetAttack             Effect = 69
	EffectChanceLowerTargetDefense            Effect = 70
	EffectChanceLowerTargetSpeed              Effect = 71
	EffectChanceLowerTargetSpecialAttack      Effect = 72
	EffectChanceLowerTargetSpecialDefense     Effect = 73
	EffectChanceLowerTargetAccuracy           Effect = 74
	EffectSkyAttack                           Effect = 76
	EffectChanceConfuseTarget                 Effect = 77
	EffectTwineedle                           Effect = 78
	EffectVitalThrow                          Effect = 79
	EffectSubstitute                          Effect = 80
	EffectRechargeNextTurn                    Effect = 81
	EffectRage                                Effect = 82
	EffectMimic                               Effect = 83
	EffectMetronome                           Effect = 84
	EffectLeechSeed                           Effect = 85
	EffectSplash                              Effect = 86
	EffectDisable                             Effect = 87
	EffectUserLevelDamage                     Effect = 88
	EffectPsywave                             Effect = 89
	EffectCounter                             Effect = 90
	EffectEncore                              Effect = 91
	EffectPainSplit                           Effect = 92
	EffectSnore                               Effect = 93
	EffectConversion2                         Effect = 94
	EffectGuaranteeNextMoveHit                Effect = 95
	EffectSketch                              Effect = 96
	EffectSleepTalk                           Effect = 98
	EffectDestinyBond                         Effect = 99
	EffectMoreDamageWhenLessUserHP            Effect = 100
	EffectSpite                               Effect = 101
	EffectFalseSwipe                          Effect = 102
	EffectCurePartyStatus                     Effect = 103
	EffectFast                                Effect = 104
	EffectTripleKick                          Effect = 105
	EffectTakeTargetItem                      Effect = 106
	EffectPreventTargetLeaving                Effect = 107
	EffectNightmare                           Effect = 108
	EffectMinimize                            Effect = 109
	EffectCurse                               Effect = 110
	EffectPreventHitUser                      Effect = 112
	EffectSpikes                              Effect = 113
	EffectResetTargetEvadeDisableGhostImmune  Effect = 114
	EffectPerishSong                          Effect = 115
	EffectSandstorm                           Effect = 116
	EffectEndure                              Effect = 117
	EffectDoubleEachSuccessiveUseMod5Turns    Effect = 118
	EffectSwagger                             Effect = 119
	EffectFuryCutter                          Effect = 120
	EffectAttract                             Effect = 121
	EffectReturn                              Effect = 122
	EffectPresent                             Effect = 123
	EffectFrustration                         Effect = 124
	EffectSafeguard                           Effect = 125
	EffectChanceBurnTargetThawUser            Effect = 126
	EffectMagnitude                           Effect = 127
	EffectBatonPass                           Effect = 128
	EffectPursuit                             Effect = 129
	EffectRapidSpin                           Effect = 130
	EffectSonicBoom                           Effect = 131
	EffectHealUserByHalfMaxHPWeather          Effect = 133
	EffectHiddenPower                         Effect = 136
	EffectRainDance                           Effect = 137
	EffectSunnyDay                            Effect = 138
	EffectChanceRaiseUserDefense              Effect = 139
	EffectChanceRaiseUserAttack               Effect = 140
	EffectChanceRaiseUserAllStats             Effect = 141
	EffectBellyDrum                           Effect = 143
	EffectPsychUp                             Effect = 144
	EffectMirrorCoat                          Effect = 145
	EffectSkullBash                           Effect = 146
	EffectTwister                             Effect = 147
	EffectEarthquake                          Effect = 148
	EffectHitTargetInTwoTurns                 Effect = 149
	EffectGust                                Effect = 150
	EffectChanceFlinchTargetDoubleMinimized   Effect = 151
	EffectSolarBeam                           Effect = 152
	EffectThunder                             Effect = 153
	EffectTeleport                            Effect = 154
	EffectBeatUp                              Effect = 155
	EffectFly                                 Effect = 156
	EffectDefenseCurl                         Effect = 157
	EffectFakeOut                             Effect = 159
	EffectUproar                              Effect = 160
	EffectStockpile                           Effect = 161
	EffectSpitUp                              Effect = 162
	EffectSwallow                             Effect = 163
	EffectHail                                Effect = 165
	EffectTorment                             Effect = 166
	EffectFlatter                             Effect = 167
	EffectWillOWisp                           Effect = 168
	EffectMemento                             Effect = 169
	EffectFacade                              Effect = 170
	EffectFocusPunch                          Effect = 171
	EffectSmellingSalts                       Effect = 172
	EffectTargetUserThisTurn                  Effect = 173
	EffectNaturePower                         Effect = 174
	EffectCharge                              Effect = 175
	EffectTaunt                               Effect = 176
	EffectHelpingHand                         Effect = 177
	EffectSwapItems                           Effect = 178
	EffectRolePlay                            Effect = 179
	EffectWish                                Effect = 180
	EffectAssist                              Effect = 181
	EffectIngrain                             Effect = 182
	EffectSuperpower                          Effect = 183
	EffectMagicCoat                           Effect = 184
	EffectRecycle                             Effect = 185
	EffectDoubleDamageIfUserHit               Effect = 186
	EffectBrickBreak                          Effect = 187
	EffectYawn                                Effect = 188
	EffectKnockOff                            Effect = 189
	EffectEndeavor                            Effect = 190
	EffectMoreDamageWhenMoreUserHP            Effect = 191
	EffectSkillSwap                           Effect = 192
	EffectImprison                            Effect = 193
	EffectRefresh                             Effect = 194
	EffectGrudge                              Effect = 195
	EffectSnatch                              Effect = 196
	EffectMoreDamageWhenTargetHeavier         Effect = 197
	EffectSecretPower                         Effect = 198
	EffectThirdRecoil                         Effect = 199
	EffectTeeterDance                         Effect = 200
	EffectBlazeKick                           Effect = 201
	EffectMudSport                            Effect = 202
	EffectPoisonFang                          Effect = 203
	EffectWeatherBall                         Effect = 204
	EffectLowerUserSpecialAttack2AfterDamage  Effect = 205
	EffectLowerTargetAttackDefense            Effect = 206
	EffectRaiseUserDefenseSpecialDefense      Effect = 207
	EffectSkyUppercut                         Effect = 208
	EffectRaiseUserAttackDefense              Effect = 209
	EffectIncreasedCriticalChancePoisonTarget Effect = 210
	EffectWaterSport                          Effect = 211
	EffectRaiseUserSpecialAttackDefense       Effect = 212
	EffectRaiseUserAttackSpeed                Effect = 213
	EffectCamouflage                          Effect = 214
	EffectRoost                               Effect = 215
	EffectGravity                             Effect = 216
	EffectMiracleEye                          Effect = 217
	EffectWakeUpSlap                          Effect = 218
	EffectHammerArm                           Effect = 219
	EffectGyroBall                            Effect = 220
	EffectHealingWish                         Effect = 221
	EffectBrine                               Effect = 222
	EffectNaturalGift                         Effect = 223
	EffectFeint                               Effect = 224
	EffectDoubleIfTargetBerry                 Effect = 225
	EffectTailwind                            Effect = 226
	EffectAcupressure                         Effect = 227
	EffectMetalBurst                          Effect = 228
	EffectUserSwitchOutAfterAttack            Effect = 229
	EffectCloseCombat                         Effect = 230
	EffectPayback                             Effect = 231
	EffectAssurance                           Effect = 232
	EffectEmbargo                             Effect = 233
	EffectFling                               Effect = 234
	EffectPsychoShift                         Effect = 235
	EffectTrumpCard                           Effect = 236
	EffectHealBlock                           Effect = 237
	EffectMoreDamageWhenMoreTargetHP          Effect = 238
	EffectPowerTrick                          Effect = 239
	EffectGastroAcid                          Effect = 240
	EffectLuckyChant                          Effect = 241
	EffectMeFirst                             Effect = 242
	EffectCopycat                             Effect = 243
	EffectPowerSwap                           Effect = 244
	EffectGuardSwap                           Effect = 245
	EffectPunishment                          Effect = 246
	EffectLastResort                          Effect = 247
	EffectWorrySeed                           Effect = 248
	EffectSuckerPunch                         Effect = 249
	EffectToxicSpikes                         Effect = 250
	EffectHeartSwap                           Effect = 251
	EffectAquaRing                            Effect = 252
	EffectMagnetRise                          Effect = 253
	EffectFlareBlitz                          Effect = 254
	EffectStruggle                            Effect = 255
	EffectDive                                Effect = 256
	EffectDig                                 Effect = 257
	EffectSurf                                Effect = 258
	EffectDefog                               Effect = 259
	EffectTrickRoom                           Effect = 260
	EffectBlizzard                            Effect = 261
	EffectWhirlpool                           Effect = 262
	EffectVoltTackle                          Effect = 263
	EffectBounce                              Effect = 264
	EffectCaptivate                           Effect = 266
	EffectStealthRock                         Effect = 267
	EffectChatter                             Effect = 268
	EffectPlateDriveType                      Effect = 269
	EffectHeadSmash                           Effect = 270
	EffectLunarDance                          Effect = 271
	EffectSeedFlare                           Effect = 272
	EffectShadowForce                         Effect = 273
	EffectFireFang                            Effect = 274
	EffectIceFang                             Effect = 275
	EffectThunderFang                         Effect = 276
	EffectChanceRaiseUserSpecialAttack        Effect = 277
	EffectHoneClaws                           Effect = 278
	EffectWideGuard                           Effect = 279
	EffectGuardSplit                          Effect = 280
	EffectPowerSplit                          Effect = 281
	EffectWonderRoom                          Effect = 282
	EffectUseTargetDefenseNotSpecial          Effect = 283
	EffectVenoshock                           Effect = 284
	EffectAutotomize                          Effect = 285
	EffectTelekinesis                         Effect = 286
	EffectMagicRoom                           Effect = 287
	EffectSmackDown                           Effect = 288
	EffectAlwaysCritical                      Effect = 289
	EffectFlameBurst                          Effect = 290
	EffectQuiverDance                         Effect = 291
	EffectMoreDamageWithWeightRatio           Effect = 292
	EffectSynchronoise                        Effect = 293
	EffectElectroBall                         Effect = 294
	EffectSoak                                Effect = 295
	EffectFlameCharge                         Effect = 296
	EffectAcidSpray                           Effect = 297
	EffectFoulPlay                            Effect = 298
	EffectSimpleBeam                          Effect = 299
	EffectEntrainment                         Effect = 300
	EffectAfterYou                            Effect = 301
	EffectRound                               Effect = 302
	EffectEchoedVoice                         Effect = 303
	EffectIgnoresTargetStatModifiers          Effect = 304
	EffectClearSmog                           Effect = 305
	EffectStoredPower                         Effect = 306
	EffectQuickGuard                          Effect = 307
	EffectAllySwitch                          Effect = 308
	EffectShellSmash                          Effect = 309
	EffectHealPulse                           Effect = 310
	EffectHex                                 Effect = 311
	EffectSkyDrop                             Effect = 312
	EffectShiftGear                           Effect = 313
	EffectSwitchOutTargetAfterDamage          Effect = 314
	EffectIncinerate                          Effect = 315
	EffectQuash                               Effect = 316
	EffectGrowth                              Effect = 317
	EffectAcrobatics                          Effect = 318
	EffectReflectType                         Effect = 319
	EffectRetaliate                           Effect = 320
	EffectFinalGambit                         Effect = 321
	EffectTailGlow                            Effect = 322
	EffectCoil                                Effect = 323
	EffectBestow                              Effect = 324
	EffectWaterPledge                         Effect = 325
	EffectFirePledge                          Effect = 326
	EffectGrassPledge                         Effect = 327
	EffectWorkUp                              Effect = 328
	EffectCottonGuard                         Effect = 329
	EffectRelicSong                           Effect = 330
	EffectGlaciate                            Effect = 331
	EffectFreezeShock                         Effect = 332
	EffectIceBurn                             Effect = 333
	EffectVCreate                             Effect = 335
	EffectFusionFlare                         Effect = 336
	EffectFusionBolt                          Effect = 337
	EffectHurricane                           Effect = 338
)

var effectNames = map[Effect]string{
	EffectRegularDamage:                       "RegularDamage",
	EffectSleepTarget:                         "SleepTarget",
	EffectChancePoisonTarget:                  "ChancePoisonTarget",
	EffectHealUserHalfInflicted:               "HealUserHalfInflicted",
	EffectChanceBurnTarget:                    "ChanceBurnTarget",
	EffectChanceFreezeTarget:                  "ChanceFreezeTarget",
	EffectChanceParalyzeTarget:                "ChanceParalyzeTarget",
	EffectFaintUser:                           "FaintUser",
	EffectDreamEater:                          "DreamEater",
	EffectMirrorMove:                          "MirrorMove",
	EffectRaiseUserAttack:                     "RaiseUserAttack",
	EffectRaiseUserDefense:                    "RaiseUserDefense",
	EffectRaiseUserSpecialAttack:              "RaiseUserSpecialAttack",
	EffectRaiseUserEvasion:                    "RaiseUserEvasion",
	EffectNeverMisses:                         "NeverMisses",
	EffectLowerTargetAttack:                   "LowerTargetAttack",
	EffectLowerTargetDefense:                  "LowerTargetDefense",
	EffectLowerTargetSpeed:                    "LowerTargetSpeed",
	EffectLowerTargetAccuracy:                 "LowerTargetAccuracy",
	EffectLowerTargetEvasion:                  "LowerTargetEvasion",
	EffectHaze:                                "Haze",
	EffectBide:                                "Bide",
	EffectHit2To3TurnsThenConfuseUser:         "Hit2To3TurnsThenConfuseUser",
	EffectSwitchOutTarget:                     "SwitchOutTarget",
	EffectHit2To5Times:                        "Hit2To5Times",
	EffectConversion:                          "Conversion",
	EffectChanceFlinchTarget:                  "ChanceFlinchTarget",
	EffectHealUserByHalfMaxHP:                 "HealUserByHalfMaxHP",
	EffectToxic:                               "Toxic",
	EffectPayDay:                              "PayDay",
	EffectLightScreen:                         "LightScreen",
	EffectTriAttack:                           "TriAttack",
	EffectRest:                                "Rest",
	EffectOneHitKO:                            "OneHitKO",
	EffectRazorWind:                           "RazorWind",
	EffectSuperFang:                           "SuperFang",
	EffectDragonRage:                          "DragonRage",
	EffectSixteenthHP2To5Turns:                "SixteenthHP2To5Turns",
	EffectIncreasedCritical:                   "IncreasedCritical",
	EffectHitTwice:                            "HitTwice",
	EffectHalfRecoilIfMiss:                    "HalfRecoilIfMiss",
	EffectMist:                                "Mist",
	EffectFocusEnergy:                         "FocusEnergy",
	EffectQuarterRecoil:                       "QuarterRecoil",
	EffectConfuseTarget:                       "ConfuseTarget",
	EffectRaiseUserAttack2:                    "RaiseUserAttack2",
	EffectRaiseUserDefense2:                   "RaiseUserDefense2",
	EffectRaiseUserSpeed2:                     "RaiseUserSpeed2",
	EffectRaiseUserSpecialAttack2:             "RaiseUserSpecialAttack2",
	EffectRaiseUserSpecialDefense2:            "RaiseUserSpecialDefense2",
	EffectTransform:                           "Transform",
	EffectLowerTargetAttack2:                  "LowerTargetAttack2",
	EffectLowerTargetDefense2:                 "LowerTargetDefense2",
	EffectLowerTargetSpeed2:                   "LowerTargetSpeed2",
	EffectLowerTargetSpecialDefense2:          "LowerTargetSpecialDefense2",
	EffectReflect:                             "Reflect",
	EffectPoisonTarget:                        "PoisonTarget",
	EffectParalyzeTarget:                      "ParalyzeTarget",
	EffectChanceLowerTargetAttack:             "ChanceLowerTargetAttack",
	EffectChanceLowerTargetDefense:            "ChanceLowerTargetDefense",
	EffectChanceLowerTargetSpeed:              "ChanceLowerTargetSpeed",
	EffectChanceLowerTargetSpecialAttack:      "ChanceLowerTargetSpecialAttack",
	EffectChanceLowerTargetSpecialDefense:     "ChanceLowerTargetSpecialDefense",
	EffectChanceLowerTargetAccuracy:           "ChanceLowerTargetAccuracy",
	EffectSkyAttack:                           "SkyAttack",
	EffectChanceConfuseTarget:                 "ChanceConfuseTarget",
	EffectTwineedle:                           "Twineedle",
	EffectVitalThrow:                          "VitalThrow",
	EffectSubstitute:                          "Substitute",
	EffectRechargeNextTurn:                    "RechargeNextTurn",
	EffectRage:                                "Rage",
	EffectMimic:                               "Mimic",
	EffectMetronome:                           "Metronome",
	EffectLeechSeed:                           "LeechSeed",
	EffectSplash:                              "Splash",
	EffectDisable:                             "Disable",
	EffectUserLevelDamage:                     "UserLevelDamage",
	EffectPsywave:                             "Psywave",
	EffectCounter:                             "Counter",
	EffectEncore:                              "Encore",
	EffectPainSplit:                           "PainSplit",
	EffectSnore:                               "Snore",
	EffectConversion2:                         "Conversion2",
	EffectGuaranteeNextMoveHit:                "GuaranteeNextMoveHit",
	EffectSketch:                              "Sketch",
	EffectSleepTalk:                           "SleepTalk",
	EffectDestinyBond:                         "DestinyBond",
	EffectMoreDamageWhenLessUserHP:            "MoreDamageWhenLessUserHP",
	EffectSpite:                               "Spite",
	EffectFalseSwipe:                          "FalseSwipe",
	EffectCurePartyStatus:                     "CurePartyStatus",
	EffectFast:                                "Fast",
	EffectTripleKick:                          "TripleKick",
	EffectTakeTargetItem:                      "TakeTargetItem",
	EffectPreventTargetLeaving:                "PreventTargetLeaving",
	EffectNightmare:                           "Nightmare",
	EffectMinimize:                            "Minimize",
	EffectCurse:                               "Curse",
	EffectPreventHitUser:                      "PreventHitUser",
	EffectSpikes:                              "Spikes",
	EffectResetTargetEvadeDisableGhostImmune:  "ResetTargetEvadeDisableGhostImmune",
	EffectPerishSong:                          "PerishSong",
	EffectSandstorm:                           "Sandstorm",
	EffectEndure:                              "Endure",
	EffectDoubleEachSuccessiveUseMod5Turns:    "DoubleEachSuccessiveUseMod5Turns",
	EffectSwagger:                             "Swagger",
	EffectFuryCutter:                          "FuryCutter",
	EffectAttract:                             "Attract",
	EffectReturn:                              "Return",
	EffectPresent:                             "Present",
	EffectFrustration:                         "Frustration",
	EffectSafeguard:                           "Safeguard",
	EffectChanceBurnTargetThawUser:            "ChanceBurnTargetThawUser",
	EffectMagnitude:                           "Magnitude",
	EffectBatonPass:                           "BatonPass",
	EffectPursuit:                             "Pursuit",
	EffectRapidSpin:                           "RapidSpin",
	EffectSonicBoom:                           "SonicBoom",
	EffectHealUserByHalfMaxHPWeather:          "HealUserByHalfMaxHPWeather",
	EffectHiddenPower:                         "HiddenPower",
	EffectRainDance:                           "RainDance",
	EffectSunnyDay:                            "SunnyDay",
	EffectChanceRaiseUserDefense:              "ChanceRaiseUserDefense",
	EffectChanceRaiseUserAttack:               "ChanceRaiseUserAttack",
	EffectChanceRaiseUserAllStats:             "ChanceRaiseUserAllStats",
	EffectBellyDrum:                           "BellyDrum",
	EffectPsychUp:                             "PsychUp",
	EffectMirrorCoat:                          "MirrorCoat",
	EffectSkullBash:                           "SkullBash",
	EffectTwister:                             "Twister",
	EffectEarthquake:                          "Earthquake",
	EffectHitTargetInTwoTurns:                 "HitTargetInTwoTurns",
	EffectGust:                                "Gust",
	EffectChanceFlinchTargetDoubleMinimized:   "ChanceFlinchTargetDoubleMinimized",
	EffectSolarBeam:                           "SolarBeam",
	EffectThunder:                             "Thunder",
	EffectTeleport:                            "Teleport",
	EffectBeatUp:                              "BeatUp",
	EffectFly:                                 "Fly",
	EffectDefenseCurl:                         "DefenseCurl",
	EffectFakeOut:                             "FakeOut",
	EffectUproar:                              "Uproar",
	EffectStockpile:                           "Stockpile",
	EffectSpitUp:                              "SpitUp",
	EffectSwallow:                             "Swallow",
	EffectHail:                                "Hail",
	EffectTorment:                             "Torment",
	EffectFlatter:                             "Flatter",
	EffectWillOWisp:                           "WillOWisp",
	EffectMemento:                             "Memento",
	EffectFacade:                              "Facade",
	EffectFocusPunch:                          "FocusPunch",
	EffectSmellingSalts:                       "SmellingSalts",
	EffectTargetUserThisTurn:                  "TargetUserThisTurn",
	EffectNaturePower:                         "NaturePower",
	EffectCharge:                              "Charge",
	EffectTaunt:                               "Taunt",
	EffectHelpingHand:                         "HelpingHand",
	EffectSwapItems:                           "SwapItems",
	EffectRolePlay:                            "RolePlay",
	EffectWish:                                "Wish",
	EffectAssist:                              "Assist",
	EffectIngrain:                             "Ingrain",
	EffectSuperpower:                          "Superpower",
	EffectMagicCoat:                           "MagicCoat",
	EffectRecycle:                             "Recycle",
	EffectDoubleDamageIfUserHit:               "DoubleDamageIfUserHit",
	EffectBrickBreak:                          "BrickBreak",
	EffectYawn:                                "Yawn",
	EffectKnockOff:                            "KnockOff",
	EffectEndeavor:                            "Endeavor",
	EffectMoreDamageWhenMoreUserHP:            "MoreDamageWhenMoreUserHP",
	EffectSkillSwap:                           "SkillSwap",
	EffectImprison:                            "Imprison",
	EffectRefresh:                             "Refresh",
	EffectGrudge:                              "Grudge",
	EffectSnatch:                              "Snatch",
	EffectMoreDamageWhenTargetHeavier:         "MoreDamageWhenTargetHeavier",
	EffectSecretPower:                         "SecretPower",
	EffectThirdRecoil:                         "ThirdRecoil",
	EffectTeeterDance:                         "TeeterDance",
	EffectBlazeKick:                           "BlazeKick",
	EffectMudSport:                            "MudSport",
	EffectPoisonFang:                          "PoisonFang",
	EffectWeatherBall:                         "WeatherBall",
	EffectLowerUserSpecialAttack2AfterDamage:  "LowerUserSpecialAttack2AfterDamage",
	EffectLowerTargetAttackDefense:            "LowerTargetAttackDefense",
	EffectRaiseUserDefenseSpecialDefense:      "RaiseUserDefenseSpecialDefense",
	EffectSkyUppercut:                         "SkyUppercut",
	EffectRaiseUserAttackDefense:              "RaiseUserAttackDefense",
	EffectIncreasedCriticalChancePoisonTarget: "IncreasedCriticalChancePoisonTarget",
	EffectWaterSport:                          "WaterSport",
	EffectRaiseUserSpecialAttackDefense:       "RaiseUserSpecialAttackDefense",
	EffectRaiseUserAttackSpeed:                "RaiseUserAttackSpeed",
	EffectCamouflage:                          "Camouflage",
	EffectRoost:                               "Roost",
	EffectGravity:                             "Gravity",
	EffectMiracleEye:                          "MiracleEye",
	EffectWakeUpSlap:                          "WakeUpSlap",
	EffectHammerArm:                           "HammerArm",
	EffectGyroBall:                            "GyroBall",
	EffectHealingWish:                         "HealingWish",
	EffectBrine:                               "Brine",
	EffectNaturalGift:                         "NaturalGift",
	EffectFeint:                               "Feint",
	EffectDoubleIfTargetBerry:                 "DoubleIfTargetBerry",
	EffectTailwind:                            "Tailwind",
	EffectAcupressure:                         "Acupressure",
	EffectMetalBurst:                          "MetalBurst",
	EffectUserSwitchOutAfterAttack:            "UserSwitchOutAfterAttack",
	EffectCloseCombat:                         "CloseCombat",
	EffectPayback:                             "Payback",
	EffectAssurance:                           "Assurance",
	EffectEmbargo:                             "Embargo",
	EffectFling:                               "Fling",
	EffectPsychoShift:                         "PsychoShift",
	EffectTrumpCard:                           "TrumpCard",
	EffectHealBlock:                           "HealBlock",
	EffectMoreDamageWhenMoreTargetHP:          "MoreDamageWhenMoreTargetHP",
	EffectPowerTrick:                          "PowerTrick",
	EffectGastroAcid:                          "GastroAcid",
	EffectLuckyChant:                          "LuckyChant",
	EffectMeFirst:                             "MeFirst",
	EffectCopycat:                             "Copycat",
	EffectPowerSwap:                           "PowerSwap",
	EffectGuardSwap:                           "GuardSwap",
	EffectPunishment:                          "Punishment",
	EffectLastResort:                          "LastResort",
	EffectWorrySeed:                           "WorrySeed",
	EffectSuckerPunch:                         "SuckerPunch",
	EffectToxicSpikes:                         "ToxicSpikes",
	EffectHeartSwap:                           "HeartSwap",
	EffectAquaRing:                            "AquaRing",
	EffectMagnetRise:                          "MagnetRise",
	EffectFlareBlitz:                          "FlareBlitz",
	EffectStruggle:                            "Struggle",
	EffectDive:                                "Dive",
	EffectDig:                                 "Dig",
	EffectSurf:                                "Surf",
	EffectDefog:                               "Defog",
	EffectTrickRoom:                           "TrickRoom",
	EffectBlizzard:                            "Blizzard",
	EffectWhirlpool:                           "Whirlpool",
	EffectVoltTackle:                          "VoltTackle",
	EffectBounce:                              "Bounce",
	EffectCaptivate:                           "Captivate",
	EffectStealthRock:                         "StealthRock",
	EffectChatter:                             "Chatter",
	EffectPlateDriveType:                      "PlateDriveType",
	EffectHeadSmash:                           "HeadSmash",
	EffectLunarDance:                          "LunarDance",
	EffectSeedFlare:                           "SeedFlare",
	EffectShadowForce:                         "ShadowForce",
	EffectFireFang:                            "FireFang",
	EffectIceFang:                             "IceFang",
	EffectThunderFang:                         "ThunderFang",
	EffectChanceRaiseUserSpecialAttack:        "ChanceRaiseUserSpecialAttack",
	EffectHoneClaws:                           "HoneClaws",
	EffectWideGuard:                           "WideGuard",
	EffectGuardSplit:                          "GuardSplit",
	EffectPowerSplit:                          "PowerSplit",
	EffectWonderRoom:                          "WonderRoom",
	EffectUseTargetDefenseNotSpecial:          "UseTargetDefenseNotSpecial",
	EffectVenoshock:                           "Venoshock",
	EffectAutotomize:                          "Autotomize",
	EffectTelekinesis:                         "Telekinesis",
	EffectMagicRoom:                           "MagicRoom",
	EffectSmackDown:                           "SmackDown",
	EffectAlwaysCritical:                      "AlwaysCritical",
	EffectFlameBurst:                          "FlameBurst",
	EffectQuiverDance:                         "QuiverDance",
	EffectMoreDamageWithWeightRatio:           "MoreDamageWithWeightRatio",
	EffectSynchronoise:                        "Synchronoise",
	EffectElectroBall:                         "ElectroBall",
	EffectSoak:                                "Soak",
	EffectFlameCharge:                         "FlameCharge",
	EffectAcidSpray:                           "AcidSpray",
	EffectFoulPlay:                            "FoulPlay",
	EffectSimpleBeam:                          "SimpleBeam",
	EffectEntrainment:                         "Entrainment",
	EffectAfterYou:                            "AfterYou",
	EffectRound:                               "Round",
	EffectEchoedVoice:                         "EchoedVoice",
	EffectIgnoresTargetStatModifiers:          "IgnoresTargetStatModifiers",
	EffectClearSmog:                           "ClearSmog",
	EffectStoredPower:                         "StoredPower",
	EffectQuickGuard:                          "QuickGuard",
	EffectAllySwitch:                          "AllySwitch",
	EffectShellSmash:                          "ShellSmash",
	EffectHealPulse:                           "HealPulse",
	EffectHex:                                 "Hex",
	EffectSkyDrop:                             "SkyDrop",
	EffectShiftGear:                           "ShiftGear",
	EffectSwitchOutTargetAfterDamage:          "SwitchOutTargetAfterDamage",
	EffectIncinerate:                          "Incinerate",
	EffectQuash:                               "Quash",
	EffectGrowth:                              "Growth",
	EffectAcrobatics:                          "Acrobatics",
	EffectReflectType:                         "ReflectType",
	EffectRetaliate:                           "Retaliate",
	EffectFinalGambit:                         "FinalGambit",
	EffectTailGlow:                            "TailGlow",
	EffectCoil:                                "Coil",
	EffectBestow:                              "Bestow",
	EffectWaterPledge:                         "WaterPledge",
	EffectFirePledge:                          "FirePledge",
	EffectGrassPledge:                         "GrassPledge",
	EffectWorkUp:                              "WorkUp",
	EffectCottonGuard:                         "CottonGuard",
	EffectRelicSong:                           "RelicSong",
	EffectGlaciate:                            "Glaciate",
	EffectFreezeShock:                         "FreezeShock",
	EffectIceBurn:                             "IceBurn",
	EffectVCreate:                             "VCreate",
	EffectFusionFlare:                         "FusionFlare",
	EffectFusionBolt:                          "FusionBolt",
	EffectHurricane:                           "Hurricane",
}

func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return "Effect(?)"
}

// Valid reports whether the value names a known effect. The numbering the
// data files use is sparse, so a simple range check is not enough.
func (e Effect) Valid() bool {
	_, ok := effectNames[e]
	return ok
}

func effectFromVeekun(v uint64) (Effect, bool) {
	if v > math.MaxUint16 {
		return 0, false
	}
	e := Effect(v)
	return e, e.Valid()
}
