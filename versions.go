package pokedex

// Generation identifies one generation of the main series games.
type Generation uint8

// Generations covered by the data set, oldest first.
const (
	GenerationI Generation = iota
	GenerationII
	GenerationIII
	GenerationIV
	GenerationV
)

// GenerationCount is the number of generations covered by the data set.
const GenerationCount = 5

var generationNames = [GenerationCount]string{"I", "II", "III", "IV", "V"}

func (g Generation) String() string {
	if int(g) >= len(generationNames) {
		return "Generation(?)"
	}
	return generationNames[g]
}

func generationFromVeekun(v uint64) (Generation, bool) {
	if v < 1 || v > GenerationCount {
		return 0, false
	}
	return Generation(v - 1), true
}

// Version identifies a single game release.
type Version uint8

const (
	VersionRed Version = iota
	VersionBlue
	VersionYellow
	VersionGold
	VersionSilver
	VersionCrystal
	VersionRuby
	VersionSapphire
	VersionEmerald
	VersionFireRed
	VersionLeafGreen
	VersionDiamond
	VersionPearl
	VersionPlatinum
	VersionHeartGold
	VersionSoulSilver
	VersionBlack
	VersionWhite
	VersionColosseum
	VersionXD
	VersionBlack2
	VersionWhite2
)

// VersionCount is the number of game releases covered by the data set.
const VersionCount = 22

var versionNames = [VersionCount]string{
	"Red", "Blue", "Yellow",
	"Gold", "Silver", "Crystal",
	"Ruby", "Sapphire", "Emerald", "FireRed", "LeafGreen",
	"Diamond", "Pearl", "Platinum", "HeartGold", "SoulSilver",
	"Black", "White",
	"Colosseum", "XD",
	"Black2", "White2",
}

func (v Version) String() string {
	if int(v) >= len(versionNames) {
		return "Version(?)"
	}
	return versionNames[v]
}

func versionFromVeekun(v uint64) (Version, bool) {
	if v < 1 || v > VersionCount {
		return 0, false
	}
	return Version(v - 1), true
}

// Group returns the version group the release belongs to.
func (v Version) Group() VersionGroup {
	switch v {
	case VersionRed, VersionBlue:
		return GroupRedBlue
	case VersionYellow:
		return GroupYellow
	case VersionGold, VersionSilver:
		return GroupGoldSilver
	case VersionCrystal:
		return GroupCrystal
	case VersionRuby, VersionSapphire:
		return GroupRubySapphire
	case VersionEmerald:
		return GroupEmerald
	case VersionFireRed, VersionLeafGreen:
		return GroupFireRedLeafGreen
	case VersionDiamond, VersionPearl:
		return GroupDiamondPearl
	case VersionPlatinum:
		return GroupPlatinum
	case VersionHeartGold, VersionSoulSilver:
		return GroupHeartGoldSoulSilver
	case VersionBlack, VersionWhite:
		return GroupBlackWhite
	case VersionColosseum:
		return GroupColosseum
	case VersionXD:
		return GroupXD
	default:
		return GroupBlackWhite2
	}
}

// Generation returns the generation the release belongs to.
func (v Version) Generation() Generation {
	return v.Group().Generation()
}

// VersionGroup identifies the releases that share learnsets and mechanics.
type VersionGroup uint8

const (
	GroupRedBlue VersionGroup = iota
	GroupYellow
	GroupGoldSilver
	GroupCrystal
	GroupRubySapphire
	GroupEmerald
	GroupFireRedLeafGreen
	GroupDiamondPearl
	GroupPlatinum
	GroupHeartGoldSoulSilver
	GroupBlackWhite
	GroupColosseum
	GroupXD
	GroupBlackWhite2
)

// VersionGroupCount is the number of version groups in the data set.
const VersionGroupCount = 14

var versionGroupNames = [VersionGroupCount]string{
	"RedBlue", "Yellow",
	"GoldSilver", "Crystal",
	"RubySapphire", "Emerald", "FireRedLeafGreen",
	"DiamondPearl", "Platinum", "HeartGoldSoulSilver",
	"BlackWhite", "Colosseum", "XD",
	"BlackWhite2",
}

func (g VersionGroup) String() string {
	if int(g) >= len(versionGroupNames) {
		return "VersionGroup(?)"
	}
	return versionGroupNames[g]
}

func versionGroupFromVeekun(v uint64) (VersionGroup, bool) {
	if v < 1 || v > VersionGroupCount {
		return 0, false
	}
	return VersionGroup(v - 1), true
}

// Generation returns the generation the version group belongs to.
func (g VersionGroup) Generation() Generation {
	switch g {
	case GroupRedBlue, GroupYellow:
		return GenerationI
	case GroupGoldSilver, GroupCrystal:
		return GenerationII
	case GroupRubySapphire, GroupEmerald, GroupFireRedLeafGreen,
		GroupColosseum, GroupXD:
		return GenerationIII
	case GroupDiamondPearl, GroupPlatinum, GroupHeartGoldSoulSilver:
		return GenerationIV
	default:
		return GenerationV
	}
}
