package pokedex

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/pokedex/veekun"
)

// bundleFS copies the embedded tables into a MapFS and applies overrides,
// so a test can break one table of an otherwise loadable bundle.
func bundleFS(t *testing.T, overrides map[string]string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{}
	entries, err := fs.ReadDir(veekun.Data(), ".")
	if err != nil {
		t.Fatalf("reading embedded data: %v", err)
	}
	for _, entry := range entries {
		data, err := fs.ReadFile(veekun.Data(), entry.Name())
		if err != nil {
			t.Fatalf("reading %s: %v", entry.Name(), err)
		}
		fsys[entry.Name()] = &fstest.MapFile{Data: data}
	}
	for name, data := range overrides {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

// replaceInTable returns the named embedded table with the first
// occurrence of old swapped for new.
func replaceInTable(t *testing.T, name, old, new string) string {
	t.Helper()
	data, err := fs.ReadFile(veekun.Data(), name)
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	replaced := strings.Replace(string(data), old, new, 1)
	if replaced == string(data) {
		t.Fatalf("%s does not contain %q", name, old)
	}
	return replaced
}

func TestDefaultSharedBundle(t *testing.T) {
	first := Default()
	second := Default()
	if first != second {
		t.Error("Default() built two bundles")
	}
}

func TestLoadFreshBundle(t *testing.T) {
	dex, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dex == Default() {
		t.Error("Load() returned the shared bundle")
	}
}

func TestLoadCounts(t *testing.T) {
	dex := Default()
	if got := dex.Moves.Len(); got != 92 {
		t.Errorf("Moves.Len() = %d, want 92", got)
	}
	if got := dex.Items.Len(); got != 132 {
		t.Errorf("Items.Len() = %d, want 132", got)
	}
	if got := len(dex.Items.BerryIDs()); got != BerryCount {
		t.Errorf("berries = %d, want %d", got, BerryCount)
	}
	if got := dex.Species.Len(); got != 47 {
		t.Errorf("Species.Len() = %d, want 47", got)
	}
	if got := len(dex.Species.PokemonIDs()); got != 57 {
		t.Errorf("pokemon = %d, want 57", got)
	}
}

func TestDefaultEfficacy(t *testing.T) {
	dex := Default()
	tests := []struct {
		damage Type
		target Type
		want   Efficacy
	}{
		{TypeNormal, TypeGhost, EfficacyNot},
		{TypeElectric, TypeGround, EfficacyNot},
		{TypeGround, TypeFlying, EfficacyNot},
		{TypeFire, TypeWater, EfficacyNotVery},
		{TypeWater, TypeFire, EfficacySuper},
		{TypeDragon, TypeDragon, EfficacySuper},
		{TypeGhost, TypePsychic, EfficacySuper},
		{TypeBug, TypeDark, EfficacySuper},
		{TypeDark, TypeFighting, EfficacyNotVery},
		{TypeNormal, TypeNormal, EfficacyRegular},
	}
	for _, tt := range tests {
		if got := dex.Efficacy.Efficacy(tt.damage, tt.target); got != tt.want {
			t.Errorf("%v vs %v = %v, want %v", tt.damage, tt.target, got, tt.want)
		}
	}

	charizard, ok := dex.Species.Pokemon(6)
	if !ok {
		t.Fatal("pokemon 6 not found")
	}
	if got := dex.Efficacy.Modifier(TypeRock, charizard.Types); got != 4.0 {
		t.Errorf("rock vs charizard = %v, want 4", got)
	}
	if got := dex.Efficacy.Modifier(TypeGround, charizard.Types); got != 0.0 {
		t.Errorf("ground vs charizard = %v, want 0", got)
	}
	if got := dex.Efficacy.Modifier(TypeElectric, charizard.Types); got != 2.0 {
		t.Errorf("electric vs charizard = %v, want 2", got)
	}
}

func TestDefaultPalacePreferences(t *testing.T) {
	dex := Default()
	for n := Nature(0); n < NatureCount; n++ {
		for name, half := range map[string]*HalfPalaceTable{
			"low":  &dex.Palace.Low,
			"high": &dex.Palace.High,
		} {
			attack, defense, support := half.Preference(n)
			if int(attack)+int(defense)+int(support) != 100 {
				t.Errorf("%v %s preferences %d/%d/%d do not sum to 100",
					n, name, attack, defense, support)
			}
		}
	}

	attack, defense, support := dex.Palace.High.Preference(NatureHardy)
	if attack != 61 || defense != 7 || support != 32 {
		t.Errorf("hardy high = %d/%d/%d, want 61/7/32", attack, defense, support)
	}
	attack, defense, support = dex.Palace.Low.Preference(NatureLonely)
	if attack != 84 || defense != 8 || support != 8 {
		t.Errorf("lonely low = %d/%d/%d, want 84/8/8", attack, defense, support)
	}
}

func TestLoadFSRejectsUnknownLearnedMove(t *testing.T) {
	fsys := bundleFS(t, map[string]string{
		veekun.PokemonMovesFile: "pokemon_id,version_group_id,move_id,pokemon_move_method_id,level\n" +
			"25,11,9999,1,1\n",
	})
	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected error for an unknown learned move")
	}
	if !strings.Contains(err.Error(), "learns unknown move: 9999") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestLoadFSRejectsUnknownEvolutionMove(t *testing.T) {
	fsys := bundleFS(t, map[string]string{
		veekun.PokemonEvolutionFile: replaceInTable(t, veekun.PokemonEvolutionFile, ",205,", ",999,"),
	})
	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected error for an unknown evolution move")
	}
	if !strings.Contains(err.Error(), "evolves with unknown move: 999") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestLoadFSRejectsUnknownEvolutionItem(t *testing.T) {
	fsys := bundleFS(t, map[string]string{
		veekun.PokemonEvolutionFile: replaceInTable(t, veekun.PokemonEvolutionFile, ",83,", ",999,"),
	})
	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected error for an unknown evolution item")
	}
	if !strings.Contains(err.Error(), "evolves with unknown item: 999") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestLoadFSMissingTable(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{})
	if err == nil {
		t.Fatal("expected error for an empty file system")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("unexpected error %q", err)
	}
}

// TestStableValues pins the numeric values that identify records outside
// this process, such as ids stored by a battle simulator. Changing one of
// these breaks everything persisted with the old value.
func TestStableValues(t *testing.T) {
	tests := []struct {
		name string
		got  int64
		want int64
	}{
		{"AbilityTeravolt", int64(AbilityTeravolt), 164},
		{"AilmentUnknown", int64(AilmentUnknown), -1},
		{"AilmentNightmare", int64(AilmentNightmare), 9},
		{"AilmentHealBlock", int64(AilmentHealBlock), 15},
		{"AilmentIngrain", int64(AilmentIngrain), 21},
		{"ContestSmart", int64(ContestSmart), 4},
		{"DamageClassSpecial", int64(DamageClassSpecial), 2},
		{"EfficacyNot", int64(EfficacyNot), -2},
		{"EfficacySuper", int64(EfficacySuper), 1},
		{"EggGroupNoEggs", int64(EggGroupNoEggs), 15},
		{"FlavorBitter", int64(FlavorBitter), 4},
		{"FlingFlinch", int64(FlingFlinch), 7},
		{"GenderGenderless", int64(GenderGenderless), 3},
		{"GenerationV", int64(GenerationV), 4},
		{"ItemCategoryStatusCures", int64(ItemCategoryStatusCures), 30},
		{"ItemCategoryMiracleShooter", int64(ItemCategoryMiracleShooter), 43},
		{"ItemFlagUnderground", int64(ItemFlagUnderground), 128},
		{"LearnFormChange", int64(LearnFormChange), 9},
		{"MoveCategoryUnique", int64(MoveCategoryUnique), 13},
		{"MoveFlagAuthentic", int64(MoveFlagAuthentic), 8192},
		{"NatureQuirky", int64(NatureQuirky), 24},
		{"PocketKey", int64(PocketKey), 7},
		{"StatHP", int64(StatHP), -1},
		{"StatEvasion", int64(StatEvasion), 6},
		{"StyleSupport", int64(StyleSupport), 2},
		{"TargetEntireField", int64(TargetEntireField), 11},
		{"TriggerShed", int64(TriggerShed), 4},
		{"TypeDark", int64(TypeDark), 16},
		{"VersionWhite2", int64(VersionWhite2), 21},
		{"GroupBlackWhite2", int64(GroupBlackWhite2), 13},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
