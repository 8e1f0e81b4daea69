package pokedex

import (
	"sort"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/pokedex/veekun"
)

const (
	movesHeader    = "id,identifier,generation_id,type_id,power,pp,accuracy,priority,target_id,damage_class_id,effect_id,effect_chance"
	moveMetaHeader = "move_id,meta_category_id,meta_ailment_id,min_hits,max_hits,min_turns,max_turns,drain,healing,crit_rate,ailment_chance,flinch_chance,stat_chance"
)

// movesFS builds a file system with one plain move plus any overrides, so
// each test only spells out the table it is probing.
func movesFS(t *testing.T, overrides map[string]string) fstest.MapFS {
	t.Helper()
	files := map[string]string{
		veekun.MovesFile:           movesHeader + "\n33,tackle,1,1,50,35,100,0,10,2,1,\n",
		veekun.MoveMetaFile:        moveMetaHeader + "\n",
		veekun.MoveFlagMapFile:     "move_id,move_flag_id\n",
		veekun.MoveStatChangesFile: "move_id,stat_id,change\n",
	}
	for name, data := range overrides {
		files[name] = data
	}
	return tableFS(t, files)
}

func TestMoveByName(t *testing.T) {
	dex := Default()
	m, ok := dex.Moves.ByName("thunder-punch")
	if !ok {
		t.Fatal("thunder-punch not found")
	}
	if m.ID != 9 {
		t.Errorf("ID = %d, want 9", m.ID)
	}
	if m.Name != "ThunderPunch" {
		t.Errorf("Name = %q, want ThunderPunch", m.Name)
	}
	if m.Type != TypeElectric {
		t.Errorf("Type = %v, want Electric", m.Type)
	}
	if m.Power != 75 || m.PP != 15 || m.Accuracy != 100 {
		t.Errorf("Power/PP/Accuracy = %d/%d/%d, want 75/15/100", m.Power, m.PP, m.Accuracy)
	}
	if m.Class != DamageClassPhysical {
		t.Errorf("Class = %v, want Physical", m.Class)
	}
	if m.Target != TargetSelectedPokemon {
		t.Errorf("Target = %v, want SelectedPokemon", m.Target)
	}
	if m.Effect != EffectChanceParalyzeTarget || m.EffectChance != 10 {
		t.Errorf("Effect = %v chance %d, want ChanceParalyzeTarget chance 10", m.Effect, m.EffectChance)
	}
}

func TestMoveByNameNormalizes(t *testing.T) {
	dex := Default()
	want, ok := dex.Moves.ByName("thunder-punch")
	if !ok {
		t.Fatal("thunder-punch not found")
	}
	for _, name := range []string{"ThunderPunch", "Thunder Punch", "THUNDER-PUNCH", "thunderpunch"} {
		got, ok := dex.Moves.ByName(name)
		if !ok || got.ID != want.ID {
			t.Errorf("ByName(%q) = %v, %v, want move %d", name, got.ID, ok, want.ID)
		}
	}
}

func TestMoveNotFound(t *testing.T) {
	dex := Default()
	if _, ok := dex.Moves.ByID(0); ok {
		t.Error("ByID(0) reported a move")
	}
	if _, ok := dex.Moves.ByID(9999); ok {
		t.Error("ByID(9999) reported a move")
	}
	if _, ok := dex.Moves.ByName("metronome-but-wrong"); ok {
		t.Error("ByName on an unknown name reported a move")
	}
}

func TestMoveAlwaysHits(t *testing.T) {
	dex := Default()
	dance, ok := dex.Moves.ByName("swords-dance")
	if !ok {
		t.Fatal("swords-dance not found")
	}
	if !dance.AlwaysHits() {
		t.Error("swords-dance should bypass accuracy checks")
	}
	tackle, ok := dex.Moves.ByName("tackle")
	if !ok {
		t.Fatal("tackle not found")
	}
	if tackle.AlwaysHits() {
		t.Error("tackle should be subject to accuracy checks")
	}
}

func TestMoveStatChanges(t *testing.T) {
	dex := Default()
	dance, ok := dex.Moves.ByName("swords-dance")
	if !ok {
		t.Fatal("swords-dance not found")
	}
	if dance.Class != DamageClassNonDamaging {
		t.Errorf("Class = %v, want NonDamaging", dance.Class)
	}
	if dance.Target != TargetUser {
		t.Errorf("Target = %v, want User", dance.Target)
	}
	if dance.Meta.Category != MoveCategoryNetGoodStats {
		t.Errorf("Category = %v, want NetGoodStats", dance.Meta.Category)
	}
	if got := dance.Meta.StatChanges.Change(StatAttack); got != 2 {
		t.Errorf("attack change = %d, want 2", got)
	}
	if got := dance.Meta.StatChanges.Change(StatDefense); got != 0 {
		t.Errorf("defense change = %d, want 0", got)
	}
	// HP is outside the changeable range and always reads zero.
	if got := dance.Meta.StatChanges.Change(StatHP); got != 0 {
		t.Errorf("hp change = %d, want 0", got)
	}
}

func TestMoveMeta(t *testing.T) {
	dex := Default()

	seed, ok := dex.Moves.ByName("bullet-seed")
	if !ok {
		t.Fatal("bullet-seed not found")
	}
	if seed.Meta.Hits != (Span{Min: 2, Max: 5}) {
		t.Errorf("bullet-seed hits = %+v, want 2 to 5", seed.Meta.Hits)
	}

	wrap, ok := dex.Moves.ByName("wrap")
	if !ok {
		t.Fatal("wrap not found")
	}
	if wrap.Meta.Ailment != AilmentTrap {
		t.Errorf("wrap ailment = %v, want Trap", wrap.Meta.Ailment)
	}
	if wrap.Meta.Turns != (Span{Min: 4, Max: 5}) {
		t.Errorf("wrap turns = %+v, want 4 to 5", wrap.Meta.Turns)
	}
	if wrap.Meta.AilmentChance != 100 {
		t.Errorf("wrap ailment chance = %d, want 100", wrap.Meta.AilmentChance)
	}

	edge, ok := dex.Moves.ByName("double-edge")
	if !ok {
		t.Fatal("double-edge not found")
	}
	if edge.Meta.Drain != -33 {
		t.Errorf("double-edge drain = %d, want -33", edge.Meta.Drain)
	}

	heal, ok := dex.Moves.ByName("recover")
	if !ok {
		t.Fatal("recover not found")
	}
	if heal.Meta.Category != MoveCategoryHeal || heal.Meta.Healing != 50 {
		t.Errorf("recover category/healing = %v/%d, want Heal/50", heal.Meta.Category, heal.Meta.Healing)
	}

	slash, ok := dex.Moves.ByName("air-slash")
	if !ok {
		t.Fatal("air-slash not found")
	}
	if slash.Meta.FlinchChance != 30 {
		t.Errorf("air-slash flinch chance = %d, want 30", slash.Meta.FlinchChance)
	}
}

func TestMoveFlags(t *testing.T) {
	dex := Default()
	tests := []struct {
		name    string
		has     MoveFlags
		lacks   MoveFlags
		comment string
	}{
		{"thunder-punch", MoveFlagContact | MoveFlagPunch | MoveFlagProtect | MoveFlagMirror, MoveFlagSound, "a punch"},
		{"hyper-voice", MoveFlagSound | MoveFlagAuthentic, MoveFlagContact, "a sound move"},
		{"hyper-beam", MoveFlagRecharge, MoveFlagCharge, "a recharge move"},
		{"fly", MoveFlagCharge | MoveFlagContact | MoveFlagDistance | MoveFlagGravity, MoveFlagRecharge, "a two-turn flying move"},
		{"recover", MoveFlagSnatch | MoveFlagHeal, MoveFlagProtect, "a self heal"},
	}
	for _, tt := range tests {
		m, ok := dex.Moves.ByName(tt.name)
		if !ok {
			t.Fatalf("%s not found", tt.name)
		}
		if !m.Meta.Flags.Has(tt.has) {
			t.Errorf("%s is %s and should have flags %b, got %b", tt.name, tt.comment, tt.has, m.Meta.Flags)
		}
		if m.Meta.Flags.Has(tt.lacks) {
			t.Errorf("%s should not have flag %b", tt.name, tt.lacks)
		}
	}
}

func TestMovePriority(t *testing.T) {
	dex := Default()
	protect, ok := dex.Moves.ByName("protect")
	if !ok {
		t.Fatal("protect not found")
	}
	if protect.Priority != 4 {
		t.Errorf("protect priority = %d, want 4", protect.Priority)
	}
	tail, ok := dex.Moves.ByName("dragon-tail")
	if !ok {
		t.Fatal("dragon-tail not found")
	}
	if tail.Priority != -6 {
		t.Errorf("dragon-tail priority = %d, want -6", tail.Priority)
	}
}

func TestMoveIDsSorted(t *testing.T) {
	dex := Default()
	ids := dex.Moves.IDs()
	if len(ids) != dex.Moves.Len() {
		t.Fatalf("IDs() returned %d ids, Len() = %d", len(ids), dex.Moves.Len())
	}
	if !sort.SliceIsSorted(ids, func(i, j int) bool { return ids[i] < ids[j] }) {
		t.Error("IDs() not in ascending order")
	}
	for _, id := range ids {
		if _, ok := dex.Moves.ByID(id); !ok {
			t.Errorf("id %d listed but not found", id)
		}
	}
}

func TestLoadMovesDefaultMeta(t *testing.T) {
	table, err := loadMoves(movesFS(t, nil))
	if err != nil {
		t.Fatalf("loadMoves: %v", err)
	}
	m, ok := table.ByID(33)
	if !ok {
		t.Fatal("move 33 not loaded")
	}
	if m.Meta.Category != MoveCategoryUnique {
		t.Errorf("category without a meta row = %v, want Unique", m.Meta.Category)
	}
	if m.Meta.Ailment != AilmentUnknown {
		t.Errorf("ailment without a meta row = %v, want Unknown", m.Meta.Ailment)
	}
}

func TestLoadMovesSkipsSideSeries(t *testing.T) {
	fsys := movesFS(t, map[string]string{
		veekun.MovesFile: movesHeader + "\n" +
			"33,tackle,1,1,50,35,100,0,10,2,1,\n" +
			"10001,shadow-rush,3,1,55,0,100,0,10,2,10001,\n",
		veekun.MoveMetaFile: moveMetaHeader + "\n" +
			"10001,0,0,,,,,0,0,0,0,0,0\n",
	})
	table, err := loadMoves(fsys)
	if err != nil {
		t.Fatalf("loadMoves: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
	if _, ok := table.ByID(10001); ok {
		t.Error("side-series move should not be loaded")
	}
}

func TestLoadMovesRejectsZeroID(t *testing.T) {
	fsys := movesFS(t, map[string]string{
		veekun.MovesFile: movesHeader + "\n0,null-move,1,1,0,0,,0,1,1,1,\n",
	})
	_, err := loadMoves(fsys)
	if err == nil {
		t.Fatal("expected error for move id 0")
	}
	if !strings.Contains(err.Error(), "invalid move: 0") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestLoadMovesRejectsUnknownMetaMove(t *testing.T) {
	fsys := movesFS(t, map[string]string{
		veekun.MoveMetaFile: moveMetaHeader + "\n5,0,0,,,,,0,0,0,0,0,0\n",
	})
	_, err := loadMoves(fsys)
	if err == nil {
		t.Fatal("expected error for a meta row without a move")
	}
	if !strings.Contains(err.Error(), "unknown move: 5") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestLoadMovesRejectsBadEffect(t *testing.T) {
	fsys := movesFS(t, map[string]string{
		veekun.MovesFile: movesHeader + "\n33,tackle,1,1,50,35,100,0,10,2,13,\n",
	})
	_, err := loadMoves(fsys)
	if err == nil {
		t.Fatal("expected error for effect 13")
	}
	if !strings.Contains(err.Error(), "invalid effect: 13") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestLoadMovesRejectsHPStatChange(t *testing.T) {
	fsys := movesFS(t, map[string]string{
		veekun.MoveStatChangesFile: "move_id,stat_id,change\n33,1,-1\n",
	})
	_, err := loadMoves(fsys)
	if err == nil {
		t.Fatal("expected error for an HP stat change")
	}
	if !strings.Contains(err.Error(), "stat cannot be changed by a move") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"thunder-punch", "thunderpunch"},
		{"ThunderPunch", "thunderpunch"},
		{"King's Rock", "kingsrock"},
		{"Farfetch'd", "farfetchd"},
		{"nidoran-f", "nidoranf"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeName(tt.in); got != tt.want {
			t.Errorf("normalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
