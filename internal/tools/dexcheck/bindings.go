package dexcheck

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/Shopify/go-lua"
	"github.com/louisbranch/pokedex"
)

// registerDexGlobal exposes bundle lookups as a dex table. Every lookup
// raises a Lua error on a miss so scripts can assert misses with
// check.fails.
func registerDexGlobal(state *lua.State, dex *pokedex.Pokedex) {
	fns := []lua.RegistryFunction{
		{Name: "species", Function: speciesLookup(dex)},
		{Name: "pokemon", Function: pokemonLookup(dex)},
		{Name: "move", Function: moveLookup(dex)},
		{Name: "item", Function: itemLookup(dex)},
		{Name: "berry", Function: berryLookup(dex)},
		{Name: "nature", Function: natureLookup},
		{Name: "efficacy", Function: efficacyLookup(dex)},
		{Name: "palace", Function: palaceLookup(dex)},
	}
	state.NewTable()
	lua.SetFunctions(state, fns, 0)
	state.SetGlobal("dex")
}

// registerCheckGlobal exposes the assertion helpers as a check table.
func registerCheckGlobal(state *lua.State) {
	fns := []lua.RegistryFunction{
		{Name: "eq", Function: checkEq},
		{Name: "truthy", Function: checkTruthy},
		{Name: "fails", Function: checkFails},
	}
	state.NewTable()
	lua.SetFunctions(state, fns, 0)
	state.SetGlobal("check")
}

// checkEq compares two Lua values structurally. Tables compare by
// contents, so stat spreads and flag sets can be asserted in one call.
func checkEq(state *lua.State) int {
	label := lua.OptString(state, 3, "eq")
	got := luaToGo(state, 1)
	want := luaToGo(state, 2)
	if !reflect.DeepEqual(got, want) {
		lua.Errorf(state, "%s", fmt.Sprintf("%s: got %v, want %v", label, got, want))
	}
	return 0
}

// checkTruthy fails on nil or false.
func checkTruthy(state *lua.State) int {
	label := lua.OptString(state, 2, "truthy")
	if !state.ToBoolean(1) {
		lua.Errorf(state, "%s: expected truthy value", label)
	}
	return 0
}

// checkFails runs a function and fails unless the function raises.
func checkFails(state *lua.State) int {
	lua.CheckType(state, 1, lua.TypeFunction)
	label := lua.OptString(state, 2, "fails")
	state.PushValue(1)
	if err := state.ProtectedCall(0, 0, 0); err == nil {
		lua.Errorf(state, "%s: expected the call to fail", label)
		return 0
	}
	state.Pop(1)
	return 0
}

func speciesLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		var species pokedex.Species
		var ok bool
		switch state.TypeOf(1) {
		case lua.TypeNumber:
			id := lua.CheckInteger(state, 1)
			species, ok = dex.Species.ByID(pokedex.SpeciesID(id))
			if !ok {
				lua.Errorf(state, "species %d not found", id)
			}
		default:
			name := lua.CheckString(state, 1)
			species, ok = dex.Species.ByName(name)
			if !ok {
				lua.Errorf(state, "species %s not found", name)
			}
		}
		pushSpecies(state, dex, species)
		return 1
	}
}

// pokemonLookup resolves a concrete form by pokemon id, or by species
// name with an optional form name.
func pokemonLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		var pokemon pokedex.Pokemon
		var ok bool
		switch state.TypeOf(1) {
		case lua.TypeNumber:
			id := lua.CheckInteger(state, 1)
			pokemon, ok = dex.Species.Pokemon(pokedex.PokemonID(id))
			if !ok {
				lua.Errorf(state, "pokemon %d not found", id)
			}
		default:
			name := lua.CheckString(state, 1)
			form := lua.OptString(state, 2, "")
			species, found := dex.Species.ByName(name)
			if !found {
				lua.Errorf(state, "species %s not found", name)
			}
			pokemon, ok = formOf(species, form)
			if !ok {
				lua.Errorf(state, "species %s has no form %s", name, form)
			}
		}
		pushPokemon(state, dex, pokemon)
		return 1
	}
}

func moveLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		var move pokedex.Move
		var ok bool
		switch state.TypeOf(1) {
		case lua.TypeNumber:
			id := lua.CheckInteger(state, 1)
			move, ok = dex.Moves.ByID(pokedex.MoveID(id))
			if !ok {
				lua.Errorf(state, "move %d not found", id)
			}
		default:
			name := lua.CheckString(state, 1)
			move, ok = dex.Moves.ByName(name)
			if !ok {
				lua.Errorf(state, "move %s not found", name)
			}
		}
		pushMove(state, move)
		return 1
	}
}

func itemLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		var item pokedex.Item
		var ok bool
		switch state.TypeOf(1) {
		case lua.TypeNumber:
			id := lua.CheckInteger(state, 1)
			item, ok = dex.Items.ByID(pokedex.ItemID(id))
			if !ok {
				lua.Errorf(state, "item %d not found", id)
			}
		default:
			name := lua.CheckString(state, 1)
			item, ok = dex.Items.ByName(name)
			if !ok {
				lua.Errorf(state, "item %s not found", name)
			}
		}
		pushItem(state, dex, item)
		return 1
	}
}

// berryLookup resolves a berry by berry number or by the name of the bag
// item that carries it.
func berryLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		var berry pokedex.Berry
		switch state.TypeOf(1) {
		case lua.TypeNumber:
			id := lua.CheckInteger(state, 1)
			var ok bool
			berry, ok = dex.Items.Berry(pokedex.BerryID(id))
			if !ok {
				lua.Errorf(state, "berry %d not found", id)
			}
		default:
			name := lua.CheckString(state, 1)
			item, ok := dex.Items.ByName(name)
			if !ok {
				lua.Errorf(state, "item %s not found", name)
			}
			berry, ok = item.Berry()
			if !ok {
				lua.Errorf(state, "item %s is not a berry", name)
			}
		}
		pushBerry(state, dex, berry)
		return 1
	}
}

// natureLookup needs no bundle data, natures are fixed by the game.
func natureLookup(state *lua.State) int {
	name := lua.CheckString(state, 1)
	nature, ok := natureByName(name)
	if !ok {
		lua.Errorf(state, "nature %s not found", name)
	}
	pushNature(state, nature)
	return 1
}

// efficacyLookup computes the damage multiplier of an attacking type
// against one or two defending types.
func efficacyLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		attacking := checkTypeName(state, 1)
		argCount := state.Top()
		if argCount < 2 || argCount > 3 {
			lua.Errorf(state, "efficacy takes one or two defending types")
		}
		defending := make([]pokedex.Type, 0, 2)
		for index := 2; index <= argCount; index++ {
			defending = append(defending, checkTypeName(state, index))
		}

		modifier := 1.0
		state.NewTable()
		setString(state, "attacking", attacking.String())
		state.NewTable()
		for i, def := range defending {
			efficacy := dex.Efficacy.Efficacy(attacking, def)
			state.PushInteger(i + 1)
			state.NewTable()
			setString(state, "type", def.String())
			setString(state, "efficacy", efficacy.String())
			setNumber(state, "modifier", efficacy.Modifier())
			state.SetTable(-3)
			modifier *= efficacy.Modifier()
		}
		state.SetField(-2, "matchups")
		setNumber(state, "modifier", modifier)
		return 1
	}
}

// palaceLookup reports Battle Palace style odds for a nature. The low
// table is the spread below half HP, high above.
func palaceLookup(dex *pokedex.Pokedex) lua.Function {
	return func(state *lua.State) int {
		name := lua.CheckString(state, 1)
		nature, ok := natureByName(name)
		if !ok {
			lua.Errorf(state, "nature %s not found", name)
		}
		state.NewTable()
		setString(state, "nature", nature.String())
		pushPalaceHalf(state, &dex.Palace.Low, nature)
		state.SetField(-2, "low")
		pushPalaceHalf(state, &dex.Palace.High, nature)
		state.SetField(-2, "high")
		return 1
	}
}

// checkTypeName resolves a type argument or raises.
func checkTypeName(state *lua.State, index int) pokedex.Type {
	name := lua.CheckString(state, index)
	t, ok := typeByName(name)
	if !ok {
		lua.Errorf(state, "type %s is not known", name)
	}
	return t
}

func pushMove(state *lua.State, move pokedex.Move) {
	state.NewTable()
	setInt(state, "id", int(move.ID))
	setString(state, "name", move.Name)
	setString(state, "generation", move.Generation.String())
	setString(state, "type", move.Type.String())
	setInt(state, "power", int(move.Power))
	setInt(state, "pp", int(move.PP))
	setInt(state, "accuracy", int(move.Accuracy))
	setInt(state, "priority", int(move.Priority))
	setString(state, "target", move.Target.String())
	setString(state, "class", move.Class.String())
	setString(state, "effect", move.Effect.String())
	setInt(state, "effect_chance", int(move.EffectChance))
	pushMoveMeta(state, move.Meta)
	state.SetField(-2, "meta")
}

func pushMoveMeta(state *lua.State, meta pokedex.Meta) {
	state.NewTable()
	setString(state, "category", meta.Category.String())
	setString(state, "ailment", meta.Ailment.String())
	setInt(state, "ailment_chance", int(meta.AilmentChance))
	setInt(state, "min_hits", int(meta.Hits.Min))
	setInt(state, "max_hits", int(meta.Hits.Max))
	setInt(state, "min_turns", int(meta.Turns.Min))
	setInt(state, "max_turns", int(meta.Turns.Max))
	setInt(state, "drain", int(meta.Drain))
	setInt(state, "healing", int(meta.Healing))
	setInt(state, "critical_rate", int(meta.CriticalRate))
	setInt(state, "flinch_chance", int(meta.FlinchChance))
	setInt(state, "stat_chance", int(meta.StatChance))
	state.NewTable()
	for stat := pokedex.StatAttack; stat <= pokedex.StatEvasion; stat++ {
		if change := meta.StatChanges.Change(stat); change != 0 {
			setInt(state, stat.String(), int(change))
		}
	}
	state.SetField(-2, "stat_changes")
	setFlagSet(state, "flags", moveFlagNames(meta.Flags))
}

func pushItem(state *lua.State, dex *pokedex.Pokedex, item pokedex.Item) {
	state.NewTable()
	setInt(state, "id", int(item.ID))
	setString(state, "name", item.Name)
	setString(state, "category", item.Category.String())
	setString(state, "pocket", item.Category.Pocket().String())
	setInt(state, "cost", int(item.Cost))
	setInt(state, "fling_power", int(item.FlingPower))
	if item.FlingEffect != pokedex.FlingNone {
		setString(state, "fling_effect", item.FlingEffect.String())
	}
	setFlagSet(state, "flags", itemFlagNames(item.Flags))
	if berry, ok := item.Berry(); ok {
		pushBerry(state, dex, berry)
		state.SetField(-2, "berry")
	}
}

func pushBerry(state *lua.State, dex *pokedex.Pokedex, berry pokedex.Berry) {
	state.NewTable()
	setInt(state, "id", int(berry.ID))
	setInt(state, "item_id", int(berry.Item))
	if item, ok := dex.Items.ByID(berry.Item); ok {
		setString(state, "item", item.Name)
	}
	setInt(state, "natural_gift_power", int(berry.NaturalGiftPower))
	setString(state, "natural_gift_type", berry.NaturalGiftType.String())
	if flavor, ok := berry.Flavor(); ok {
		setString(state, "flavor", flavor.String())
	}
}

func pushSpecies(state *lua.State, dex *pokedex.Pokedex, species pokedex.Species) {
	state.NewTable()
	setInt(state, "id", int(species.ID))
	setString(state, "name", species.Name)
	setString(state, "generation", species.Generation.String())
	setInt(state, "gender_rate", int(species.GenderRate))
	groups := []string{species.EggGroups.First().String()}
	if second, ok := species.EggGroups.Second(); ok {
		groups = append(groups, second.String())
	}
	setStringList(state, "egg_groups", groups)
	if evo, ok := species.EvolvesFrom(); ok {
		pushEvolution(state, dex, evo)
		state.SetField(-2, "evolves_from")
	}
	state.NewTable()
	for i, pokemon := range species.Pokemon {
		state.PushInteger(i + 1)
		state.PushInteger(int(pokemon.ID))
		state.SetTable(-3)
	}
	state.SetField(-2, "pokemon")
}

func pushEvolution(state *lua.State, dex *pokedex.Pokedex, evo pokedex.EvolvesFrom) {
	state.NewTable()
	setInt(state, "from_id", int(evo.FromID))
	if from, ok := dex.Species.ByID(evo.FromID); ok {
		setString(state, "from", from.Name)
	}
	setString(state, "trigger", evo.Trigger.String())
	setInt(state, "level", int(evo.Level))
	if evo.Gender != pokedex.GenderGenderless {
		setString(state, "gender", evo.Gender.String())
	}
	if evo.Item != 0 {
		if item, ok := dex.Items.ByID(evo.Item); ok {
			setString(state, "item", item.Name)
		}
	}
	if evo.MoveID != 0 {
		if move, ok := dex.Moves.ByID(evo.MoveID); ok {
			setString(state, "move", move.Name)
		}
	}
	if stats, ok := evo.RelativePhysicalStats(); ok {
		setInt(state, "relative_physical_stats", int(stats))
	}
}

func pushPokemon(state *lua.State, dex *pokedex.Pokedex, pokemon pokedex.Pokemon) {
	state.NewTable()
	setInt(state, "id", int(pokemon.ID))
	setInt(state, "species_id", int(pokemon.Species))
	if species, ok := dex.Species.ByID(pokemon.Species); ok {
		setString(state, "species", species.Name)
	}
	types := []string{pokemon.Types.First().String()}
	if second, ok := pokemon.Types.Second(); ok {
		types = append(types, second.String())
	}
	setStringList(state, "types", types)
	abilities := []string{pokemon.Abilities.First().String()}
	if second, ok := pokemon.Abilities.Second(); ok {
		abilities = append(abilities, second.String())
	}
	setStringList(state, "abilities", abilities)
	if hidden, ok := pokemon.HiddenAbility(); ok {
		setString(state, "hidden_ability", hidden.String())
	}
	state.NewTable()
	setInt(state, "hp", int(pokemon.Stats.Stat(pokedex.StatHP)))
	setInt(state, "attack", int(pokemon.Stats.Stat(pokedex.StatAttack)))
	setInt(state, "defense", int(pokemon.Stats.Stat(pokedex.StatDefense)))
	setInt(state, "special_attack", int(pokemon.Stats.Stat(pokedex.StatSpecialAttack)))
	setInt(state, "special_defense", int(pokemon.Stats.Stat(pokedex.StatSpecialDefense)))
	setInt(state, "speed", int(pokemon.Stats.Stat(pokedex.StatSpeed)))
	state.SetField(-2, "stats")
	forms := make([]string, 0, len(pokemon.Forms))
	for _, form := range pokemon.Forms {
		forms = append(forms, form.Name)
	}
	setStringList(state, "forms", forms)
}

func pushNature(state *lua.State, nature pokedex.Nature) {
	state.NewTable()
	setString(state, "name", nature.String())
	setBool(state, "neutral", nature.Neutral())
	if stat, ok := nature.Increased(); ok {
		setString(state, "increased_stat", stat.String())
	}
	if stat, ok := nature.Decreased(); ok {
		setString(state, "decreased_stat", stat.String())
	}
	if flavor, ok := nature.LikedFlavor(); ok {
		setString(state, "liked_flavor", flavor.String())
	}
	if flavor, ok := nature.DislikedFlavor(); ok {
		setString(state, "disliked_flavor", flavor.String())
	}
}

func pushPalaceHalf(state *lua.State, table *pokedex.HalfPalaceTable, nature pokedex.Nature) {
	attack, defense, support := table.Preference(nature)
	state.NewTable()
	setInt(state, "attack", int(attack))
	setInt(state, "defense", int(defense))
	setInt(state, "support", int(support))
}

// setString sets a string field on the table below the top of the stack.
func setString(state *lua.State, key, value string) {
	state.PushString(value)
	state.SetField(-2, key)
}

func setInt(state *lua.State, key string, value int) {
	state.PushInteger(value)
	state.SetField(-2, key)
}

func setNumber(state *lua.State, key string, value float64) {
	state.PushNumber(value)
	state.SetField(-2, key)
}

func setBool(state *lua.State, key string, value bool) {
	state.PushBoolean(value)
	state.SetField(-2, key)
}

func setStringList(state *lua.State, key string, values []string) {
	state.NewTable()
	for i, value := range values {
		state.PushInteger(i + 1)
		state.PushString(value)
		state.SetTable(-3)
	}
	state.SetField(-2, key)
}

// setFlagSet writes flag names as keys with true values, so scripts can
// test membership with plain indexing.
func setFlagSet(state *lua.State, key string, names []string) {
	state.NewTable()
	for _, name := range names {
		state.PushBoolean(true)
		state.SetField(-2, name)
	}
	state.SetField(-2, key)
}

// formOf picks the concrete Pokémon matching the form name, or the
// default form when the name is empty.
func formOf(species pokedex.Species, form string) (pokedex.Pokemon, bool) {
	if len(species.Pokemon) == 0 {
		return pokedex.Pokemon{}, false
	}
	if form == "" {
		return species.Pokemon[0], true
	}
	key := normalizeKey(form)
	for _, pokemon := range species.Pokemon {
		for _, f := range pokemon.Forms {
			if normalizeKey(f.Name) == key {
				return pokemon, true
			}
		}
	}
	return pokedex.Pokemon{}, false
}

// normalizeKey lowercases a name and strips everything but letters and
// digits, the same folding the bundle applies to its name indexes.
func normalizeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r - 'A' + 'a')
		}
	}
	return b.String()
}

func typeByName(name string) (pokedex.Type, bool) {
	key := normalizeKey(name)
	for t := pokedex.Type(0); t < pokedex.TypeCount; t++ {
		if normalizeKey(t.String()) == key {
			return t, true
		}
	}
	return 0, false
}

func natureByName(name string) (pokedex.Nature, bool) {
	key := normalizeKey(name)
	for n := pokedex.Nature(0); n < pokedex.NatureCount; n++ {
		if normalizeKey(n.String()) == key {
			return n, true
		}
	}
	return 0, false
}

var moveFlagLabels = []struct {
	flag pokedex.MoveFlags
	name string
}{
	{pokedex.MoveFlagContact, "Contact"},
	{pokedex.MoveFlagCharge, "Charge"},
	{pokedex.MoveFlagRecharge, "Recharge"},
	{pokedex.MoveFlagProtect, "Protect"},
	{pokedex.MoveFlagReflectable, "Reflectable"},
	{pokedex.MoveFlagSnatch, "Snatch"},
	{pokedex.MoveFlagMirror, "Mirror"},
	{pokedex.MoveFlagPunch, "Punch"},
	{pokedex.MoveFlagSound, "Sound"},
	{pokedex.MoveFlagGravity, "Gravity"},
	{pokedex.MoveFlagDefrost, "Defrost"},
	{pokedex.MoveFlagDistance, "Distance"},
	{pokedex.MoveFlagHeal, "Heal"},
	{pokedex.MoveFlagAuthentic, "Authentic"},
}

func moveFlagNames(flags pokedex.MoveFlags) []string {
	var names []string
	for _, label := range moveFlagLabels {
		if flags.Has(label.flag) {
			names = append(names, label.name)
		}
	}
	return names
}

var itemFlagLabels = []struct {
	flag pokedex.ItemFlags
	name string
}{
	{pokedex.ItemFlagCountable, "Countable"},
	{pokedex.ItemFlagConsumable, "Consumable"},
	{pokedex.ItemFlagUsableOverworld, "UsableOverworld"},
	{pokedex.ItemFlagUsableInBattle, "UsableInBattle"},
	{pokedex.ItemFlagHoldable, "Holdable"},
	{pokedex.ItemFlagHoldablePassive, "HoldablePassive"},
	{pokedex.ItemFlagHoldableActive, "HoldableActive"},
	{pokedex.ItemFlagUnderground, "Underground"},
}

func itemFlagNames(flags pokedex.ItemFlags) []string {
	var names []string
	for _, label := range itemFlagLabels {
		if flags.Has(label.flag) {
			names = append(names, label.name)
		}
	}
	return names
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		return tableToGo(state, index)
	default:
		return nil
	}
}

// tableToGo converts a table into a slice when its keys form a dense
// 1..n range, and into a string-keyed map otherwise.
func tableToGo(state *lua.State, index int) any {
	index = state.AbsIndex(index)
	isArray := true
	maxIndex := 0
	count := 0
	state.PushNil()
	for state.Next(index) {
		if isArray {
			if state.TypeOf(-2) != lua.TypeNumber {
				isArray = false
			} else if idx, ok := state.ToInteger(-2); ok && idx > 0 {
				count++
				if idx > maxIndex {
					maxIndex = idx
				}
			} else {
				isArray = false
			}
		}
		state.Pop(1)
	}

	if isArray && count > 0 && maxIndex == count {
		result := make([]any, 0, maxIndex)
		for i := 1; i <= maxIndex; i++ {
			state.RawGetInt(index, i)
			result = append(result, luaToGo(state, -1))
			state.Pop(1)
		}
		return result
	}

	return tableToMap(state, index)
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func normalizeNumber(value float64) any {
	if math.Mod(value, 1) == 0 {
		return int(value)
	}
	return value
}
