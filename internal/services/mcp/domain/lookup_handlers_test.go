package domain

import (
	"context"
	"testing"
)

func TestMoveLookupHandler(t *testing.T) {
	dex := testDex(t)
	handler := MoveLookupHandler(dex)

	t.Run("by id", func(t *testing.T) {
		toolResult, result, err := handler(context.Background(), nil, MoveLookupInput{ID: 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult != nil {
			t.Fatalf("unexpected tool result: %+v", toolResult)
		}
		if result.Name != "ThunderPunch" {
			t.Errorf("name = %q, want ThunderPunch", result.Name)
		}
		if result.Type != "Electric" || result.Class != "Physical" {
			t.Errorf("type/class = %s/%s, want Electric/Physical", result.Type, result.Class)
		}
		if result.Power != 75 || result.PP != 15 || result.Accuracy != 100 {
			t.Errorf("power/pp/accuracy = %d/%d/%d, want 75/15/100", result.Power, result.PP, result.Accuracy)
		}
		if result.Target != "SelectedPokemon" {
			t.Errorf("target = %q, want SelectedPokemon", result.Target)
		}
		if result.Effect != "ChanceParalyzeTarget" || result.EffectChance != 10 {
			t.Errorf("effect = %q/%d, want ChanceParalyzeTarget/10", result.Effect, result.EffectChance)
		}
		if result.Meta.Ailment != "Paralysis" || result.Meta.AilmentChance != 10 {
			t.Errorf("ailment = %q/%d, want Paralysis/10", result.Meta.Ailment, result.Meta.AilmentChance)
		}
		var contact, punch bool
		for _, flag := range result.Meta.Flags {
			switch flag {
			case "Contact":
				contact = true
			case "Punch":
				punch = true
			}
		}
		if !contact || !punch {
			t.Errorf("flags = %v, want Contact and Punch", result.Meta.Flags)
		}
	})

	t.Run("by name", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, MoveLookupInput{Name: "thunder-punch"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ID != 9 {
			t.Errorf("id = %d, want 9", result.ID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, MoveLookupInput{Name: "metronome-but-wrong"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})

	t.Run("missing input", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, MoveLookupInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})

	t.Run("nil bundle", func(t *testing.T) {
		handler := MoveLookupHandler(nil)
		_, _, err := handler(context.Background(), nil, MoveLookupInput{ID: 9})
		if err == nil {
			t.Fatal("expected error for missing bundle")
		}
	})
}

func TestMoveLookupHandlerFlattensMeta(t *testing.T) {
	dex := testDex(t)
	handler := MoveLookupHandler(dex)

	_, wrap, err := handler(context.Background(), nil, MoveLookupInput{Name: "wrap"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if wrap.Meta.Ailment != "Trap" {
		t.Errorf("wrap ailment = %q, want Trap", wrap.Meta.Ailment)
	}
	if wrap.Meta.MinTurns != 4 || wrap.Meta.MaxTurns != 5 {
		t.Errorf("wrap turns = %d..%d, want 4..5", wrap.Meta.MinTurns, wrap.Meta.MaxTurns)
	}

	_, doubleEdge, err := handler(context.Background(), nil, MoveLookupInput{Name: "double-edge"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doubleEdge.Meta.Drain != -33 {
		t.Errorf("double-edge drain = %d, want -33", doubleEdge.Meta.Drain)
	}
}

func TestItemLookupHandler(t *testing.T) {
	dex := testDex(t)
	handler := ItemLookupHandler(dex)

	t.Run("by name", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, ItemLookupInput{Name: "master-ball"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Name != "MasterBall" {
			t.Errorf("name = %q, want MasterBall", result.Name)
		}
		if result.Category != "StandardBalls" || result.Pocket != "Pokeballs" {
			t.Errorf("category/pocket = %s/%s, want StandardBalls/Pokeballs", result.Category, result.Pocket)
		}
		if result.FlingEffect != "" || result.FlingPower != 0 {
			t.Errorf("fling = %q/%d, want none", result.FlingEffect, result.FlingPower)
		}
		if result.Berry != nil {
			t.Error("master-ball reported berry properties")
		}
	})

	t.Run("berry item carries berry", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, ItemLookupInput{Name: "cheri-berry"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.FlingEffect != "ActivateBerry" || result.FlingPower != 10 {
			t.Errorf("fling = %q/%d, want ActivateBerry/10", result.FlingEffect, result.FlingPower)
		}
		if result.Berry == nil {
			t.Fatal("cheri-berry reported no berry properties")
		}
		if result.Berry.ID != 1 || result.Berry.NaturalGiftPower != 60 || result.Berry.NaturalGiftType != "Fire" {
			t.Errorf("berry = %+v, want id 1 natural gift 60 Fire", result.Berry)
		}
		if result.Berry.Flavor != "Spicy" {
			t.Errorf("flavor = %q, want Spicy", result.Berry.Flavor)
		}
	})

	t.Run("not found", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, ItemLookupInput{ID: 99999})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})
}

func TestBerryLookupHandler(t *testing.T) {
	dex := testDex(t)
	handler := BerryLookupHandler(dex)

	t.Run("by number", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, BerryLookupInput{ID: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ItemID != 126 {
			t.Errorf("item id = %d, want 126", result.ItemID)
		}
		if result.Item != "CheriBerry" {
			t.Errorf("item = %q, want CheriBerry", result.Item)
		}
		if result.NaturalGiftPower != 60 || result.NaturalGiftType != "Fire" {
			t.Errorf("natural gift = %d %s, want 60 Fire", result.NaturalGiftPower, result.NaturalGiftType)
		}
	})

	t.Run("by item name", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, BerryLookupInput{Name: "sitrus-berry"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ID != 10 {
			t.Errorf("berry id = %d, want 10", result.ID)
		}
		if result.Flavor != "" {
			t.Errorf("flavor = %q, want flavorless", result.Flavor)
		}
	})

	t.Run("item is not a berry", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, BerryLookupInput{Name: "potion"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})
}

func TestSpeciesLookupHandler(t *testing.T) {
	dex := testDex(t)
	handler := SpeciesLookupHandler(dex)

	t.Run("evolution chain", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, SpeciesLookupInput{ID: 237})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Name != "Hitmontop" {
			t.Errorf("name = %q, want Hitmontop", result.Name)
		}
		if result.EvolvesFrom == nil {
			t.Fatal("hitmontop reported no evolution")
		}
		if result.EvolvesFrom.FromID != 236 || result.EvolvesFrom.Trigger != "LevelUp" || result.EvolvesFrom.Level != 20 {
			t.Errorf("evolution = %+v, want from 236 LevelUp at 20", result.EvolvesFrom)
		}
		if result.EvolvesFrom.RelativePhysicalStats == nil || *result.EvolvesFrom.RelativePhysicalStats != 0 {
			t.Errorf("relative stats = %v, want 0", result.EvolvesFrom.RelativePhysicalStats)
		}
	})

	t.Run("evolution item resolves name", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, SpeciesLookupInput{Name: "raichu"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EvolvesFrom == nil {
			t.Fatal("raichu reported no evolution")
		}
		if result.EvolvesFrom.Trigger != "UseItem" || result.EvolvesFrom.Item != "ThunderStone" {
			t.Errorf("evolution = %+v, want UseItem with ThunderStone", result.EvolvesFrom)
		}
		if result.EvolvesFrom.Gender != "" {
			t.Errorf("gender = %q, want empty for either gender", result.EvolvesFrom.Gender)
		}
	})

	t.Run("base species has no evolution", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, SpeciesLookupInput{Name: "eevee"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.EvolvesFrom != nil {
			t.Errorf("eevee evolution = %+v, want none", result.EvolvesFrom)
		}
	})

	t.Run("forms listed", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, SpeciesLookupInput{Name: "rotom"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Pokemon) != 6 {
			t.Fatalf("rotom pokemon = %d, want 6", len(result.Pokemon))
		}
		if result.Pokemon[0].Form != "" {
			t.Errorf("default form = %q, want empty", result.Pokemon[0].Form)
		}
	})

	t.Run("not found", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, SpeciesLookupInput{ID: 9999})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})
}

func TestPokemonLookupHandler(t *testing.T) {
	dex := testDex(t)
	handler := PokemonLookupHandler(dex)

	t.Run("by id", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, PokemonLookupInput{ID: 25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Species != "Pikachu" {
			t.Errorf("species = %q, want Pikachu", result.Species)
		}
		if result.Stats.HP != 35 || result.Stats.Attack != 55 || result.Stats.Speed != 90 {
			t.Errorf("stats = %+v, want 35/55/90 HP/Attack/Speed", result.Stats)
		}
		if len(result.Abilities) != 1 || result.Abilities[0] != "Static" {
			t.Errorf("abilities = %v, want [Static]", result.Abilities)
		}
		if result.HiddenAbility != "LightningRod" {
			t.Errorf("hidden ability = %q, want LightningRod", result.HiddenAbility)
		}
	})

	t.Run("by species and form", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, PokemonLookupInput{Species: "rotom", Form: "heat"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ID != 657 {
			t.Errorf("id = %d, want 657", result.ID)
		}
	})

	t.Run("default form", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, PokemonLookupInput{Species: "charizard"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ID != 6 {
			t.Errorf("id = %d, want 6", result.ID)
		}
		if len(result.Types) != 2 || result.Types[0] != "Fire" || result.Types[1] != "Flying" {
			t.Errorf("types = %v, want [Fire Flying]", result.Types)
		}
	})

	t.Run("learnset for version group", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, PokemonLookupInput{ID: 25, VersionGroup: "BlackWhite"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Moves) == 0 {
			t.Fatal("pikachu learns no moves in Black/White")
		}
		var thunderbolt *PokemonLearnedMove
		for i := range result.Moves {
			if result.Moves[i].MoveID == 85 {
				thunderbolt = &result.Moves[i]
			}
		}
		if thunderbolt == nil {
			t.Fatal("pikachu does not learn thunderbolt in Black/White")
		}
		if thunderbolt.Method != "LevelUp" || thunderbolt.Level != 29 {
			t.Errorf("thunderbolt = %s at %d, want LevelUp at 29", thunderbolt.Method, thunderbolt.Level)
		}
	})

	t.Run("form change learnset", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, PokemonLookupInput{ID: 657, VersionGroup: "black-white"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var overheat bool
		for _, move := range result.Moves {
			if move.MoveID == 315 && move.Method == "FormChange" {
				overheat = true
			}
		}
		if !overheat {
			t.Error("rotom-heat should learn overheat by form change")
		}
	})

	t.Run("unknown version group", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, PokemonLookupInput{ID: 25, VersionGroup: "gen-six"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})

	t.Run("unknown form", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, PokemonLookupInput{Species: "rotom", Form: "plasma"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})
}

func TestNatureLookupHandler(t *testing.T) {
	dex := testDex(t)
	handler := NatureLookupHandler(dex)

	t.Run("adamant", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, NatureLookupInput{Name: "Adamant"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Neutral {
			t.Error("adamant reported as neutral")
		}
		if result.IncreasedStat != "Attack" || result.DecreasedStat != "SpecialAttack" {
			t.Errorf("stats = +%s/-%s, want +Attack/-SpecialAttack", result.IncreasedStat, result.DecreasedStat)
		}
		if result.LikedFlavor != "Spicy" || result.DislikedFlavor != "Dry" {
			t.Errorf("flavors = %s/%s, want Spicy/Dry", result.LikedFlavor, result.DislikedFlavor)
		}
	})

	t.Run("neutral nature", func(t *testing.T) {
		_, result, err := handler(context.Background(), nil, NatureLookupInput{Name: "hardy"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Neutral {
			t.Error("hardy reported as non-neutral")
		}
		if result.IncreasedStat != "" || result.LikedFlavor != "" {
			t.Errorf("hardy preferences = %+v, want none", result)
		}
	})

	t.Run("not found", func(t *testing.T) {
		toolResult, _, err := handler(context.Background(), nil, NatureLookupInput{Name: "zesty"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if toolResult == nil || !toolResult.IsError {
			t.Fatal("expected a tool error result")
		}
	})
}
