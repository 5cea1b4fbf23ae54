package engine

import "testing"

func TestSceneAddGameObject(t *testing.T) {
	scene := NewScene("Level")
	player := NewGameObject("Player")
	scene.AddGameObject(player)

	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != player {
		t.Fatalf("scene holds %v", scene.GameObjects)
	}
	if player.Scene != scene {
		t.Error("Scene back-reference not set")
	}
	if scene.FindByUID(player.UID) != player {
		t.Error("FindByUID should return the added object")
	}
	if scene.FindByUID(player.UID+1000) != nil {
		t.Error("unknown UID should return nil")
	}
}

func TestSceneRemoveKeepsOthersFindable(t *testing.T) {
	scene := NewScene("Level")
	initial := NewGameObject("InitialPillar")
	next := NewGameObject("NextPillar")
	scene.AddGameObject(initial)
	scene.AddGameObject(next)

	scene.RemoveGameObject(initial)
	if len(scene.GameObjects) != 1 || scene.GameObjects[0] != next {
		t.Fatalf("scene holds %v after removal", scene.GameObjects)
	}
	if scene.FindByUID(initial.UID) != nil || initial.Scene != nil {
		t.Error("removed pillar still reachable")
	}
	if scene.FindByUID(next.UID) != next {
		t.Error("remaining pillar lost from the UID index")
	}
}

func TestSceneFindByName(t *testing.T) {
	scene := NewScene("Level")
	pillar := NewGameObject("NextPillar")
	scene.AddGameObject(pillar)

	if scene.FindByName("NextPillar") != pillar {
		t.Error("FindByName missed the pillar")
	}
	if scene.FindByName("Span") != nil {
		t.Error("FindByName should return nil for an absent name")
	}
}

func TestSceneFindByKind(t *testing.T) {
	scene := NewScene("Test")
	spike1 := NewGameObject("Spike1")
	spike2 := NewGameObject("Spike2")
	player := NewGameObject("Player")

	spike1.Kind = KindSpikeTrap
	spike2.Kind = KindSpikeTrap
	player.Kind = KindPlayer
	spike2.SetActive(false)

	scene.AddGameObject(spike1)
	scene.AddGameObject(spike2)
	scene.AddGameObject(player)

	spikes := scene.FindByKind(KindSpikeTrap)
	if len(spikes) != 2 {
		t.Errorf("Expected 2 spikes (active or not), got %d", len(spikes))
	}

	players := scene.FindByKind(KindPlayer)
	if len(players) != 1 {
		t.Errorf("Expected 1 player, got %d", len(players))
	}

	notFound := scene.FindByKind(KindHammerTrap)
	if len(notFound) != 0 {
		t.Error("FindByKind should return empty slice for an absent kind")
	}
}

func TestSceneAddGameObjectTwice(t *testing.T) {
	scene := NewScene("Test")
	obj := NewGameObject("Pillar")

	scene.AddGameObject(obj)
	scene.AddGameObject(obj)

	if len(scene.GameObjects) != 1 {
		t.Errorf("duplicate add should be ignored, got %d objects", len(scene.GameObjects))
	}
}

func TestSceneRemoveTakesAttachedTraps(t *testing.T) {
	scene := NewScene("Level")
	span := NewGameObject("Span")
	hammer := NewGameObject("Hammer")
	scene.AddGameObject(span)
	scene.AddGameObject(hammer)
	span.AddChild(hammer)

	scene.RemoveGameObject(span)
	if len(scene.GameObjects) != 0 {
		t.Errorf("expected an empty scene, got %d objects", len(scene.GameObjects))
	}
	if scene.FindByUID(span.UID) != nil || scene.FindByUID(hammer.UID) != nil {
		t.Error("span or its trap still indexed")
	}
}

func TestZeroSceneIndexesLazily(t *testing.T) {
	var scene Scene
	pillar := NewGameObject("Pillar")
	scene.AddGameObject(pillar)
	if scene.FindByUID(pillar.UID) != pillar {
		t.Error("zero-value scene should index on first add")
	}
}
