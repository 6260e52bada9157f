package entities

import (
	"testing"

	"github.com/decker502/resourcerun/pkg/components"
	"github.com/decker502/resourcerun/pkg/config"
	"github.com/decker502/resourcerun/pkg/ecs"
	"github.com/decker502/resourcerun/pkg/types"
)

func TestNewDroppedItemEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	stack := types.ItemStack{Item: "log", Count: 3}

	id := NewDroppedItemEntity(em, stack, 2.5, 7.5, config.DroppedItemConfig{DespawnTime: 30})

	item, ok := ecs.GetComponent[*components.DroppedItemComponent](em, id)
	if !ok || item.Stack != stack {
		t.Fatalf("Unexpected dropped item %+v", item)
	}
	if !item.BobShrinking {
		t.Error("Bobbing should start by shrinking")
	}

	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.MaxLifetime != 30 {
		t.Errorf("Expected 30s lifetime, got %+v", lifetime)
	}

	scale, ok := ecs.GetComponent[*components.ScaleComponent](em, id)
	if !ok || scale.ScaleX != 1 || scale.ScaleY != 1 {
		t.Errorf("Expected unit scale, got %+v", scale)
	}
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig().Player

	id := NewPlayerEntity(em, 24.5, 24.5, cfg)

	stamina, ok := ecs.GetComponent[*components.StaminaComponent](em, id)
	if !ok || stamina.Current != cfg.MaxStamina || stamina.Fill != 1 {
		t.Errorf("Player should start with full stamina, got %+v", stamina)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok || player.Facing != components.FacingRight || player.Frozen {
		t.Errorf("Unexpected player state %+v", player)
	}

	if !ecs.HasComponent[*components.MovementInputComponent](em, id) {
		t.Error("Player should have movement input")
	}
}
