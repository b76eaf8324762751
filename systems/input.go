package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the Input component and
// forwards the result to the local player.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs.World)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}
	mergeAnalogStick(input)

	ApplyPlayerInput(ecs.World)
}

// mergeAnalogStick folds the left sticks into the directional actions.
func mergeAnalogStick(input *components.InputData) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			input.Current[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			input.Current[cfg.ActionMoveRight] = true
		}
		if vertical < -deadzone {
			input.Current[cfg.ActionMoveUp] = true
		}
		if vertical > deadzone {
			input.Current[cfg.ActionMoveDown] = true
		}
	}
}

// ApplyPlayerInput turns the current action states into the local player's
// move direction and attack request.
func ApplyPlayerInput(w donburi.World) {
	input := GetOrCreateInput(w)

	dx, dy := 0.0, 0.0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy++
	}
	// Diagonals move at the same speed as straight lines
	if dx != 0 && dy != 0 {
		dx, dy = dx/math.Sqrt2, dy/math.Sqrt2
	}

	attack := GetAction(input, cfg.ActionAttack).JustPressed
	components.PlayerController.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Player) {
			return
		}
		player := components.Player.Get(e)
		player.Direction = components.Vector{X: dx, Y: dy}
		if attack {
			player.AttackPressed = true
		}
	})
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
