package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI shows the player's health, the engaged enemy's health while the
// enemy health bar is visible, and the kill tally.
type HUDUI struct {
	UI *ebitenui.UI

	playerLabel *widget.Label
	enemyLabel  *widget.Label
	killsLabel  *widget.Label

	face text.Face
}

// NewHUDUI creates the HUD with ebitenui
func NewHUDUI() (*HUDUI, error) {
	hud := &HUDUI{}
	if err := hud.loadFonts(); err != nil {
		return nil, err
	}
	hud.buildUI()
	return hud, nil
}

func (hud *HUDUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load hud font: %w", err)
	}
	hud.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.HUDFontSize,
	}
	return nil
}

func (hud *HUDUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	hud.playerLabel = hud.newLabel(cfg.UI.PlayerColor)
	hud.enemyLabel = hud.newLabel(cfg.UI.BodyColor)
	hud.killsLabel = hud.newLabel(color.RGBA{200, 200, 200, 255})

	column.AddChild(hud.playerLabel)
	column.AddChild(hud.enemyLabel)
	column.AddChild(hud.killsLabel)
	root.AddChild(column)

	hud.UI = &ebitenui.UI{Container: root}
}

func (hud *HUDUI) newLabel(c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &hud.face, &widget.LabelColor{Idle: c}),
	)
}

// Refresh copies world state into the labels and updates the widget tree.
func (hud *HUDUI) Refresh(w donburi.World) {
	hud.playerLabel.Label, hud.enemyLabel.Label = HUDText(w)
	hud.killsLabel.Label = KillsText(w)
	hud.UI.Update()
}

func (hud *HUDUI) Draw(screen *ebiten.Image) {
	hud.UI.Draw(screen)
}

// HUDText formats the player and engaged enemy lines. The enemy line is empty
// unless the player's enemy health bar is visible.
func HUDText(w donburi.World) (player, enemy string) {
	playerEntry, ok := components.PlayerController.First(w)
	if !ok {
		return "", ""
	}
	if playerEntry.HasComponent(components.Health) {
		hp := components.Health.Get(playerEntry)
		if hp.Current <= 0 {
			player = "DOWN"
		} else {
			player = fmt.Sprintf("HP %.0f/%.0f", hp.Current, hp.Max)
		}
	}

	if !components.PlayerController.Get(playerEntry).EnemyHealthBarVisible {
		return player, ""
	}
	if !playerEntry.HasComponent(components.Combatant) {
		return player, ""
	}
	target := components.Combatant.Get(playerEntry).CombatTarget
	if !w.Valid(target) {
		return player, ""
	}
	targetEntry := w.Entry(target)
	if !targetEntry.HasComponent(components.Enemy) || !targetEntry.HasComponent(components.Health) {
		return player, ""
	}
	enemyData := components.Enemy.Get(targetEntry)
	hp := components.Health.Get(targetEntry)
	return player, fmt.Sprintf("%s %.0f/%.0f", enemyData.TypeName, max(hp.Current, 0), hp.Max)
}

// KillsText formats the total kill count.
func KillsText(w donburi.World) string {
	entry, ok := components.KillTally.First(w)
	if !ok {
		return ""
	}
	total := 0
	for _, n := range components.KillTally.Get(entry).Kills {
		total += n
	}
	return fmt.Sprintf("Kills %d", total)
}
