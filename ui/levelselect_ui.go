package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LevelEntry is one row of the level list.
type LevelEntry struct {
	Name string
	Path string
	// Acorns is the number of acorns in the level, or -1 if it failed to load.
	Acorns int
}

type LevelSelectUI struct {
	UI *ebitenui.UI

	OnPlay func(entry LevelEntry)

	levels      []LevelEntry
	selected    int
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewLevelSelectUI(levels []LevelEntry, best int, onPlay func(entry LevelEntry)) (*LevelSelectUI, error) {
	ui := &LevelSelectUI{
		OnPlay: onPlay,
		levels: levels,
	}
	if err := ui.loadFonts(); err != nil {
		return nil, err
	}
	ui.buildUI(best)
	return ui, nil
}

func (ui *LevelSelectUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("ui font: %w", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
	return nil
}

func (ui *LevelSelectUI) buildUI(best int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{24, 40, 24, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PETE", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 230, 160, 255},
		}),
	))
	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("Best: %d acorns", best), &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))

	for i, entry := range ui.levels {
		contentContainer.AddChild(ui.levelButton(i, entry))
	}

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
	ui.highlight()
}

func (ui *LevelSelectUI) levelButton(i int, entry LevelEntry) *widget.Button {
	label := entry.Name
	if entry.Acorns >= 0 {
		label = fmt.Sprintf("%s  (%d acorns)", entry.Name, entry.Acorns)
	}

	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{60, 80, 50, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{90, 120, 70, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{40, 60, 35, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{50, 50, 50, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 240, 200, 255},
			Pressed:  color.RGBA{200, 200, 150, 255},
			Disabled: color.RGBA{120, 120, 120, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.selected = i
			ui.Play()
		}),
	)
	if entry.Acorns < 0 {
		btn.GetWidget().Disabled = true
	}
	return btn
}

// Move shifts the keyboard selection by delta, skipping broken levels.
func (ui *LevelSelectUI) Move(delta int) {
	n := len(ui.levels)
	if n == 0 {
		return
	}
	for range n {
		ui.selected = (ui.selected + delta + n) % n
		if ui.levels[ui.selected].Acorns >= 0 {
			break
		}
	}
	ui.highlight()
}

// Play starts the selected level if it loaded.
func (ui *LevelSelectUI) Play() {
	if ui.selected < 0 || ui.selected >= len(ui.levels) {
		return
	}
	entry := ui.levels[ui.selected]
	if entry.Acorns < 0 {
		ui.SetStatus(entry.Name + " failed to load")
		return
	}
	if ui.OnPlay != nil {
		ui.OnPlay(entry)
	}
}

func (ui *LevelSelectUI) Selected() int {
	return ui.selected
}

func (ui *LevelSelectUI) highlight() {
	if ui.selected < 0 || ui.selected >= len(ui.levels) {
		return
	}
	ui.SetStatus("> " + ui.levels[ui.selected].Name + "   Up/Down to choose, Enter to play")
}

func (ui *LevelSelectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LevelSelectUI) Update() {
	ui.UI.Update()
}
