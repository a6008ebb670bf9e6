// Package ui renders the application state with Fyne and turns widget events
// into state messages.
package ui

import (
	"context"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/micahco/musicdb/config"
	"github.com/micahco/musicdb/state"
)

const (
	WindowTitle = "Music Database GUI"

	textLoadAlbums  = "Load Albums"
	textLoading     = "Loading..."
	textNoAlbums    = "No albums loaded. Click 'Load Albums' to fetch data."
	textLoadingList = "Loading albums..."
	textFooter      = "Music Database GUI - Go + PostgreSQL + Fyne"
)

var (
	headingColor = color.NRGBA{R: 0x33, G: 0x33, B: 0xcc, A: 0xff}
	statusColor  = color.NRGBA{G: 0xb3, A: 0xff}
	errorColor   = color.NRGBA{R: 0xff, A: 0xff}
	footerColor  = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
)

type View struct {
	state   state.State
	backend state.Backend
	ctx     context.Context
	log     zerolog.Logger
	run     func(state.Cmd)

	genreEntry  *widget.Entry
	addButton   *widget.Button
	loadButton  *widget.Button
	status      *canvas.Text
	errText     *widget.Label
	errBox      *fyne.Container
	albums      *widget.List
	placeholder *widget.Label
	content     fyne.CanvasObject
}

// New builds the view. Commands run until ctx is cancelled.
func New(ctx context.Context, backend state.Backend, cfg config.DBConfig, log zerolog.Logger) *View {
	v := &View{
		state:   state.New(cfg),
		backend: backend,
		ctx:     ctx,
		log:     log.With().Str("component", "ui").Logger(),
	}
	v.run = v.runAsync
	v.build()
	v.render()
	return v
}

func (v *View) Content() fyne.CanvasObject {
	return v.content
}

func (v *View) State() state.State {
	return v.state
}

// Dispatch must be called on the Fyne goroutine.
func (v *View) Dispatch(msg state.Msg) {
	v.log.Debug().Str("msg", fmt.Sprintf("%T", msg)).Msg("dispatch")

	cmd := state.Update(&v.state, v.backend, msg)
	v.render()
	if cmd != nil {
		v.run(cmd)
	}
}

func (v *View) runAsync(cmd state.Cmd) {
	go func() {
		msg := cmd(v.ctx)
		fyne.Do(func() { v.Dispatch(msg) })
	}()
}

func (v *View) build() {
	heading := canvas.NewText("Music Database", headingColor)
	heading.TextSize = 24
	heading.TextStyle = fyne.TextStyle{Bold: true}

	v.genreEntry = widget.NewEntry()
	v.genreEntry.SetPlaceHolder("Genre Name")
	v.genreEntry.OnChanged = func(name string) {
		v.Dispatch(state.GenreNameChanged{Name: name})
	}
	v.genreEntry.OnSubmitted = func(string) {
		v.Dispatch(state.AddGenre{})
	}

	v.addButton = widget.NewButton("Add Genre", func() {
		v.Dispatch(state.AddGenre{})
	})
	v.addButton.Importance = widget.HighImportance

	genreForm := widget.NewCard("Add New Genre", "",
		container.NewVBox(
			container.NewGridWrap(fyne.NewSize(300, v.genreEntry.MinSize().Height), v.genreEntry),
			container.NewHBox(v.addButton),
		))

	v.loadButton = widget.NewButton(textLoadAlbums, func() {
		v.Dispatch(state.LoadAlbums{})
	})
	v.loadButton.Importance = widget.HighImportance

	v.status = canvas.NewText("", statusColor)

	errLabel := canvas.NewText("Error:", errorColor)
	errLabel.TextStyle = fyne.TextStyle{Bold: true}
	v.errText = widget.NewLabel("")
	v.errText.Wrapping = fyne.TextWrapWord
	v.errBox = container.NewVBox(errLabel, v.errText)

	albumsHeading := widget.NewLabelWithStyle("Albums:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	v.albums = widget.NewList(
		func() int {
			return len(v.state.Albums)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(albumLine(id, v.state.Albums[id]))
		},
	)
	v.placeholder = widget.NewLabel(textNoAlbums)

	footer := canvas.NewText(textFooter, footerColor)
	footer.TextSize = 12
	footer.Alignment = fyne.TextAlignCenter

	top := container.NewVBox(
		heading,
		genreForm,
		container.NewHBox(v.loadButton),
		v.status,
		v.errBox,
		albumsHeading,
	)

	v.content = container.NewPadded(container.NewBorder(
		top,
		footer,
		nil,
		nil,
		container.NewStack(v.albums, container.NewVBox(v.placeholder)),
	))
}

func albumLine(i int, title string) string {
	return fmt.Sprintf("%d. %s", i+1, title)
}

func (v *View) render() {
	s := v.state

	if v.genreEntry.Text != s.GenreName {
		v.genreEntry.SetText(s.GenreName)
	}

	if s.Loading {
		v.loadButton.SetText(textLoading)
		v.loadButton.Disable()
	} else {
		v.loadButton.SetText(textLoadAlbums)
		v.loadButton.Enable()
	}

	if s.Status != "" {
		v.status.Text = s.Status
		v.status.Show()
	} else {
		v.status.Hide()
	}
	v.status.Refresh()

	if s.Err != "" {
		v.errText.SetText(s.Err)
		v.errBox.Show()
	} else {
		v.errBox.Hide()
	}

	switch {
	case len(s.Albums) > 0:
		v.placeholder.Hide()
		v.albums.Show()
	case s.Loading:
		v.placeholder.SetText(textLoadingList)
		v.placeholder.Show()
		v.albums.Hide()
	default:
		v.placeholder.SetText(textNoAlbums)
		v.placeholder.Show()
		v.albums.Hide()
	}
	v.albums.Refresh()
}
