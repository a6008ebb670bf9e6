// Package state holds the application state and the update step that is its
// only mutator. The UI feeds user actions and completed commands in as
// messages and re-renders after every call to Update.
package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/micahco/musicdb/config"
)

const (
	ErrEmptyGenreName = "Please enter a genre name"
	StatusGenreAdded  = "Genre added successfully!"
)

// Backend performs the data-access work behind commands.
type Backend interface {
	FetchAlbums(ctx context.Context, cfg config.DBConfig) ([]string, error)
	AddGenre(ctx context.Context, cfg config.DBConfig, name string) error
}

// State is owned by the UI goroutine. Empty Err and Status mean "none".
type State struct {
	Albums    []string
	Err       string
	Loading   bool
	Config    config.DBConfig
	GenreName string
	Status    string
}

func New(cfg config.DBConfig) State {
	return State{Config: cfg}
}

type Msg interface {
	msg()
}

type (
	LoadAlbums   struct{}
	AlbumsLoaded struct {
		Titles []string
		Err    error
	}
	AddGenre   struct{}
	GenreAdded struct {
		Err error
	}
	GenreNameChanged struct {
		Name string
	}
)

func (LoadAlbums) msg()       {}
func (AlbumsLoaded) msg()     {}
func (AddGenre) msg()         {}
func (GenreAdded) msg()       {}
func (GenreNameChanged) msg() {}

// Cmd is work to run off the UI goroutine. Its result is fed back to Update.
type Cmd func(ctx context.Context) Msg

// Update applies msg to s and returns the command to run next, if any.
//
// Requests are not refused while Loading is set; when two commands are in
// flight the result delivered last wins.
func Update(s *State, b Backend, msg Msg) Cmd {
	switch msg := msg.(type) {
	case LoadAlbums:
		s.Loading = true
		s.Err = ""
		cfg := s.Config
		return func(ctx context.Context) Msg {
			titles, err := b.FetchAlbums(ctx, cfg)
			return AlbumsLoaded{Titles: titles, Err: err}
		}

	case AlbumsLoaded:
		s.Loading = false
		if msg.Err != nil {
			s.setErr(msg.Err.Error())
			return nil
		}
		s.Albums = msg.Titles

	case AddGenre:
		if strings.TrimSpace(s.GenreName) == "" {
			s.setErr(ErrEmptyGenreName)
			return nil
		}
		s.Loading = true
		s.Err = ""
		cfg, name := s.Config, s.GenreName
		return func(ctx context.Context) Msg {
			return GenreAdded{Err: b.AddGenre(ctx, cfg, name)}
		}

	case GenreAdded:
		s.Loading = false
		if msg.Err != nil {
			s.setErr(fmt.Sprintf("Failed to add genre: %s", msg.Err))
			return nil
		}
		s.Err = ""
		s.Status = StatusGenreAdded
		s.GenreName = ""

	case GenreNameChanged:
		s.GenreName = msg.Name
	}
	return nil
}

func (s *State) setErr(text string) {
	s.Err = text
	s.Status = ""
}
