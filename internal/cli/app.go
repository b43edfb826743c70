// Package cli implements the interactive console for the engine: a small
// REPL for registering users, signing in, and checking credentials.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"
)

// Engine is the surface of the authentication engine consumed by the
// console. *services.AuthService satisfies it.
type Engine interface {
	Register(ctx context.Context, name string, password string) error
	SignIn(ctx context.Context, name string, password string) (string, error)
	Authenticate(ctx context.Context, credential string) (string, error)
}

type App struct {
	engine Engine
	reader *bufio.Reader
	out    io.Writer

	// credential issued by the last successful signin, or verified by the
	// last successful authenticate. Consumed by whoami.
	credential string
}

func NewApp(engine Engine) *App {
	return &App{
		engine: engine,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
