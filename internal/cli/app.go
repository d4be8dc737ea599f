// Package cli provides the interactive shell around the recipe and
// authentication services.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/nuzair/recipebox/internal/service"
)

// App wires the services to the interactive shell.
type App struct {
	auth    *service.AuthService
	recipes *service.RecipeService
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp returns an App reading from stdin and writing to stdout.
func NewApp(auth *service.AuthService, recipes *service.RecipeService) *App {
	return &App{
		auth:    auth,
		recipes: recipes,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

// Run starts the shell and blocks until the user exits or input ends.
// The REPL reads commands through the same buffered reader the prompt
// helpers use, so piped input is consumed in order.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.auth.CurrentUser(); user != nil {
		return user.Username
	}
	return "not logged in"
}
