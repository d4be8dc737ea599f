package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuzair/recipebox/internal/catalog"
	"github.com/nuzair/recipebox/internal/database"
	"github.com/nuzair/recipebox/internal/repository"
	"github.com/nuzair/recipebox/internal/service"
	"github.com/nuzair/recipebox/internal/tokenstore"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)

	users := repository.NewGormUsers(db)
	recipes := repository.NewGormRecipes(db)
	auth := service.NewAuthService(users, recipes, tokenstore.NewMemory(), log)
	svc := service.NewRecipeService(recipes, catalog.Load(), log)
	auth.SetRecipeService(svc)

	var out bytes.Buffer
	return &App{
		auth:    auth,
		recipes: svc,
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     &out,
	}, &out
}

func TestProfileImageCommand(t *testing.T) {
	ctx := context.Background()
	app, out := newTestApp(t)
	require.NoError(t, app.auth.Register(ctx, "nuzair", "secret-pass"))

	image := []byte{0x89, 'P', 'N', 'G'}
	path := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(path, image, 0o600))

	require.NoError(t, app.ProfileImage(ctx, []string{path}))

	assert.Equal(t, image, app.auth.CurrentUser().ProfileImage)
	assert.Contains(t, out.String(), "Profile image updated.")
}

func TestProfileImageCommandRequiresPath(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t)
	require.NoError(t, app.auth.Register(ctx, "nuzair", "secret-pass"))

	err := app.ProfileImage(ctx, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestProfileImageCommandMissingFile(t *testing.T) {
	ctx := context.Background()
	app, _ := newTestApp(t)
	require.NoError(t, app.auth.Register(ctx, "nuzair", "secret-pass"))

	err := app.ProfileImage(ctx, []string{filepath.Join(t.TempDir(), "nope.png")})
	require.Error(t, err)
	assert.Nil(t, app.auth.CurrentUser().ProfileImage)
}
