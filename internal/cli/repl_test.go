package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                                      { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error                    { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error                       { s.loggedIn = true; return s.record("login") }
func (s *stubExec) Logout(ctx context.Context) error                      { s.loggedIn = false; return s.record("logout") }
func (s *stubExec) DeleteAccount(ctx context.Context) error               { return s.record("delete-account") }
func (s *stubExec) List(ctx context.Context) error                        { return s.record("list") }
func (s *stubExec) Show(ctx context.Context, args []string) error         { return s.record("show") }
func (s *stubExec) Add(ctx context.Context) error                         { return s.record("add") }
func (s *stubExec) Delete(ctx context.Context, args []string) error       { return s.record("delete") }
func (s *stubExec) Favorite(ctx context.Context, args []string) error     { return s.record("fav") }
func (s *stubExec) Share(ctx context.Context, args []string) error        { return s.record("share") }
func (s *stubExec) Search(ctx context.Context, args []string) error       { return s.record("search") }
func (s *stubExec) Filter(ctx context.Context, args []string) error       { return s.record("filter") }
func (s *stubExec) Types(ctx context.Context) error                       { return s.record("types") }
func (s *stubExec) Seed(ctx context.Context, args []string) error         { return s.record("seed") }
func (s *stubExec) ProfileImage(ctx context.Context, args []string) error { return s.record("profile-image") }

func runWithInput(t *testing.T, stub *stubExec, input string) []string {
	t.Helper()
	var output []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		output = append(output, fmt.Sprint(a...))
		return 0, nil
	}
	defer func() { printlnFn = orig }()

	runREPL(context.Background(), stub, func() string { return "test" }, bufio.NewReader(strings.NewReader(input)))
	return output
}

func TestREPLDispatch(t *testing.T) {
	stub := &stubExec{}
	runWithInput(t, stub, "login\nlist\nfav 1\nlogout\nexit\n")
	assert.Equal(t, []string{"login", "list", "fav", "logout"}, stub.calls)
}

func TestREPLDispatchesProfileImage(t *testing.T) {
	stub := &stubExec{loggedIn: true}
	runWithInput(t, stub, "profile-image avatar.png\nexit\n")
	assert.Equal(t, []string{"profile-image"}, stub.calls)
}

func TestREPLHintsWhenLoggedOut(t *testing.T) {
	stub := &stubExec{}
	output := runWithInput(t, stub, "list\nadd\nseed\nprofile-image x.png\nquit\n")
	assert.Empty(t, stub.calls)

	hints := 0
	for _, line := range output {
		if strings.Contains(line, "log in first") {
			hints++
		}
	}
	assert.Equal(t, 4, hints)
}

func TestREPLHintsWhenAlreadyLoggedIn(t *testing.T) {
	stub := &stubExec{loggedIn: true}
	output := runWithInput(t, stub, "login\nregister\nexit\n")
	assert.Empty(t, stub.calls)
	assert.Contains(t, strings.Join(output, "\n"), "Already logged in.")
}

func TestREPLUnknownCommandKeepsRunning(t *testing.T) {
	stub := &stubExec{}
	runWithInput(t, stub, "bogus\nregister\nexit\n")
	assert.Equal(t, []string{"register"}, stub.calls)
}

func TestREPLExitsOnEOF(t *testing.T) {
	stub := &stubExec{}
	runWithInput(t, stub, "register\n")
	assert.Equal(t, []string{"register"}, stub.calls)
}

func TestREPLHandlesLineWithoutTrailingNewline(t *testing.T) {
	stub := &stubExec{}
	runWithInput(t, stub, "register")
	assert.Equal(t, []string{"register"}, stub.calls)
}
