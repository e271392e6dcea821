// ABOUTME: Tests for the root TUI model
// ABOUTME: Covers screen routing, login interruptions, and stale completions

package tui

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/token"
	"github.com/blogify/blogctl/internal/tui/loginform"
	"github.com/blogify/blogctl/internal/tui/postview"
)

func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	if err != nil {
		t.Fatalf("marshal header: %v", err)
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + ".sig"
}

func newTestApp(t *testing.T) (*App, *token.Store) {
	t.Helper()
	store := token.New(filepath.Join(t.TempDir(), "blogctl"))
	c := client.New("http://127.0.0.1:0", store)
	return New(c, store), store
}

func loadedPost(a *App, id string) postLoadedMsg {
	post := &client.Post{ID: id, Title: "Hello"}
	return postLoadedMsg{seq: a.seq, post: post}
}

func TestNewAppStartsOnFeed(t *testing.T) {
	app, _ := newTestApp(t)

	if app.screen != ScreenFeed {
		t.Errorf("screen = %d, want ScreenFeed", app.screen)
	}
	if app.session.Authenticated {
		t.Error("expected anonymous session with an empty token store")
	}
}

func TestSessionDerivedFromStoredToken(t *testing.T) {
	app, store := newTestApp(t)

	tok := makeToken(t, map[string]any{"id": "u1", "name": "Ada", "email": "ada@example.com"})
	if err := store.Set(tok); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	app.refreshSession()

	if !app.session.Authenticated {
		t.Fatal("expected authenticated session")
	}
	if app.session.Identity.Name != "Ada" {
		t.Errorf("Identity.Name = %q, want %q", app.session.Identity.Name, "Ada")
	}
}

func TestPostLoadedMountsPostScreen(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(loadedPost(app, "p1"))
	app = model.(*App)

	if app.screen != ScreenPost {
		t.Errorf("screen = %d, want ScreenPost", app.screen)
	}
	if app.postView == nil || app.postView.PostID() != "p1" {
		t.Error("expected post view mounted for p1")
	}
}

func TestStalePostLoadIsDropped(t *testing.T) {
	app, _ := newTestApp(t)

	stale := loadedPost(app, "p1")
	app.nextSeq() // a newer fetch supersedes the one in flight

	model, _ := app.Update(stale)
	app = model.(*App)

	if app.screen != ScreenFeed {
		t.Errorf("screen = %d, want ScreenFeed after stale completion", app.screen)
	}
	if app.postView != nil {
		t.Error("stale completion must not mount a post view")
	}
}

func TestPostNotFoundReturnsToFeed(t *testing.T) {
	app, _ := newTestApp(t)

	msg := postLoadedMsg{seq: app.seq, err: &client.APIError{Kind: client.KindNotFound, Message: "post not found", StatusCode: 404}}
	model, _ := app.Update(msg)
	app = model.(*App)

	if app.screen != ScreenFeed {
		t.Errorf("screen = %d, want ScreenFeed", app.screen)
	}
	if app.notice == "" {
		t.Error("expected a notice for the missing post")
	}
}

func TestLoginRequiredRemembersOrigin(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(loadedPost(app, "p7"))
	app = model.(*App)

	model, _ = app.Update(postview.LoginRequiredMsg{PostID: "p7"})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Fatalf("screen = %d, want ScreenLogin", app.screen)
	}
	if app.returnTo == nil || app.returnTo.postID != "p7" {
		t.Error("expected return target recorded for p7")
	}
}

func TestLoginSuccessReturnsToOriginPost(t *testing.T) {
	app, store := newTestApp(t)

	model, _ := app.Update(loadedPost(app, "p7"))
	app = model.(*App)
	model, _ = app.Update(postview.LoginRequiredMsg{PostID: "p7"})
	app = model.(*App)

	tok := makeToken(t, map[string]any{"id": "u1", "name": "Ada"})
	model, cmd := app.Update(authResultMsg{mode: loginform.ModeLogin, token: tok})
	app = model.(*App)

	if !app.session.Authenticated {
		t.Error("expected authenticated session after login")
	}
	if got, ok := store.Get(); !ok || got != tok {
		t.Error("expected token persisted to the store")
	}
	if cmd == nil {
		t.Fatal("expected a command reloading the origin post")
	}
	if app.returnTo != nil {
		t.Error("return target should be cleared after use")
	}

	// The reload completes and the reader is back on the post page,
	// now as an authenticated viewer.
	model, _ = app.Update(loadedPost(app, "p7"))
	app = model.(*App)
	if app.screen != ScreenPost {
		t.Errorf("screen = %d, want ScreenPost", app.screen)
	}
	if app.postView == nil || app.postView.PostID() != "p7" {
		t.Error("expected post view remounted for p7")
	}
}

func TestLoginFailureStaysOnLoginWithNotice(t *testing.T) {
	app, store := newTestApp(t)

	model, _ := app.Update(authResultMsg{mode: loginform.ModeLogin, err: &client.APIError{Kind: client.KindValidation, Message: "Invalid credentials", StatusCode: 400}})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Errorf("screen = %d, want ScreenLogin", app.screen)
	}
	if _, ok := store.Get(); ok {
		t.Error("failed login must not store a token")
	}
}

func TestRegisterSuccessSwitchesToLoginMode(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(authResultMsg{mode: loginform.ModeRegister})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Fatalf("screen = %d, want ScreenLogin", app.screen)
	}
	if app.loginView.Mode() != loginform.ModeLogin {
		t.Error("expected form switched to login mode after registration")
	}
}

func TestTokenRejectionEndsSession(t *testing.T) {
	app, store := newTestApp(t)

	tok := makeToken(t, map[string]any{"id": "u1", "name": "Ada"})
	if err := store.Set(tok); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	app.refreshSession()

	model, _ := app.Update(loadedPost(app, "p3"))
	app = model.(*App)

	rejected := &client.APIError{Kind: client.KindTokenRejected, Message: "Invalid token", StatusCode: 401}
	model, _ = app.Update(likeResultMsg{postID: "p3", err: rejected})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Errorf("screen = %d, want ScreenLogin", app.screen)
	}
	if _, ok := store.Get(); ok {
		t.Error("rejected token must be cleared from the store")
	}
	if app.session.Authenticated {
		t.Error("session must be anonymous after rejection")
	}
	if app.returnTo == nil || app.returnTo.postID != "p3" {
		t.Error("expected return target pointing at the interrupted post")
	}
}

func TestForbiddenDoesNotEndSession(t *testing.T) {
	app, store := newTestApp(t)

	tok := makeToken(t, map[string]any{"id": "u1", "name": "Ada"})
	if err := store.Set(tok); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	app.refreshSession()

	model, _ := app.Update(loadedPost(app, "p3"))
	app = model.(*App)

	forbidden := &client.APIError{Kind: client.KindForbidden, Message: "Forbidden", StatusCode: 403}
	model, _ = app.Update(likeResultMsg{postID: "p3", err: forbidden})
	app = model.(*App)

	if app.screen != ScreenPost {
		t.Errorf("screen = %d, want ScreenPost", app.screen)
	}
	if _, ok := store.Get(); !ok {
		t.Error("a forbidden action must not clear the token")
	}
}

func TestToggleResultForReplacedPostIsDropped(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.Update(loadedPost(app, "p1"))
	app = model.(*App)
	before := app.postView.State()

	model, _ = app.Update(likeResultMsg{postID: "other", resp: &client.ToggleResponse{Message: "Blog liked"}})
	app = model.(*App)

	after := app.postView.State()
	if len(before.Likes) != len(after.Likes) || before.IsLiked != after.IsLiked {
		t.Error("a result for another post must not touch the mounted view")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	app, store := newTestApp(t)

	tok := makeToken(t, map[string]any{"id": "u1", "name": "Ada"})
	if err := store.Set(tok); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	app.refreshSession()

	model, _ := app.toggleSignIn()
	app = model.(*App)

	if app.session.Authenticated {
		t.Error("expected anonymous session after logout")
	}
	if _, ok := store.Get(); ok {
		t.Error("expected token removed from the store")
	}
}

func TestDashboardRequiresLogin(t *testing.T) {
	app, _ := newTestApp(t)

	model, _ := app.gotoDashboard()
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Errorf("screen = %d, want ScreenLogin", app.screen)
	}
	if app.returnTo == nil || app.returnTo.screen != ScreenDashboard {
		t.Error("expected dashboard recorded as the return target")
	}
}

func TestLateToggleFailureForRemountedPostIsDropped(t *testing.T) {
	app, _ := newTestApp(t)

	post := &client.Post{
		ID:       "p1",
		Title:    "Hello",
		Likes:    []client.Like{{ID: "l1", UserID: "u2", PostID: "p1"}},
		Comments: []client.Comment{{ID: "c1", Content: "hello"}},
	}
	model, _ := app.Update(postLoadedMsg{seq: app.seq, post: post})
	app = model.(*App)

	// Navigate away and reopen the same post; the new view never
	// started a toggle.
	model, _ = app.Update(postLoadedMsg{seq: app.seq, post: post})
	app = model.(*App)

	late := &client.APIError{Kind: client.KindTransient, Message: "request timed out"}
	model, _ = app.Update(likeResultMsg{postID: "p1", err: late})
	app = model.(*App)

	state := app.postView.State()
	if len(state.Likes) != 1 || len(state.Comments) != 1 {
		t.Errorf("late failure wiped the remounted view: likes=%d comments=%d, want 1 and 1",
			len(state.Likes), len(state.Comments))
	}
}

func TestSessionExpiryReportsTokenRemovalFailure(t *testing.T) {
	// A token path that is a non-empty directory makes Clear fail.
	configDir := filepath.Join(t.TempDir(), "blogctl")
	if err := os.MkdirAll(filepath.Join(configDir, "token"), 0700); err != nil {
		t.Fatalf("MkdirAll() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "token", "blocker"), []byte("x"), 0600); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	store := token.New(configDir)
	app := New(client.New("http://127.0.0.1:0", store), store)

	model, _ := app.Update(loadedPost(app, "p3"))
	app = model.(*App)

	rejected := &client.APIError{Kind: client.KindTokenRejected, Message: "Invalid token", StatusCode: 401}
	model, _ = app.Update(likeResultMsg{postID: "p3", err: rejected})
	app = model.(*App)

	if app.screen != ScreenLogin {
		t.Fatalf("screen = %d, want ScreenLogin", app.screen)
	}
	if !strings.Contains(app.loginView.View(), "could not remove stored token") {
		t.Error("expected the removal failure surfaced on the login screen")
	}
}
