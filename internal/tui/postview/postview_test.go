// ABOUTME: Tests for the post detail screen
// ABOUTME: Covers auth short-circuits, optimistic toggles, and comment flow

package postview

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/session"
)

func anonViewer() session.Session {
	return session.Anonymous()
}

func authedViewer() session.Session {
	return session.Session{
		Authenticated: true,
		Identity:      &session.Identity{ID: "u1", Name: "Ada", Email: "ada@example.com"},
	}
}

func testPost() *client.Post {
	return &client.Post{
		ID:      "p1",
		Title:   "Hello",
		Content: "<p>Hello world</p>",
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUnauthenticatedLikeRoutesToLoginWithoutMutation(t *testing.T) {
	v := New(testPost(), anonViewer(), 80, 24)

	model, cmd := v.Update(key("l"))
	v = model.(*PostView)

	if cmd == nil {
		t.Fatal("expected a login-required command")
	}
	msg, ok := cmd().(LoginRequiredMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want LoginRequiredMsg", cmd())
	}
	if msg.PostID != "p1" {
		t.Errorf("PostID = %q, want %q", msg.PostID, "p1")
	}
	if v.State().IsLiked || len(v.State().Likes) != 0 {
		t.Error("unauthenticated like must not mutate state")
	}
}

func TestUnauthenticatedCommentRoutesToLogin(t *testing.T) {
	v := New(testPost(), anonViewer(), 80, 24)

	model, cmd := v.Update(key("c"))
	v = model.(*PostView)

	if cmd == nil {
		t.Fatal("expected a login-required command")
	}
	if _, ok := cmd().(LoginRequiredMsg); !ok {
		t.Fatalf("cmd() = %T, want LoginRequiredMsg", cmd())
	}
	if v.Composing() {
		t.Error("unauthenticated reader must not open the comment editor")
	}
}

func TestLikeFlipsOptimisticallyBeforeResponse(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, cmd := v.Update(key("l"))
	v = model.(*PostView)

	if cmd == nil {
		t.Fatal("expected a like request command")
	}
	if _, ok := cmd().(LikeRequestedMsg); !ok {
		t.Fatalf("cmd() = %T, want LikeRequestedMsg", cmd())
	}
	state := v.State()
	if !state.IsLiked {
		t.Error("expected IsLiked true immediately")
	}
	if len(state.Likes) != 1 || state.Likes[0].ID != "u1-p1" {
		t.Errorf("Likes = %+v, want one synthetic record with id u1-p1", state.Likes)
	}
}

func TestSecondLikePressWhileInFlightIsIgnored(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("l"))
	v = model.(*PostView)
	before := v.State()

	model, cmd := v.Update(key("l"))
	v = model.(*PostView)

	if cmd != nil {
		t.Error("second press must not issue another request")
	}
	after := v.State()
	if before.IsLiked != after.IsLiked || len(before.Likes) != len(after.Likes) {
		t.Error("second press must not mutate state")
	}
}

func TestResolveLikeFailureRollsBack(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("l"))
	v = model.(*PostView)

	v.ResolveLike(nil, errors.New("boom"))

	state := v.State()
	if state.IsLiked || len(state.Likes) != 0 {
		t.Error("failed toggle must restore the pre-toggle state")
	}
}

func TestResolveLikeConfirmAdoptsServerCollection(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("l"))
	v = model.(*PostView)

	server := []client.Like{
		{ID: "l1", UserID: "u1", PostID: "p1"},
		{ID: "l2", UserID: "u2", PostID: "p1"},
	}
	v.ResolveLike(&client.ToggleResponse{Message: "Blog liked", Likes: server}, nil)

	state := v.State()
	if len(state.Likes) != 2 {
		t.Fatalf("len(Likes) = %d, want 2", len(state.Likes))
	}
	if !state.IsLiked {
		t.Error("expected IsLiked recomputed from the server collection")
	}
	if state.Likes[0].ID != "l1" {
		t.Error("expected the synthetic record replaced by the server's")
	}
}

func TestFavoriteToggleIndependentOfLike(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, cmd := v.Update(key("f"))
	v = model.(*PostView)

	if cmd == nil {
		t.Fatal("expected a favorite request command")
	}
	if _, ok := cmd().(FavoriteRequestedMsg); !ok {
		t.Fatalf("cmd() = %T, want FavoriteRequestedMsg", cmd())
	}
	state := v.State()
	if !state.IsFavorited {
		t.Error("expected IsFavorited true immediately")
	}
	if state.IsLiked {
		t.Error("favorite toggle must not touch the like state")
	}
}

func TestCommentAppearsImmediatelyWithViewerIdentity(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("c"))
	v = model.(*PostView)
	if !v.Composing() {
		t.Fatal("expected editor opened")
	}

	v.input.SetValue("Great post!")
	model, cmd := v.Update(key("enter"))
	v = model.(*PostView)

	if cmd == nil {
		t.Fatal("expected a comment request command")
	}
	msg, ok := cmd().(CommentRequestedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want CommentRequestedMsg", cmd())
	}
	if msg.Content != "Great post!" {
		t.Errorf("Content = %q, want %q", msg.Content, "Great post!")
	}

	state := v.State()
	if len(state.Comments) != 1 {
		t.Fatalf("len(Comments) = %d, want 1", len(state.Comments))
	}
	c := state.Comments[0]
	if c.Content != "Great post!" {
		t.Errorf("Content = %q, want %q", c.Content, "Great post!")
	}
	if c.User.Name != "Ada" {
		t.Errorf("User.Name = %q, want %q", c.User.Name, "Ada")
	}
	if c.ID != msg.CommentID {
		t.Error("provisional record id must match the request's CommentID")
	}
	if v.input.Value() != "" {
		t.Error("expected editor cleared after submit")
	}
}

func TestWhitespaceOnlyCommentRejectedLocally(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("c"))
	v = model.(*PostView)
	v.input.SetValue("   \n  ")

	model, cmd := v.Update(key("enter"))
	v = model.(*PostView)

	if cmd != nil {
		t.Error("invalid comment must not issue a request")
	}
	if len(v.State().Comments) != 0 {
		t.Error("invalid comment must not be added to the list")
	}
	if v.notice == "" {
		t.Error("expected a validation notice")
	}
}

func TestResolveCommentFailureRemovesProvisional(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("c"))
	v = model.(*PostView)
	v.input.SetValue("Great post!")
	model, cmd := v.Update(key("enter"))
	v = model.(*PostView)
	msg := cmd().(CommentRequestedMsg)

	v.ResolveComment(msg.CommentID, errors.New("boom"))

	if len(v.State().Comments) != 0 {
		t.Error("rejected comment must be removed from the list")
	}
	if v.pendingComment != "" {
		t.Error("expected pending id cleared")
	}
}

func TestResolveCommentForUnknownIDIsDropped(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("c"))
	v = model.(*PostView)
	v.input.SetValue("Great post!")
	model, _ = v.Update(key("enter"))
	v = model.(*PostView)

	v.ResolveComment("someone-elses-id", errors.New("boom"))

	if len(v.State().Comments) != 1 {
		t.Error("a result for an untracked comment must not touch the list")
	}
}

func TestEscCancelsComposingWithoutSubmitting(t *testing.T) {
	v := New(testPost(), authedViewer(), 80, 24)

	model, _ := v.Update(key("c"))
	v = model.(*PostView)
	v.input.SetValue("draft text")

	model, cmd := v.Update(key("esc"))
	v = model.(*PostView)

	if cmd != nil {
		t.Error("cancel must not issue a request")
	}
	if v.Composing() {
		t.Error("expected editor closed")
	}
	if len(v.State().Comments) != 0 {
		t.Error("cancel must not add a comment")
	}
}

func TestViewerChangeRederivesToggleFlags(t *testing.T) {
	post := testPost()
	post.Likes = []client.Like{{ID: "l1", UserID: "u1", PostID: "p1"}}

	v := New(post, anonViewer(), 80, 24)
	if v.State().IsLiked {
		t.Error("anonymous viewer has no like flag")
	}

	v.SetViewer(authedViewer())
	if !v.State().IsLiked {
		t.Error("expected like flag derived for the new viewer")
	}
}

func TestFormatCommentTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"just posted", now, "1 minute ago"},
		{"minutes", now.Add(-10 * time.Minute), "10 minutes ago"},
		{"one hour", now.Add(-90 * time.Minute), "1 hour ago"},
		{"hours", now.Add(-5 * time.Hour), "5 hours ago"},
		{"old", now.Add(-48 * time.Hour), "May 30, 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatCommentTime(tt.at, now); got != tt.want {
				t.Errorf("formatCommentTime() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStripHTML(t *testing.T) {
	in := "<p>Hello &amp; welcome to <strong>Blogify</strong></p>"
	want := "Hello & welcome to Blogify"
	if got := stripHTML(in); got != want {
		t.Errorf("stripHTML() = %q, want %q", got, want)
	}
}

func TestResolveLikeWithNoRequestInFlightIsDropped(t *testing.T) {
	post := testPost()
	post.Likes = []client.Like{{ID: "l1", UserID: "u2", PostID: "p1"}}
	post.Comments = []client.Comment{{ID: "c1", Content: "hello"}}
	v := New(post, authedViewer(), 80, 24)

	v.ResolveLike(nil, errors.New("boom"))

	state := v.State()
	if len(state.Likes) != 1 || len(state.Comments) != 1 {
		t.Errorf("a result with no toggle in flight must not touch state, got %d likes %d comments",
			len(state.Likes), len(state.Comments))
	}
	if v.notice != "" {
		t.Error("a dropped result must not surface a notice")
	}
}

func TestResolveFavoriteWithNoRequestInFlightIsDropped(t *testing.T) {
	post := testPost()
	post.Favorites = []client.Favorite{{UserID: "u2"}}
	v := New(post, authedViewer(), 80, 24)

	v.ResolveFavorite(&client.ToggleResponse{Favorites: nil}, nil)

	if len(v.State().Favorites) != 1 {
		t.Error("a result with no toggle in flight must not touch state")
	}
}
