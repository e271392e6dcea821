// ABOUTME: Tests for the feed list component
// ABOUTME: Covers cursor movement, selection, and refresh clamping

package feed

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogify/blogctl/internal/client"
)

func testPosts() []client.Post {
	return []client.Post{
		{ID: "p1", Title: "First"},
		{ID: "p2", Title: "Second"},
		{ID: "p3", Title: "Third"},
	}
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovement(t *testing.T) {
	f := New(testPosts(), 80, 24)

	if f.Selected().ID != "p1" {
		t.Errorf("initial selection = %q, want p1", f.Selected().ID)
	}

	model, _ := f.Update(key("j"))
	f = model.(*Feed)
	if f.Selected().ID != "p2" {
		t.Errorf("selection after down = %q, want p2", f.Selected().ID)
	}

	model, _ = f.Update(key("k"))
	f = model.(*Feed)
	if f.Selected().ID != "p1" {
		t.Errorf("selection after up = %q, want p1", f.Selected().ID)
	}

	// Up at the top stays put
	model, _ = f.Update(key("k"))
	f = model.(*Feed)
	if f.Selected().ID != "p1" {
		t.Errorf("selection at top = %q, want p1", f.Selected().ID)
	}
}

func TestEnterEmitsSelection(t *testing.T) {
	f := New(testPosts(), 80, 24)

	model, _ := f.Update(key("j"))
	f = model.(*Feed)
	_, cmd := f.Update(key("enter"))

	if cmd == nil {
		t.Fatal("expected a selection command")
	}
	msg, ok := cmd().(PostSelectedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want PostSelectedMsg", cmd())
	}
	if msg.ID != "p2" {
		t.Errorf("ID = %q, want p2", msg.ID)
	}
}

func TestEnterOnEmptyFeedDoesNothing(t *testing.T) {
	f := New(nil, 80, 24)

	_, cmd := f.Update(key("enter"))
	if cmd != nil {
		t.Error("empty feed must not emit a selection")
	}
	if f.Selected() != nil {
		t.Error("Selected() on empty feed must be nil")
	}
}

func TestSetPostsClampsCursor(t *testing.T) {
	f := New(testPosts(), 80, 24)

	model, _ := f.Update(key("j"))
	f = model.(*Feed)
	model, _ = f.Update(key("j"))
	f = model.(*Feed)

	f.SetPosts(testPosts()[:1])
	if f.Selected().ID != "p1" {
		t.Errorf("selection after shrink = %q, want p1", f.Selected().ID)
	}

	f.SetPosts(nil)
	if f.Selected() != nil {
		t.Error("Selected() after clearing must be nil")
	}
}

func TestViewShowsEmptyState(t *testing.T) {
	f := New(nil, 80, 24)
	if !strings.Contains(f.View(), "No posts yet") {
		t.Error("expected empty-state message in the view")
	}
}

func TestViewListsTitles(t *testing.T) {
	f := New(testPosts(), 80, 24)
	out := f.View()
	for _, title := range []string{"First", "Second", "Third"} {
		if !strings.Contains(out, title) {
			t.Errorf("view missing post title %q", title)
		}
	}
}
