// ABOUTME: Scrollable post list for the feed screen
// ABOUTME: Emits a selection message when the reader opens a post

package feed

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/tui/styles"
)

// PostSelectedMsg is sent when the reader opens a post from the feed.
type PostSelectedMsg struct {
	ID string
}

// Feed lists published posts with a movable cursor.
type Feed struct {
	posts  []client.Post
	cursor int
	width  int
	height int
}

// New creates a feed over the given posts.
func New(posts []client.Post, width, height int) *Feed {
	return &Feed{posts: posts, width: width, height: height}
}

// SetSize updates the feed dimensions.
func (f *Feed) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetPosts replaces the listed posts, clamping the cursor.
func (f *Feed) SetPosts(posts []client.Post) {
	f.posts = posts
	if f.cursor >= len(posts) {
		f.cursor = len(posts) - 1
	}
	if f.cursor < 0 {
		f.cursor = 0
	}
}

// Selected returns the post under the cursor, or nil for an empty feed.
func (f *Feed) Selected() *client.Post {
	if len(f.posts) == 0 {
		return nil
	}
	return &f.posts[f.cursor]
}

// Update implements tea.Model for key handling.
func (f *Feed) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return f, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if f.cursor > 0 {
			f.cursor--
		}
	case "down", "j":
		if f.cursor < len(f.posts)-1 {
			f.cursor++
		}
	case "enter":
		if sel := f.Selected(); sel != nil {
			id := sel.ID
			return f, func() tea.Msg {
				return PostSelectedMsg{ID: id}
			}
		}
	}
	return f, nil
}

// Init implements tea.Model.
func (f *Feed) Init() tea.Cmd {
	return nil
}

// View renders the feed.
func (f *Feed) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Latest Posts"))
	sb.WriteString("\n")

	if len(f.posts) == 0 {
		sb.WriteString(styles.Subtitle.Render("No posts yet."))
		return sb.String()
	}

	for i, p := range f.posts {
		line := f.renderRow(p)
		if i == f.cursor {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (f *Feed) renderRow(p client.Post) string {
	author := "unknown"
	if p.Author != nil && p.Author.Name != "" {
		author = p.Author.Name
	}
	meta := fmt.Sprintf("by %s · %d likes · %d comments", author, len(p.Likes), len(p.Comments))
	return fmt.Sprintf("%s  %s", p.Title, styles.Subtitle.Render(meta))
}
