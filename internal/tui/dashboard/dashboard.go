// ABOUTME: User dashboard showing own, liked, favorited, and commented posts
// ABOUTME: Tabbed render-only component fed by the app's dashboard fetch

package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/session"
	"github.com/blogify/blogctl/internal/tui/styles"
)

// Tab selects which post collection is shown.
type Tab int

const (
	TabOwn Tab = iota
	TabLiked
	TabFavorited
	TabCommented
)

var tabNames = []string{"My Posts", "Liked", "Favorited", "Commented"}

// EditRequestedMsg asks the app to open the compose form for a post.
type EditRequestedMsg struct {
	PostID string
}

// DeleteRequestedMsg asks the app to delete a post.
type DeleteRequestedMsg struct {
	PostID string
}

// OpenRequestedMsg asks the app to open a post for reading.
type OpenRequestedMsg struct {
	PostID string
}

// Dashboard displays the logged-in user's post collections.
type Dashboard struct {
	data   *client.DashboardData
	viewer session.Session
	tab    Tab
	cursor int
	width  int
	height int
}

// New creates a dashboard over the fetched data.
func New(data *client.DashboardData, viewer session.Session, width, height int) *Dashboard {
	return &Dashboard{data: data, viewer: viewer, width: width, height: height}
}

// SetSize updates the dashboard dimensions.
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetData replaces the dashboard data after a refresh.
func (d *Dashboard) SetData(data *client.DashboardData) {
	d.data = data
	d.clampCursor()
}

func (d *Dashboard) current() []client.Post {
	if d.data == nil {
		return nil
	}
	switch d.tab {
	case TabLiked:
		return d.data.Liked
	case TabFavorited:
		return d.data.Favorited
	case TabCommented:
		return d.data.Commented
	default:
		return d.data.Own
	}
}

// Selected returns the post under the cursor, nil when the tab is empty.
func (d *Dashboard) Selected() *client.Post {
	posts := d.current()
	if len(posts) == 0 || d.cursor >= len(posts) {
		return nil
	}
	return &posts[d.cursor]
}

func (d *Dashboard) clampCursor() {
	posts := d.current()
	if d.cursor >= len(posts) {
		d.cursor = len(posts) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch keyMsg.String() {
	case "tab", "right":
		d.tab = (d.tab + 1) % Tab(len(tabNames))
		d.cursor = 0
	case "shift+tab", "left":
		d.tab = (d.tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		d.cursor = 0
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.current())-1 {
			d.cursor++
		}
	case "enter":
		if sel := d.Selected(); sel != nil {
			id := sel.ID
			return d, func() tea.Msg { return OpenRequestedMsg{PostID: id} }
		}
	case "e":
		// Editing only applies to the user's own posts
		if d.tab == TabOwn {
			if sel := d.Selected(); sel != nil {
				id := sel.ID
				return d, func() tea.Msg { return EditRequestedMsg{PostID: id} }
			}
		}
	case "x":
		if d.tab == TabOwn {
			if sel := d.Selected(); sel != nil {
				id := sel.ID
				return d, func() tea.Msg { return DeleteRequestedMsg{PostID: id} }
			}
		}
	}
	return d, nil
}

// View renders the dashboard.
func (d *Dashboard) View() string {
	var sb strings.Builder

	name := "User"
	if d.viewer.Identity != nil {
		if d.viewer.Identity.Name != "" {
			name = d.viewer.Identity.Name
		} else if d.viewer.Identity.Email != "" {
			name = d.viewer.Identity.Email
		}
	}
	sb.WriteString(styles.Title.Render("Welcome, " + name + "!"))
	sb.WriteString("\n")

	sb.WriteString(d.renderTabs())
	sb.WriteString("\n\n")

	posts := d.current()
	if len(posts) == 0 {
		sb.WriteString(styles.Subtitle.Render("Nothing here yet."))
		return sb.String()
	}

	for i, p := range posts {
		badge := styles.BadgePublished.Render("published")
		if p.Status == client.StatusDraft {
			badge = styles.BadgeDraft.Render("draft")
		}
		line := fmt.Sprintf("%s  [%s]  %s", p.Title, badge,
			styles.Subtitle.Render(fmt.Sprintf("%d likes · %d comments", len(p.Likes), len(p.Comments))))
		if i == d.cursor {
			line = styles.Selected.Render("> " + line)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

func (d *Dashboard) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		style := lipgloss.NewStyle().Foreground(styles.Muted)
		if Tab(i) == d.tab {
			style = lipgloss.NewStyle().Foreground(styles.Primary).Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(name))
	}
	return strings.Join(tabs, "   ")
}
