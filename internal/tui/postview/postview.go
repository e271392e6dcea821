// ABOUTME: Post detail screen with like, favorite, and comment actions
// ABOUTME: Applies optimistic mutations and reconciles server responses

package postview

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/optimistic"
	"github.com/blogify/blogctl/internal/session"
	"github.com/blogify/blogctl/internal/tui/styles"
)

// LikeRequestedMsg asks the app to issue the like toggle request.
type LikeRequestedMsg struct {
	PostID string
}

// FavoriteRequestedMsg asks the app to issue the favorite toggle request.
type FavoriteRequestedMsg struct {
	PostID string
}

// CommentRequestedMsg asks the app to issue the comment create request.
// CommentID identifies the provisional record so a failure can remove it.
type CommentRequestedMsg struct {
	PostID    string
	CommentID string
	Content   string
}

// LoginRequiredMsg is sent when an unauthenticated reader attempts an
// action that needs a token. No local mutation has happened.
type LoginRequiredMsg struct {
	PostID string
}

// PostView renders one post and drives its optimistic interactions.
type PostView struct {
	post   *client.Post
	viewer session.Session
	state  optimistic.PostState

	likeToggle *optimistic.Toggle
	favToggle  *optimistic.Toggle

	input     textarea.Model
	composing bool
	// id of the provisional comment whose request is in flight
	pendingComment string

	notice string
	width  int
	height int
	now    func() time.Time
}

// New creates a post view for the given viewer.
func New(post *client.Post, viewer session.Session, width, height int) *PostView {
	ta := textarea.New()
	ta.Placeholder = "Share your thoughts..."
	ta.SetHeight(3)
	ta.CharLimit = 2000

	userID := ""
	if viewer.Identity != nil {
		userID = viewer.Identity.ID
	}

	return &PostView{
		post:       post,
		viewer:     viewer,
		state:      optimistic.StateFor(post, userID),
		likeToggle: optimistic.NewToggle(optimistic.ToggleLike),
		favToggle:  optimistic.NewToggle(optimistic.ToggleFavorite),
		input:      ta,
		width:      width,
		height:     height,
		now:        time.Now,
	}
}

// PostID returns the id of the displayed post.
func (v *PostView) PostID() string {
	return v.post.ID
}

// SetSize updates the view dimensions.
func (v *PostView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width - 4)
}

// SetViewer swaps the viewing session, re-deriving the toggle flags.
// Called when the session changed while this view stayed mounted.
func (v *PostView) SetViewer(viewer session.Session) {
	v.viewer = viewer
	userID := ""
	if viewer.Identity != nil {
		userID = viewer.Identity.ID
	}
	v.state = optimistic.StateFor(v.post, userID)
}

// Composing reports whether the comment editor is focused.
func (v *PostView) Composing() bool {
	return v.composing
}

// Update implements tea.Model for key handling.
func (v *PostView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.composing {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.composing {
		return v.updateComposing(keyMsg)
	}

	switch keyMsg.String() {
	case "l":
		return v, v.toggleLike()
	case "f":
		return v, v.toggleFavorite()
	case "c":
		return v, v.startComposing()
	}
	return v, nil
}

// Init implements tea.Model.
func (v *PostView) Init() tea.Cmd {
	return nil
}

func (v *PostView) updateComposing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.composing = false
		v.input.Blur()
		return v, nil
	case "enter":
		return v, v.submitComment()
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// toggleLike applies the optimistic flip and requests the server toggle.
// Unauthenticated attempts route to login with no local mutation.
func (v *PostView) toggleLike() tea.Cmd {
	if !v.viewer.Authenticated {
		return v.loginRequired()
	}
	next, err := v.likeToggle.Begin(v.state, v.viewer.Identity.ID, v.post.ID, v.now())
	if err != nil {
		// A request is already in flight; ignore the extra press.
		return nil
	}
	v.state = next
	v.notice = ""
	postID := v.post.ID
	return func() tea.Msg {
		return LikeRequestedMsg{PostID: postID}
	}
}

func (v *PostView) toggleFavorite() tea.Cmd {
	if !v.viewer.Authenticated {
		return v.loginRequired()
	}
	next, err := v.favToggle.Begin(v.state, v.viewer.Identity.ID, v.post.ID, v.now())
	if err != nil {
		return nil
	}
	v.state = next
	v.notice = ""
	postID := v.post.ID
	return func() tea.Msg {
		return FavoriteRequestedMsg{PostID: postID}
	}
}

func (v *PostView) startComposing() tea.Cmd {
	if !v.viewer.Authenticated {
		return v.loginRequired()
	}
	v.composing = true
	v.notice = ""
	return v.input.Focus()
}

// submitComment validates locally, prepends the provisional record, clears
// the editor, and requests the server write.
func (v *PostView) submitComment() tea.Cmd {
	content, err := optimistic.ValidateComment(v.input.Value())
	if err != nil {
		v.notice = "Comment cannot be empty"
		return nil
	}
	if v.pendingComment != "" {
		// Submit button stays disabled while its own request is in flight.
		return nil
	}

	prov := optimistic.ProvisionalComment(*v.viewer.Identity, content, v.now())
	v.state = optimistic.PrependComment(v.state, prov)
	v.pendingComment = prov.ID
	v.input.Reset()
	v.composing = false
	v.input.Blur()
	v.notice = ""

	postID := v.post.ID
	return func() tea.Msg {
		return CommentRequestedMsg{PostID: postID, CommentID: prov.ID, Content: content}
	}
}

func (v *PostView) loginRequired() tea.Cmd {
	postID := v.post.ID
	return func() tea.Msg {
		return LoginRequiredMsg{PostID: postID}
	}
}

// ResolveLike reconciles the like toggle with the server response. A
// result with no toggle in flight belongs to an earlier view of the same
// post and is dropped.
func (v *PostView) ResolveLike(resp *client.ToggleResponse, err error) {
	if !v.likeToggle.Pending() {
		return
	}
	if err != nil {
		v.state = v.likeToggle.Fail(v.state)
		v.notice = "Could not toggle like: " + err.Error()
		return
	}
	v.state = v.likeToggle.Confirm(v.state, resp)
}

// ResolveFavorite reconciles the favorite toggle with the server response.
func (v *PostView) ResolveFavorite(resp *client.ToggleResponse, err error) {
	if !v.favToggle.Pending() {
		return
	}
	if err != nil {
		v.state = v.favToggle.Fail(v.state)
		v.notice = "Could not toggle favorite: " + err.Error()
		return
	}
	v.state = v.favToggle.Confirm(v.state, resp)
}

// ResolveComment settles the in-flight comment. On failure the provisional
// record is removed so the list never shows a comment the server rejected.
func (v *PostView) ResolveComment(commentID string, err error) {
	if commentID != v.pendingComment {
		// Response for a comment this view no longer tracks; drop it.
		return
	}
	v.pendingComment = ""
	if err != nil {
		v.state = optimistic.RemoveComment(v.state, commentID)
		v.notice = "Could not post comment: " + err.Error()
		return
	}
	v.notice = "Comment posted"
}

// State exposes the current interaction state for tests and the app frame.
func (v *PostView) State() optimistic.PostState {
	return v.state
}

// View renders the post page.
func (v *PostView) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(v.post.Title))
	sb.WriteString("\n")

	author := "Unknown Author"
	if v.post.Author != nil && v.post.Author.Name != "" {
		author = v.post.Author.Name
	}
	meta := fmt.Sprintf("By %s · %s · %d views · %d likes",
		author,
		v.post.CreatedAt.Format("Jan 2, 2006"),
		v.post.Views,
		len(v.state.Likes),
	)
	if v.post.ReadingTime > 0 {
		meta += fmt.Sprintf(" · %d min read", v.post.ReadingTime)
	}
	sb.WriteString(styles.Subtitle.Render(meta))
	sb.WriteString("\n\n")

	sb.WriteString(v.renderToggles())
	sb.WriteString("\n\n")

	sb.WriteString(wrapText(stripHTML(v.post.Content), v.width-2))
	sb.WriteString("\n\n")

	sb.WriteString(v.renderComments())

	if v.notice != "" {
		sb.WriteString("\n")
		sb.WriteString(styles.StatusWarning.Render(v.notice))
	}

	return sb.String()
}

func (v *PostView) renderToggles() string {
	like := styles.ToggleOff.Render("♡ Like")
	if v.state.IsLiked {
		like = styles.LikeOn.Render("♥ Liked")
	}
	fav := styles.ToggleOff.Render("☆ Favorite")
	if v.state.IsFavorited {
		fav = styles.FavoriteOn.Render("★ Favorited")
	}
	return like + "   " + fav
}

func (v *PostView) renderComments() string {
	var sb strings.Builder

	sorted := optimistic.SortedComments(v.state.Comments)
	sb.WriteString(styles.Title.Render(fmt.Sprintf("Comments (%d)", len(sorted))))
	sb.WriteString("\n")

	if v.composing {
		sb.WriteString(v.input.View())
		sb.WriteString("\n")
		sb.WriteString(styles.Help.Render("enter Post · esc Cancel"))
		sb.WriteString("\n\n")
	}

	if len(sorted) == 0 {
		sb.WriteString(styles.Subtitle.Render("No comments yet. Be the first to share your thoughts!"))
		return sb.String()
	}

	for _, c := range sorted {
		name := c.User.Name
		if name == "" {
			name = "Anonymous"
		}
		header := fmt.Sprintf("%s  %s", styles.ValueStyle.Render(name),
			styles.Subtitle.Render(formatCommentTime(c.CreatedAt, v.now())))
		sb.WriteString(header)
		sb.WriteString("\n")
		sb.WriteString(wrapText(c.Content, v.width-4))
		sb.WriteString("\n\n")
	}

	return sb.String()
}

// formatCommentTime renders a comment timestamp the way the post page
// shows it: relative within a day, a date beyond that.
func formatCommentTime(at, now time.Time) string {
	d := now.Sub(at)
	if d < 0 {
		d = 0
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		if mins <= 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	}
	if d < 24*time.Hour {
		hours := int(d.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}
	return at.Format("Jan 2, 2006")
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTML reduces the post's HTML content to plain text for the terminal.
func stripHTML(s string) string {
	out := tagPattern.ReplaceAllString(s, "")
	out = strings.ReplaceAll(out, "&amp;", "&")
	out = strings.ReplaceAll(out, "&lt;", "<")
	out = strings.ReplaceAll(out, "&gt;", ">")
	out = strings.ReplaceAll(out, "&quot;", `"`)
	out = strings.ReplaceAll(out, "&#39;", "'")
	out = strings.ReplaceAll(out, "&nbsp;", " ")
	return strings.TrimSpace(out)
}

// wrapText hard-wraps text at the given width, preserving paragraphs.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				out = append(out, line)
				line = w
				continue
			}
			line += " " + w
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
