// ABOUTME: Root bubbletea model for the Blogify TUI
// ABOUTME: Routes input between screens and reconciles async API results

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/session"
	"github.com/blogify/blogctl/internal/token"
	"github.com/blogify/blogctl/internal/tui/compose"
	"github.com/blogify/blogctl/internal/tui/dashboard"
	"github.com/blogify/blogctl/internal/tui/feed"
	"github.com/blogify/blogctl/internal/tui/loginform"
	"github.com/blogify/blogctl/internal/tui/postview"
	"github.com/blogify/blogctl/internal/tui/styles"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenFeed Screen = iota
	ScreenPost
	ScreenLogin
	ScreenCompose
	ScreenDashboard
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4
)

// returnTarget records where to resume after a login interruption, so a
// reader sent to log in from a post page lands back on that post.
type returnTarget struct {
	screen Screen
	postID string
}

// postsLoadedMsg is sent when the feed fetch completes
type postsLoadedMsg struct {
	seq   int
	posts []client.Post
	err   error
}

// postLoadedMsg is sent when a single post fetch completes
type postLoadedMsg struct {
	seq  int
	post *client.Post
	err  error
}

// likeResultMsg is sent when the like toggle request completes
type likeResultMsg struct {
	postID string
	resp   *client.ToggleResponse
	err    error
}

// favoriteResultMsg is sent when the favorite toggle request completes
type favoriteResultMsg struct {
	postID string
	resp   *client.ToggleResponse
	err    error
}

// commentResultMsg is sent when the comment create request completes
type commentResultMsg struct {
	postID    string
	commentID string
	err       error
}

// authResultMsg is sent when login or registration completes
type authResultMsg struct {
	mode  loginform.Mode
	token string
	err   error
}

// dashboardLoadedMsg is sent when the dashboard fetch completes
type dashboardLoadedMsg struct {
	seq  int
	data *client.DashboardData
	err  error
}

// composeReadyMsg is sent when the data a compose form needs is loaded
type composeReadyMsg struct {
	seq        int
	post       *client.Post
	categories []client.Category
	err        error
}

// postSavedMsg is sent when a create or update request completes
type postSavedMsg struct {
	err error
}

// postDeletedMsg is sent when a delete request completes
type postDeletedMsg struct {
	postID string
	err    error
}

// App is the root model for the TUI
type App struct {
	client  *client.Client
	tokens  *token.Store
	session session.Session

	screen Screen
	width  int
	height int
	notice string
	// seq tags async fetches; completions carrying an older seq are
	// ignored, so a response can never update a screen that was
	// navigated away from.
	seq        int
	lastUpdate time.Time

	// Child models
	feedView    *feed.Feed
	postView    *postview.PostView
	loginView   *loginform.Form
	composeView *compose.Compose
	dashView    *dashboard.Dashboard

	returnTo *returnTarget
	// set when compose was opened from the dashboard
	composeFromDash bool
}

// New creates a new TUI application
func New(apiClient *client.Client, tokens *token.Store) *App {
	a := &App{
		client: apiClient,
		tokens: tokens,
		screen: ScreenFeed,
	}
	a.refreshSession()
	a.feedView = feed.New(nil, 0, 0)
	return a
}

// refreshSession re-reads the token store and re-derives the session.
// Called at every screen transition: a logout or token change performed
// elsewhere is reflected the moment the next screen mounts.
func (a *App) refreshSession() {
	tok, _ := a.tokens.Get()
	a.session = session.Derive(tok)
}

// setScreen switches screens, re-deriving the session at the boundary.
func (a *App) setScreen(s Screen) {
	a.refreshSession()
	a.screen = s
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return a.loadPosts()
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.feedView != nil {
			a.feedView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.postView != nil {
			a.postView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.dashView != nil {
			a.dashView.SetSize(a.contentWidth(), a.contentHeight())
		}
		if a.loginView != nil {
			return a.updateLogin(msg)
		}
		if a.composeView != nil {
			return a.updateCompose(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.screen {
		case ScreenFeed:
			return a.updateFeed(msg)
		case ScreenPost:
			return a.updatePost(msg)
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenCompose:
			return a.updateCompose(msg)
		case ScreenDashboard:
			return a.updateDashboard(msg)
		}

	case feed.PostSelectedMsg:
		return a, a.loadPost(msg.ID)

	case postview.LikeRequestedMsg:
		return a, a.requestLike(msg.PostID)

	case postview.FavoriteRequestedMsg:
		return a, a.requestFavorite(msg.PostID)

	case postview.CommentRequestedMsg:
		return a, a.requestComment(msg)

	case postview.LoginRequiredMsg:
		a.returnTo = &returnTarget{screen: ScreenPost, postID: msg.PostID}
		return a.openLogin(loginform.ModeLogin, "Please log in first")

	case loginform.SubmitMsg:
		return a, a.submitAuth(msg)

	case loginform.SwitchModeMsg:
		return a.openLogin(msg.Mode, "")

	case loginform.CancelledMsg:
		a.loginView = nil
		a.returnTo = nil
		a.setScreen(ScreenFeed)
		return a, a.loadPosts()

	case compose.CompleteMsg:
		return a, a.savePost(msg)

	case compose.CancelledMsg:
		a.composeView = nil
		if a.composeFromDash {
			a.setScreen(ScreenDashboard)
			return a, a.loadDashboard()
		}
		a.setScreen(ScreenFeed)
		return a, nil

	case dashboard.OpenRequestedMsg:
		return a, a.loadPost(msg.PostID)

	case dashboard.EditRequestedMsg:
		a.composeFromDash = true
		return a, a.prepareCompose(msg.PostID)

	case dashboard.DeleteRequestedMsg:
		return a, a.deletePost(msg.PostID)

	case postsLoadedMsg:
		return a.handlePostsLoaded(msg)

	case postLoadedMsg:
		return a.handlePostLoaded(msg)

	case likeResultMsg:
		return a.handleLikeResult(msg)

	case favoriteResultMsg:
		return a.handleFavoriteResult(msg)

	case commentResultMsg:
		return a.handleCommentResult(msg)

	case authResultMsg:
		return a.handleAuthResult(msg)

	case dashboardLoadedMsg:
		return a.handleDashboardLoaded(msg)

	case composeReadyMsg:
		return a.handleComposeReady(msg)

	case postSavedMsg:
		return a.handlePostSaved(msg)

	case postDeletedMsg:
		return a.handlePostDeleted(msg)

	default:
		// Forward unknown messages to the active form (huh internals)
		if a.screen == ScreenLogin && a.loginView != nil {
			return a.updateLogin(msg)
		}
		if a.screen == ScreenCompose && a.composeView != nil {
			return a.updateCompose(msg)
		}
		if a.screen == ScreenPost && a.postView != nil {
			model, cmd := a.postView.Update(msg)
			a.postView = model.(*postview.PostView)
			return a, cmd
		}
	}

	return a, nil
}

func (a *App) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "r":
		a.notice = ""
		return a, a.loadPosts()
	case "d":
		return a.gotoDashboard()
	case "n":
		return a.gotoCompose()
	case "i":
		return a.toggleSignIn()
	}
	if a.feedView == nil {
		return a, nil
	}
	model, cmd := a.feedView.Update(msg)
	a.feedView = model.(*feed.Feed)
	return a, cmd
}

func (a *App) updatePost(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.postView != nil && !a.postView.Composing() {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "b":
			a.postView = nil
			a.setScreen(ScreenFeed)
			return a, a.loadPosts()
		}
	}
	if a.postView == nil {
		return a, nil
	}
	model, cmd := a.postView.Update(msg)
	a.postView = model.(*postview.PostView)
	return a, cmd
}

func (a *App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.loginView == nil {
		return a, nil
	}
	model, cmd := a.loginView.Update(msg)
	a.loginView = model.(*loginform.Form)
	return a, cmd
}

func (a *App) updateCompose(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.composeView == nil {
		return a, nil
	}
	model, cmd := a.composeView.Update(msg)
	a.composeView = model.(*compose.Compose)
	return a, cmd
}

func (a *App) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "b":
		a.dashView = nil
		a.setScreen(ScreenFeed)
		return a, a.loadPosts()
	case "r":
		return a, a.loadDashboard()
	case "n":
		return a.gotoCompose()
	}
	if a.dashView == nil {
		return a, nil
	}
	model, cmd := a.dashView.Update(msg)
	a.dashView = model.(*dashboard.Dashboard)
	return a, cmd
}

func (a *App) gotoDashboard() (tea.Model, tea.Cmd) {
	a.refreshSession()
	if !a.session.Authenticated {
		a.returnTo = &returnTarget{screen: ScreenDashboard}
		return a.openLogin(loginform.ModeLogin, "Log in to see your dashboard")
	}
	a.setScreen(ScreenDashboard)
	return a, a.loadDashboard()
}

func (a *App) gotoCompose() (tea.Model, tea.Cmd) {
	a.refreshSession()
	if !a.session.Authenticated {
		a.returnTo = &returnTarget{screen: ScreenCompose}
		return a.openLogin(loginform.ModeLogin, "Log in to write a post")
	}
	a.composeFromDash = a.screen == ScreenDashboard
	return a, a.prepareCompose("")
}

func (a *App) toggleSignIn() (tea.Model, tea.Cmd) {
	a.refreshSession()
	if a.session.Authenticated {
		if err := a.tokens.Clear(); err != nil {
			a.notice = "Could not log out: " + err.Error()
			return a, nil
		}
		a.refreshSession()
		if a.postView != nil {
			a.postView.SetViewer(a.session)
		}
		a.notice = "Logged out"
		return a, nil
	}
	return a.openLogin(loginform.ModeLogin, "")
}

func (a *App) openLogin(mode loginform.Mode, notice string) (tea.Model, tea.Cmd) {
	a.loginView = loginform.New(mode, notice)
	a.setScreen(ScreenLogin)
	return a, a.loginView.Init()
}

// nextSeq advances the fetch generation counter.
func (a *App) nextSeq() int {
	a.seq++
	return a.seq
}

func (a *App) loadPosts() tea.Cmd {
	seq := a.nextSeq()
	return func() tea.Msg {
		posts, err := a.client.ListPosts(context.Background())
		return postsLoadedMsg{seq: seq, posts: posts, err: err}
	}
}

func (a *App) loadPost(id string) tea.Cmd {
	seq := a.nextSeq()
	return func() tea.Msg {
		post, err := a.client.GetPost(context.Background(), id)
		return postLoadedMsg{seq: seq, post: post, err: err}
	}
}

func (a *App) loadDashboard() tea.Cmd {
	if a.session.Identity == nil {
		return nil
	}
	seq := a.nextSeq()
	userID := a.session.Identity.ID
	return func() tea.Msg {
		data, err := a.client.Dashboard(context.Background(), userID)
		return dashboardLoadedMsg{seq: seq, data: data, err: err}
	}
}

func (a *App) requestLike(postID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.client.ToggleLike(context.Background(), postID)
		return likeResultMsg{postID: postID, resp: resp, err: err}
	}
}

func (a *App) requestFavorite(postID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := a.client.ToggleFavorite(context.Background(), postID)
		return favoriteResultMsg{postID: postID, resp: resp, err: err}
	}
}

func (a *App) requestComment(msg postview.CommentRequestedMsg) tea.Cmd {
	return func() tea.Msg {
		_, err := a.client.CreateComment(context.Background(), msg.PostID, msg.Content)
		return commentResultMsg{postID: msg.PostID, commentID: msg.CommentID, err: err}
	}
}

func (a *App) submitAuth(msg loginform.SubmitMsg) tea.Cmd {
	return func() tea.Msg {
		if msg.Mode == loginform.ModeRegister {
			err := a.client.Register(context.Background(), msg.Name, msg.Email, msg.Password)
			return authResultMsg{mode: msg.Mode, err: err}
		}
		tok, err := a.client.Login(context.Background(), msg.Email, msg.Password)
		return authResultMsg{mode: msg.Mode, token: tok, err: err}
	}
}

func (a *App) prepareCompose(postID string) tea.Cmd {
	seq := a.nextSeq()
	return func() tea.Msg {
		cats, err := a.client.ListCategories(context.Background())
		if err != nil {
			return composeReadyMsg{seq: seq, err: err}
		}
		var post *client.Post
		if postID != "" {
			post, err = a.client.GetPost(context.Background(), postID)
			if err != nil {
				return composeReadyMsg{seq: seq, err: err}
			}
		}
		return composeReadyMsg{seq: seq, post: post, categories: cats}
	}
}

func (a *App) savePost(msg compose.CompleteMsg) tea.Cmd {
	input := msg.Input
	if a.session.Identity != nil {
		input.AuthorID = a.session.Identity.ID
	}
	postID := msg.PostID
	return func() tea.Msg {
		if postID == "" {
			created, err := a.client.CreatePost(context.Background(), input)
			if err != nil {
				return postSavedMsg{err: err}
			}
			if input.CategoryID != "" && created != nil && created.ID != "" {
				if err := a.client.AssignCategory(context.Background(), created.ID, input.CategoryID); err != nil {
					return postSavedMsg{err: err}
				}
			}
			return postSavedMsg{}
		}
		_, err := a.client.UpdatePost(context.Background(), postID, input)
		return postSavedMsg{err: err}
	}
}

func (a *App) deletePost(postID string) tea.Cmd {
	return func() tea.Msg {
		err := a.client.DeletePost(context.Background(), postID)
		return postDeletedMsg{postID: postID, err: err}
	}
}

func (a *App) handlePostsLoaded(msg postsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.seq {
		return a, nil
	}
	if msg.err != nil {
		return a.handleError(msg.err)
	}
	a.lastUpdate = time.Now()
	if a.feedView == nil {
		a.feedView = feed.New(msg.posts, a.contentWidth(), a.contentHeight())
	} else {
		a.feedView.SetPosts(msg.posts)
	}
	return a, nil
}

func (a *App) handlePostLoaded(msg postLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.seq {
		return a, nil
	}
	if msg.err != nil {
		if client.IsKind(msg.err, client.KindNotFound) {
			a.notice = "Post not found"
			a.setScreen(ScreenFeed)
			return a, nil
		}
		return a.handleError(msg.err)
	}
	a.lastUpdate = time.Now()
	a.refreshSession()
	a.postView = postview.New(msg.post, a.session, a.contentWidth(), a.contentHeight())
	a.setScreen(ScreenPost)
	return a, nil
}

func (a *App) handleLikeResult(msg likeResultMsg) (tea.Model, tea.Cmd) {
	// A response for a post view that has been replaced is dropped: the
	// optimistic state it would reconcile no longer exists.
	if a.postView == nil || a.postView.PostID() != msg.postID {
		return a, nil
	}
	if msg.err != nil && client.IsKind(msg.err, client.KindTokenRejected) {
		a.postView.ResolveLike(nil, msg.err)
		return a.sessionExpired()
	}
	a.postView.ResolveLike(msg.resp, msg.err)
	return a, nil
}

func (a *App) handleFavoriteResult(msg favoriteResultMsg) (tea.Model, tea.Cmd) {
	if a.postView == nil || a.postView.PostID() != msg.postID {
		return a, nil
	}
	if msg.err != nil && client.IsKind(msg.err, client.KindTokenRejected) {
		a.postView.ResolveFavorite(nil, msg.err)
		return a.sessionExpired()
	}
	a.postView.ResolveFavorite(msg.resp, msg.err)
	return a, nil
}

func (a *App) handleCommentResult(msg commentResultMsg) (tea.Model, tea.Cmd) {
	if a.postView == nil || a.postView.PostID() != msg.postID {
		return a, nil
	}
	a.postView.ResolveComment(msg.commentID, msg.err)
	if msg.err != nil && client.IsKind(msg.err, client.KindTokenRejected) {
		return a.sessionExpired()
	}
	return a, nil
}

func (a *App) handleAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Show the failure inline on a fresh form of the same mode
		return a.openLogin(msg.mode, msg.err.Error())
	}

	if msg.mode == loginform.ModeRegister {
		return a.openLogin(loginform.ModeLogin, "Account created, log in to continue")
	}

	if err := a.tokens.Set(msg.token); err != nil {
		return a.openLogin(loginform.ModeLogin, "Could not store token: "+err.Error())
	}
	a.loginView = nil
	a.refreshSession()
	a.notice = "Welcome back!"

	// Resume where the login interruption started
	target := a.returnTo
	a.returnTo = nil
	if target != nil {
		switch target.screen {
		case ScreenPost:
			return a, a.loadPost(target.postID)
		case ScreenCompose:
			return a, a.prepareCompose("")
		case ScreenDashboard:
			a.setScreen(ScreenDashboard)
			return a, a.loadDashboard()
		}
	}
	a.setScreen(ScreenDashboard)
	return a, a.loadDashboard()
}

func (a *App) handleDashboardLoaded(msg dashboardLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.seq {
		return a, nil
	}
	if msg.err != nil {
		return a.handleError(msg.err)
	}
	a.lastUpdate = time.Now()
	a.refreshSession()
	if a.dashView == nil {
		a.dashView = dashboard.New(msg.data, a.session, a.contentWidth(), a.contentHeight())
	} else {
		a.dashView.SetData(msg.data)
	}
	a.setScreen(ScreenDashboard)
	return a, nil
}

func (a *App) handleComposeReady(msg composeReadyMsg) (tea.Model, tea.Cmd) {
	if msg.seq != a.seq {
		return a, nil
	}
	if msg.err != nil {
		return a.handleError(msg.err)
	}
	a.composeView = compose.New(msg.post, msg.categories)
	a.setScreen(ScreenCompose)
	return a, a.composeView.Init()
}

func (a *App) handlePostSaved(msg postSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return a.handleError(msg.err)
	}
	a.composeView = nil
	a.notice = "Post saved"
	a.setScreen(ScreenDashboard)
	return a, a.loadDashboard()
}

func (a *App) handlePostDeleted(msg postDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return a.handleError(msg.err)
	}
	a.notice = "Post deleted"
	return a, a.loadDashboard()
}

// handleError converts an API failure into the right navigation: rejected
// tokens end the session, everything else becomes a dismissable notice.
func (a *App) handleError(err error) (tea.Model, tea.Cmd) {
	if client.IsKind(err, client.KindTokenRejected) {
		return a.sessionExpired()
	}
	a.notice = err.Error()
	return a, nil
}

// sessionExpired clears the rejected token and routes to login. Only a
// server-rejected token ends the session; a merely forbidden action does
// not reach here.
func (a *App) sessionExpired() (tea.Model, tea.Cmd) {
	notice := "Session expired, please log in again"
	if err := a.tokens.Clear(); err != nil {
		notice = "Session expired; could not remove stored token: " + err.Error()
	}
	a.refreshSession()
	if a.postView != nil {
		a.returnTo = &returnTarget{screen: ScreenPost, postID: a.postView.PostID()}
	}
	return a.openLogin(loginform.ModeLogin, notice)
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenFeed:
		content = a.viewFeed()
	case ScreenPost:
		content = a.viewPost()
	case ScreenLogin:
		content = a.viewLogin()
	case ScreenCompose:
		content = a.viewCompose()
	case ScreenDashboard:
		content = a.viewDashboard()
	default:
		content = a.viewFeed()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewFeed() string {
	body := "Loading..."
	if a.feedView != nil {
		body = a.feedView.View()
	}
	out := styles.ActivePanel.Width(a.contentWidth()).Render(body)
	if a.notice != "" {
		out += "\n" + styles.StatusWarning.Render(a.notice)
	}
	return out
}

func (a *App) viewPost() string {
	if a.postView == nil {
		return styles.Panel.Width(a.contentWidth()).Render("Loading...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.postView.View())
}

func (a *App) viewLogin() string {
	if a.loginView == nil {
		return ""
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.loginView.View())
}

func (a *App) viewCompose() string {
	if a.composeView == nil {
		return styles.Panel.Width(a.contentWidth()).Render("Loading...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.composeView.View())
}

func (a *App) viewDashboard() string {
	body := "Loading..."
	if a.dashView != nil {
		body = a.dashView.View()
	}
	out := styles.ActivePanel.Width(a.contentWidth()).Render(body)
	if a.notice != "" {
		out += "\n" + styles.StatusWarning.Render(a.notice)
	}
	return out
}

func (a *App) contentWidth() int {
	if a.width < minTerminalWidth {
		return minTerminalWidth - panelPadding
	}
	return a.width - panelPadding
}

func (a *App) contentHeight() int {
	// Header, frame borders and footer take 8 lines
	return a.height - 8
}

// renderHeader creates the header bar with app branding and session state
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)
	contextStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	leftText := " ✍ " + titleStyle.Render("Blogify")

	rightText := contextStyle.Render("not signed in") + " "
	if a.session.Authenticated && a.session.Identity != nil {
		who := a.session.Identity.Name
		if who == "" {
			who = a.session.Identity.Email
		}
		rightText = contextStyle.Render(who) + " "
	}

	leftWidth := lipgloss.Width(leftText)
	rightWidth := lipgloss.Width(rightText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts and status
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	statusStyle := lipgloss.NewStyle().Foreground(styles.Secondary)

	var shortcuts []string
	switch a.screen {
	case ScreenFeed:
		shortcuts = []string{"↑↓ Navigate", "Enter Open", "n New", "d Dashboard", "i Account", "r Refresh", "q Quit"}
	case ScreenPost:
		shortcuts = []string{"l Like", "f Favorite", "c Comment", "b Back", "q Quit"}
	case ScreenLogin:
		shortcuts = []string{"Enter Submit", "ctrl+r Switch", "Esc Back"}
	case ScreenCompose:
		shortcuts = []string{"Enter Next", "Esc Cancel"}
	case ScreenDashboard:
		shortcuts = []string{"Tab Section", "e Edit", "x Delete", "n New", "b Back", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	rightText := ""
	rightPlainText := ""
	if !a.lastUpdate.IsZero() && (a.screen == ScreenFeed || a.screen == ScreenPost || a.screen == ScreenDashboard) {
		elapsed := formatTimeSince(a.lastUpdate)
		rightText = statusStyle.Render("Updated "+elapsed) + " "
		rightPlainText = "Updated " + elapsed + " "
	}

	leftWidth := lipgloss.Width(leftPlainText)
	rightWidth := lipgloss.Width(rightPlainText)
	fillWidth := width - 4 - leftWidth - rightWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + rightText + "─╯"
	return borderStyle.Render(footer)
}

// formatTimeSince formats a duration since the given time in human-readable form
func formatTimeSince(t time.Time) string {
	d := time.Since(t)

	if d < time.Minute {
		secs := int(d.Seconds())
		if secs < 5 {
			return "just now"
		}
		return fmt.Sprintf("%ds ago", secs)
	}

	if d < time.Hour {
		mins := int(d.Minutes())
		if mins == 1 {
			return "1m ago"
		}
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := int(d.Hours())
	if hours == 1 {
		return "1h ago"
	}
	return fmt.Sprintf("%dh ago", hours)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(apiClient *client.Client, tokens *token.Store) error {
	app := New(apiClient, tokens)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
