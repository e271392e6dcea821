// ABOUTME: Post authoring form as a bubbletea model
// ABOUTME: Collects title, content, image, status, and category via huh

package compose

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blogify/blogctl/internal/client"
	"github.com/blogify/blogctl/internal/tui/styles"
)

// CompleteMsg is sent when the author finishes the form.
// PostID is empty for a new post.
type CompleteMsg struct {
	PostID string
	Input  client.PostInput
}

// CancelledMsg is sent when the author backs out.
type CancelledMsg struct{}

// Compose edits a new or existing post.
type Compose struct {
	postID string
	form   *huh.Form
	width  int

	title       string
	content     string
	featuredImg string
	status      string
	categoryID  string
}

// New creates a compose form. Pass the existing post to edit it, nil to
// create; categories populate the category picker.
func New(post *client.Post, categories []client.Category) *Compose {
	c := &Compose{status: client.StatusDraft}
	if post != nil {
		c.postID = post.ID
		c.title = post.Title
		c.content = post.Content
		c.featuredImg = post.FeaturedImg
		c.status = post.Status
		if post.Category != nil {
			c.categoryID = post.Category.ID
		}
	}
	c.form = c.createForm(categories)
	return c
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func (c *Compose) createForm(categories []client.Category) *huh.Form {
	statusOptions := []huh.Option[string]{
		huh.NewOption("Draft", client.StatusDraft),
		huh.NewOption("Published", client.StatusPublished),
	}

	categoryOptions := []huh.Option[string]{
		huh.NewOption("(none)", ""),
	}
	for _, cat := range categories {
		categoryOptions = append(categoryOptions, huh.NewOption(cat.Name, cat.ID))
	}

	title := "Create a New Blog Post"
	if c.postID != "" {
		title = "Update Blog Post"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("My great post").
				Value(&c.title).
				Validate(validateRequired("title")),
			huh.NewText().
				Title("Content").
				Description("HTML is allowed").
				Value(&c.content).
				Validate(validateRequired("content")),
			huh.NewInput().
				Title("Featured image URL").
				Placeholder("https://...").
				Value(&c.featuredImg),
			huh.NewSelect[string]().
				Title("Status").
				Options(statusOptions...).
				Value(&c.status),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions...).
				Value(&c.categoryID),
		).Title(title),
	).WithTheme(huh.ThemeBase())
}

// PostID returns the id being edited, empty for a new post.
func (c *Compose) PostID() string {
	return c.postID
}

// Init implements tea.Model.
func (c *Compose) Init() tea.Cmd {
	return c.form.Init()
}

// Update implements tea.Model.
func (c *Compose) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
		form, cmd := c.form.Update(msg)
		if hf, ok := form.(*huh.Form); ok {
			c.form = hf
		}
		return c, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return c, func() tea.Msg { return CancelledMsg{} }
		}
	}

	form, cmd := c.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		c.form = hf
	}

	if c.form.State == huh.StateCompleted {
		postID := c.postID
		input := client.PostInput{
			Title:       strings.TrimSpace(c.title),
			Content:     c.content,
			FeaturedImg: strings.TrimSpace(c.featuredImg),
			Status:      c.status,
			CategoryID:  c.categoryID,
		}
		return c, func() tea.Msg {
			return CompleteMsg{PostID: postID, Input: input}
		}
	}

	return c, cmd
}

// View implements tea.Model.
func (c *Compose) View() string {
	var sb strings.Builder
	sb.WriteString(c.form.View())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("esc Cancel"))
	return sb.String()
}
