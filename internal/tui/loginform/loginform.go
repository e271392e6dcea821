// ABOUTME: Login and registration forms as a bubbletea model
// ABOUTME: Uses huh for field handling and validation

package loginform

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/blogify/blogctl/internal/tui/styles"
)

// Mode selects between logging in and creating an account.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// SubmitMsg is sent when the form is completed with valid fields.
type SubmitMsg struct {
	Mode     Mode
	Name     string
	Email    string
	Password string
}

// CancelledMsg is sent when the user backs out of the form.
type CancelledMsg struct{}

// SwitchModeMsg is sent when the user flips between login and register.
type SwitchModeMsg struct {
	Mode Mode
}

// Form collects credentials for login or registration.
type Form struct {
	mode   Mode
	form   *huh.Form
	notice string
	width  int

	name     string
	email    string
	password string
}

// New creates a form in the given mode. The notice, when set, is shown
// above the fields (e.g., "log in to like this post").
func New(mode Mode, notice string) *Form {
	f := &Form{mode: mode, notice: notice}
	f.form = f.createForm()
	return f
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(label + " is required")
		}
		return nil
	}
}

func (f *Form) createForm() *huh.Form {
	fields := []huh.Field{}
	if f.mode == ModeRegister {
		fields = append(fields, huh.NewInput().
			Title("Full Name").
			Placeholder("Ada Lovelace").
			Value(&f.name).
			Validate(validateRequired("name")))
	}
	fields = append(fields,
		huh.NewInput().
			Title("Email Address").
			Placeholder("you@example.com").
			Value(&f.email).
			Validate(validateRequired("email")),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&f.password).
			Validate(validateRequired("password")),
	)

	title := "Welcome Back"
	if f.mode == ModeRegister {
		title = "Join the Journey"
	}

	return huh.NewForm(
		huh.NewGroup(fields...).Title(title),
	).WithTheme(huh.ThemeBase())
}

// Mode returns the current form mode.
func (f *Form) Mode() Mode {
	return f.mode
}

// Init implements tea.Model.
func (f *Form) Init() tea.Cmd {
	return f.form.Init()
}

// Update implements tea.Model.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		form, cmd := f.form.Update(msg)
		if hf, ok := form.(*huh.Form); ok {
			f.form = hf
		}
		return f, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CancelledMsg{} }
		case "ctrl+r":
			// Flip between login and registration
			next := ModeRegister
			if f.mode == ModeRegister {
				next = ModeLogin
			}
			return f, func() tea.Msg { return SwitchModeMsg{Mode: next} }
		}
	}

	form, cmd := f.form.Update(msg)
	if hf, ok := form.(*huh.Form); ok {
		f.form = hf
	}

	if f.form.State == huh.StateCompleted {
		mode := f.mode
		name := strings.TrimSpace(f.name)
		email := strings.TrimSpace(f.email)
		password := f.password
		return f, func() tea.Msg {
			return SubmitMsg{Mode: mode, Name: name, Email: email, Password: password}
		}
	}

	return f, cmd
}

// View implements tea.Model.
func (f *Form) View() string {
	var sb strings.Builder
	if f.notice != "" {
		sb.WriteString(styles.StatusWarning.Render(f.notice))
		sb.WriteString("\n\n")
	}
	sb.WriteString(f.form.View())
	sb.WriteString("\n")
	if f.mode == ModeLogin {
		sb.WriteString(styles.Help.Render("ctrl+r Create account · esc Back"))
	} else {
		sb.WriteString(styles.Help.Render("ctrl+r Log in instead · esc Back"))
	}
	return sb.String()
}
