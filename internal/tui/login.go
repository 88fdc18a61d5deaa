package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/session"
	"github.com/turgho/aluguei-cli/internal/validate"
	"github.com/turgho/aluguei-cli/pkg/client"
	"github.com/turgho/aluguei-cli/pkg/domain"
)

type loginField int

const (
	loginEmail loginField = iota
	loginPassword
	numLoginFields
)

type loginModel struct {
	client     *client.Client
	session    *session.Store
	fields     [numLoginFields]formField
	focus      loginField
	submitting bool
	status     formStatus
}

// loginResultMsg carries the outcome of a login submission.
type loginResultMsg struct {
	resp *domain.LoginResponse
	err  error
}

func newLoginModel(c *client.Client, s *session.Store) loginModel {
	m := loginModel{client: c, session: s}
	m.fields[loginEmail] = formField{label: "Email", placeholder: "seu@email.com"}
	m.fields[loginPassword] = formField{label: "Senha", placeholder: "Sua senha", secret: true}
	return m
}

func (m loginModel) Init() tea.Cmd {
	return nil
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			return m, m.status.setError(msg.err.Error())
		}
		// Persist-then-swap: a persistence failure keeps the in-memory
		// session and the login still succeeds for this run.
		m.session.Login(msg.resp.Token, &msg.resp.Owner) //nolint:errcheck // in-memory session proceeds
		m.status.setSuccess(fmt.Sprintf("Bem-vindo, %s!", msg.resp.Owner.Name))
		return m, navigateCmd(viewDashboard)

	case statusExpireMsg:
		m.status.expire(msg)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m loginModel) updateKeys(msg tea.KeyMsg) (loginModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numLoginFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numLoginFields) % numLoginFields
	case "enter":
		if m.focus == numLoginFields-1 {
			return m.submit()
		}
		m.focus++
	case "ctrl+s":
		return m.submit()
	default:
		m.fields[m.focus].edit(msg.String())
	}
	return m, nil
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := m.fields[loginEmail].value
	password := m.fields[loginPassword].value

	if !validate.HasAll(email, password) {
		return m, m.status.setError("Por favor, preencha todos os campos")
	}

	m.submitting = true
	m.status.clear()

	c := m.client
	lowered := strings.ToLower(strings.TrimSpace(email))
	return m, func() tea.Msg {
		resp, err := c.Login(context.Background(), lowered, password)
		return loginResultMsg{resp: resp, err: err}
	}
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + normalStyle.Render("Entrar") + "\n")
	b.WriteString("  " + dimStyle.Render("Acesse sua conta para continuar") + "\n\n")

	for i := loginField(0); i < numLoginFields; i++ {
		b.WriteString("  " + renderFormField(m.fields[i], i == m.focus && !m.submitting) + "\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString("  " + dimStyle.Render("entrando..."))
	} else if banner := m.status.render(); banner != "" {
		b.WriteString("  " + banner)
	}

	return b.String()
}
