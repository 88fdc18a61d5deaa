package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/mask"
	"github.com/turgho/aluguei-cli/internal/session"
)

// logoutMsg tells the root model to end the session and return to welcome.
type logoutMsg struct{}

type profileModel struct {
	session *session.Store
	status  formStatus
}

func newProfileModel(s *session.Store) profileModel {
	return profileModel{session: s}
}

func (m profileModel) Init() tea.Cmd {
	return nil
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statusExpireMsg:
		m.status.expire(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			owner := m.session.Owner()
			if owner == nil {
				return m, nil
			}
			if err := clipboard.WriteAll(owner.Email); err != nil {
				return m, m.status.setError("Não foi possível copiar o e-mail")
			}
			m.status.setSuccess("E-mail copiado!")
			gen := m.status.gen
			return m, tea.Tick(errorStatusTTL, func(time.Time) tea.Msg {
				return statusExpireMsg{gen: gen}
			})
		case "l":
			return m, func() tea.Msg { return logoutMsg{} }
		}
	}
	return m, nil
}

// displayPhone renders a stored phone with the local mask, stripping the
// +55 country prefix the backend keeps.
func displayPhone(phone string) string {
	digits := mask.Digits(phone)
	digits = strings.TrimPrefix(digits, "55")
	return mask.Apply(digits, mask.Phone)
}

func (m profileModel) View() string {
	owner := m.session.Owner()
	if owner == nil {
		return "\n  " + dimStyle.Render("Nenhuma sessão ativa.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + sectionHeaderStyle.Render("Meu Perfil") + "\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			metaStyle.Render(fmt.Sprintf("%-16s", label)),
			normalStyle.Render(value)))
	}

	row("Nome", owner.Name)
	row("E-mail", owner.Email)
	if owner.Phone != "" {
		row("Telefone", displayPhone(owner.Phone))
	}
	if owner.CPF != "" {
		row("CPF", mask.Apply(owner.CPF, mask.CPF))
	}
	if owner.BirthDate != nil && *owner.BirthDate != "" {
		row("Nascimento", *owner.BirthDate)
	}
	if !owner.CreatedAt.IsZero() {
		row("Conta criada em", owner.CreatedAt.Format("02/01/2006"))
	}

	b.WriteString("\n")
	if banner := m.status.render(); banner != "" {
		b.WriteString("  " + banner + "\n")
	}

	return b.String()
}
