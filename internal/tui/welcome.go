package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// welcomeModel is the entry screen for anonymous users: a small menu that
// leads to login or registration.
type welcomeModel struct {
	cursor int
	width  int
	height int
}

type welcomeOption struct {
	label string
	to    view
}

var welcomeOptions = []welcomeOption{
	{"Fazer login", viewLogin},
	{"Criar conta", viewRegister},
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{}
}

func (m welcomeModel) Init() tea.Cmd {
	return nil
}

func (m welcomeModel) Update(msg tea.Msg) (welcomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(welcomeOptions)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			return m, navigateNow(welcomeOptions[m.cursor].to)
		}
	}
	return m, nil
}

func (m welcomeModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + normalStyle.Render("Bem-vindo ao Aluguei!") + "\n")
	b.WriteString("  " + dimStyle.Render("Gerencie seus imóveis com facilidade.") + "\n\n")

	for i, opt := range welcomeOptions {
		if i == m.cursor {
			b.WriteString("  " + accentStyle.Render("> "+opt.label) + "\n")
		} else {
			b.WriteString("    " + dimStyle.Render(opt.label) + "\n")
		}
	}

	return b.String()
}
