package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/turgho/aluguei-cli/internal/browser"
	"github.com/turgho/aluguei-cli/internal/session"
	"github.com/turgho/aluguei-cli/pkg/client"
	"github.com/turgho/aluguei-cli/pkg/viacep"
)

type view int

const (
	viewWelcome view = iota
	viewLogin
	viewRegister
	viewDashboard
	viewProperty
	viewProfile
)

// requiresAuth reports whether a view needs a live session.
func requiresAuth(v view) bool {
	switch v {
	case viewDashboard, viewProperty, viewProfile:
		return true
	}
	return false
}

// App is the root Bubbletea model.
type App struct {
	client     *client.Client
	cep        *viacep.Client
	session    *session.Store
	view       view
	welcome    welcomeModel
	login      loginModel
	register   registerModel
	dashboard  dashboardModel
	property   propertyModel
	profile    profileModel
	helpOpen   bool
	helpCursor int
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the TUI application. A restored session lands straight on
// the dashboard; otherwise the welcome screen is shown.
func NewApp(c *client.Client, cep *viacep.Client, s *session.Store) App {
	a := App{
		client:    c,
		cep:       cep,
		session:   s,
		welcome:   newWelcomeModel(),
		login:     newLoginModel(c, s),
		register:  newRegisterModel(c),
		dashboard: newDashboardModel(c, s),
		property:  newPropertyModel(c, cep, s),
		profile:   newProfileModel(s),
	}
	if s.Authenticated() {
		a.view = viewDashboard
		// Init's value receiver discards load()'s flag mutation, so the
		// initial spinner is set here.
		a.dashboard.loading = true
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{shimmerTickCmd()}
	if a.view == viewDashboard {
		cmds = append(cmds, a.dashboard.load())
	}
	return tea.Batch(cmds...)
}

// navigate switches screens, resetting form state so every entry starts
// fresh. Authenticated views fall back to welcome when there is no session.
func (a App) navigate(to view) (App, tea.Cmd) {
	if requiresAuth(to) && !a.session.Authenticated() {
		to = viewWelcome
	}
	a.view = to
	switch to {
	case viewLogin:
		a.login = newLoginModel(a.client, a.session)
	case viewRegister:
		a.register = newRegisterModel(a.client)
	case viewProperty:
		a.property = newPropertyModel(a.client, a.cep, a.session)
	case viewDashboard:
		return a, a.dashboard.load()
	}
	return a, nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case navigateMsg:
		return a.navigate(msg.to)

	case logoutMsg:
		a.session.Logout()
		a.dashboard = newDashboardModel(a.client, a.session)
		return a.navigate(viewWelcome)

	case sessionExpiredMsg:
		a.session.Logout()
		a.dashboard = newDashboardModel(a.client, a.session)
		return a.navigate(viewWelcome)

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, tea.Quit
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			case "enter":
				item := helpItems[a.helpCursor]
				if item.url != "" {
					browser.Open(item.url) //nolint:errcheck // best-effort browser open
				}
			}
			return a, nil
		}

		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// Global keys (only when not editing)
		if !a.isEditing() {
			switch msg.String() {
			case "h":
				a.helpOpen = true
				a.helpCursor = 0
				return a, nil
			case "q":
				return a, tea.Quit
			case "esc":
				switch a.view {
				case viewProperty, viewProfile:
					return a.navigate(viewDashboard)
				}
				return a, nil
			}
		} else if msg.String() == "esc" {
			switch a.view {
			case viewLogin, viewRegister:
				return a.navigate(viewWelcome)
			case viewProperty:
				return a.navigate(viewDashboard)
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewWelcome:
		a.welcome, cmd = a.welcome.Update(msg)
	case viewLogin:
		a.login, cmd = a.login.Update(msg)
	case viewRegister:
		a.register, cmd = a.register.Update(msg)
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.Update(msg)
	case viewProperty:
		a.property, cmd = a.property.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	}

	return a, cmd
}

// isEditing reports whether keystrokes currently belong to a text input.
func (a App) isEditing() bool {
	switch a.view {
	case viewLogin, viewRegister, viewProperty:
		return true
	}
	return false
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	// Greeting line below the logo when signed in
	greeting := ""
	if owner := a.session.Owner(); owner != nil {
		greeting = metaStyle.Render(fmt.Sprintf("Bem-vindo, %s", firstName(owner.Name)))
	}
	if greeting != "" {
		gWidth := lipgloss.Width(greeting)
		gPad := (a.width - gWidth) / 2
		if gPad < 0 {
			gPad = 0
		}
		header += "\n" + strings.Repeat(" ", gPad) + greeting
	} else {
		header += "\n"
	}

	var body string
	var help string
	switch a.view {
	case viewWelcome:
		body = a.welcome.View()
		help = " " + helpEntry("j/k", "navegar") + "  " + helpEntry("enter", "selecionar") + "  " + helpEntry("h", "ajuda") + "  " + helpEntry("q", "sair")
	case viewLogin:
		body = a.login.View()
		help = " " + helpEntry("tab", "próximo") + "  " + helpEntry("enter", "avançar") + "  " + helpEntry("ctrl+s", "entrar") + "  " + helpEntry("esc", "voltar")
	case viewRegister:
		body = a.register.View()
		help = " " + helpEntry("tab", "próximo") + "  " + helpEntry("ctrl+s", "criar conta") + "  " + helpEntry("esc", "voltar")
	case viewDashboard:
		body = a.dashboard.View()
		help = " " + helpEntry("r", "atualizar") + "  " + helpEntry("n", "nova propriedade") + "  " + helpEntry("p", "perfil") + "  " + helpEntry("h", "ajuda") + "  " + helpEntry("q", "sair")
	case viewProperty:
		body = a.property.View()
		help = " " + helpEntry("tab", "próximo") + "  " + helpEntry("ctrl+s", "criar") + "  " + helpEntry("esc", "cancelar")
	case viewProfile:
		body = a.profile.View()
		help = " " + helpEntry("c", "copiar e-mail") + "  " + helpEntry("l", "sair da conta") + "  " + helpEntry("esc", "voltar")
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "navegar") + "  " + helpEntry("enter", "abrir") + "  " + helpEntry("esc", "fechar")
	}

	// Chrome budget: header(2) + help(1) = 3 lines + body
	chrome := 3
	body = strings.TrimRight(truncateToHeight(body, a.height-chrome), "\n")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}
