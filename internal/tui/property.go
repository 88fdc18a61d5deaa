package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/mask"
	"github.com/turgho/aluguei-cli/internal/session"
	"github.com/turgho/aluguei-cli/internal/validate"
	"github.com/turgho/aluguei-cli/pkg/client"
	"github.com/turgho/aluguei-cli/pkg/domain"
	"github.com/turgho/aluguei-cli/pkg/viacep"
)

type propertyField int

const (
	propTitle propertyField = iota
	propDescription
	propZipCode
	propAddress
	propCity
	propState
	propBedrooms
	propBathrooms
	propArea
	propRent
	numPropertyFields
)

// propertyModel is the add-property form. The draft lives only here: it is
// recreated on every entry to the screen and discarded on navigation away.
type propertyModel struct {
	client     *client.Client
	cep        *viacep.Client
	session    *session.Store
	fields     [numPropertyFields]formField
	focus      propertyField
	submitting bool
	status     formStatus

	// CEP lookup bookkeeping: lookups fire once eight digits are present,
	// in-flight lookups are never cancelled, the last response wins.
	cepPending  int
	cepLastSent string
}

// propertyCreatedMsg carries the outcome of a property submission.
type propertyCreatedMsg struct {
	property *domain.Property
	err      error
}

// cepResultMsg carries an address lookup completion.
type cepResultMsg struct {
	addr *viacep.Address
	err  error
}

func newPropertyModel(c *client.Client, cep *viacep.Client, s *session.Store) propertyModel {
	m := propertyModel{client: c, cep: cep, session: s}
	m.fields[propTitle] = formField{label: "Título *", placeholder: "Ex: Apartamento 2 quartos Centro"}
	m.fields[propDescription] = formField{label: "Descrição", placeholder: "Descrição da propriedade"}
	m.fields[propZipCode] = formField{label: "CEP *", placeholder: "00000-000", mask: mask.CEP}
	m.fields[propAddress] = formField{label: "Endereço *", placeholder: "Rua, número, complemento"}
	m.fields[propCity] = formField{label: "Cidade *", placeholder: "São Paulo"}
	m.fields[propState] = formField{label: "Estado *", placeholder: "SP"}
	m.fields[propBedrooms] = formField{label: "Quartos", placeholder: "2"}
	m.fields[propBathrooms] = formField{label: "Banheiros", placeholder: "1"}
	m.fields[propArea] = formField{label: "Área (m²)", placeholder: "70"}
	m.fields[propRent] = formField{label: "Valor do Aluguel *", placeholder: "R$ 1.500,00", mask: mask.Currency}
	return m
}

func (m propertyModel) Init() tea.Cmd {
	return nil
}

func (m propertyModel) Update(msg tea.Msg) (propertyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case propertyCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			return m, m.status.setError(msg.err.Error())
		}
		m.status.setSuccess("Propriedade criada com sucesso!")
		return m, navigateCmd(viewDashboard)

	case cepResultMsg:
		if m.cepPending > 0 {
			m.cepPending--
		}
		// Lookup failures and unknown CEPs leave the form untouched.
		if msg.err != nil || msg.addr == nil || !msg.addr.Found() {
			return m, nil
		}
		// Non-empty lookup values overwrite; empty ones keep what was typed.
		if msg.addr.Logradouro != "" {
			m.fields[propAddress].value = msg.addr.Logradouro
		}
		if msg.addr.Localidade != "" {
			m.fields[propCity].value = msg.addr.Localidade
		}
		if msg.addr.UF != "" {
			m.fields[propState].value = msg.addr.UF
		}
		return m, nil

	case statusExpireMsg:
		m.status.expire(msg)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m propertyModel) updateKeys(msg tea.KeyMsg) (propertyModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numPropertyFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numPropertyFields) % numPropertyFields
	case "enter":
		if m.focus == numPropertyFields-1 {
			return m.submit()
		}
		m.focus++
	case "ctrl+s":
		return m.submit()
	default:
		key := msg.String()
		if m.focus == propState {
			m.editState(key)
			return m, nil
		}
		m.fields[m.focus].edit(key)
		if m.focus == propZipCode {
			return m, m.maybeLookupCEP()
		}
	}
	return m, nil
}

// editState uppercases input and only accepts prefixes of valid state
// codes, so a wrong letter never lands in the field.
func (m *propertyModel) editState(key string) {
	if key == "backspace" {
		m.fields[propState].value = editRune(m.fields[propState].value, key)
		return
	}
	next := strings.ToUpper(editRune(m.fields[propState].value, key))
	if next != m.fields[propState].value && validate.IsStatePrefix(next) {
		m.fields[propState].value = next
	}
}

// maybeLookupCEP fires an address lookup once the field holds exactly eight
// digits, and not for the same value twice in a row.
func (m *propertyModel) maybeLookupCEP() tea.Cmd {
	digits := mask.Digits(m.fields[propZipCode].value)
	if len(digits) != 8 || digits == m.cepLastSent {
		return nil
	}
	m.cepLastSent = digits
	m.cepPending++

	c := m.cep
	return func() tea.Msg {
		addr, err := c.Lookup(context.Background(), digits)
		return cepResultMsg{addr: addr, err: err}
	}
}

func (m propertyModel) submit() (propertyModel, tea.Cmd) {
	title := m.fields[propTitle].value
	address := m.fields[propAddress].value
	city := m.fields[propCity].value
	state := strings.TrimSpace(m.fields[propState].value)
	rent := m.fields[propRent].value

	if !validate.HasAll(title, address, city, state, rent) {
		return m, m.status.setError("Por favor, preencha todos os campos obrigatórios")
	}
	if !validate.IsState(state) {
		return m, m.status.setError("Estado inválido. Use apenas siglas dos estados brasileiros (ex: SP, RJ)")
	}

	owner := m.session.Owner()
	if owner == nil {
		return m, m.status.setError("Usuário não autenticado")
	}

	bedrooms, err := validate.ParseCount(m.fields[propBedrooms].value)
	if err != nil {
		return m, m.status.setError("Número de quartos inválido")
	}
	bathrooms, err := validate.ParseCount(m.fields[propBathrooms].value)
	if err != nil {
		return m, m.status.setError("Número de banheiros inválido")
	}
	area, err := validate.ParseCount(m.fields[propArea].value)
	if err != nil {
		return m, m.status.setError("Área inválida")
	}
	rentAmount, err := mask.ParseAmount(rent)
	if err != nil {
		return m, m.status.setError("Valor do aluguel inválido")
	}

	m.submitting = true
	m.status.clear()

	req := client.CreatePropertyRequest{
		OwnerID:     owner.ID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(m.fields[propDescription].value),
		Address:     strings.TrimSpace(address),
		City:        strings.TrimSpace(city),
		State:       state,
		ZipCode:     mask.Digits(m.fields[propZipCode].value),
		Bedrooms:    bedrooms,
		Bathrooms:   bathrooms,
		Area:        float64(area),
		RentAmount:  rentAmount,
		Status:      domain.PropertyStatusAvailable,
	}

	c := m.client
	return m, func() tea.Msg {
		prop, err := c.CreateProperty(context.Background(), req)
		return propertyCreatedMsg{property: prop, err: err}
	}
}

func (m propertyModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + normalStyle.Render("Nova Propriedade") + "\n")
	b.WriteString("  " + dimStyle.Render("Preencha o CEP primeiro para autocompletar o endereço") + "\n\n")

	for i := propertyField(0); i < numPropertyFields; i++ {
		line := renderFormField(m.fields[i], i == m.focus && !m.submitting)
		if i == propZipCode && m.cepPending > 0 {
			line += "  " + dimStyle.Render("buscando endereço...")
		}
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString("  " + dimStyle.Render("criando propriedade..."))
	} else if banner := m.status.render(); banner != "" {
		b.WriteString("  " + banner)
	}

	return b.String()
}
