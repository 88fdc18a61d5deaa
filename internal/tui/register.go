package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/mask"
	"github.com/turgho/aluguei-cli/internal/validate"
	"github.com/turgho/aluguei-cli/pkg/client"
	"github.com/turgho/aluguei-cli/pkg/domain"
)

type registerField int

const (
	regName registerField = iota
	regEmail
	regPassword
	regPhone
	regCPF
	regBirthDate
	numRegisterFields
)

type registerModel struct {
	client     *client.Client
	fields     [numRegisterFields]formField
	focus      registerField
	submitting bool
	status     formStatus
}

// ownerCreatedMsg carries the outcome of a registration submission.
type ownerCreatedMsg struct {
	owner *domain.Owner
	err   error
}

func newRegisterModel(c *client.Client) registerModel {
	m := registerModel{client: c}
	m.fields[regName] = formField{label: "Nome Completo", placeholder: "Seu nome completo"}
	m.fields[regEmail] = formField{label: "Email", placeholder: "seu@email.com"}
	m.fields[regPassword] = formField{label: "Senha", placeholder: "Mínimo 6 caracteres", secret: true}
	m.fields[regPhone] = formField{label: "Telefone", placeholder: "(11) 99999-9999", mask: mask.Phone}
	m.fields[regCPF] = formField{label: "CPF", placeholder: "000.000.000-00", mask: mask.CPF}
	m.fields[regBirthDate] = formField{label: "Nascimento (opcional)", placeholder: "DD/MM/AAAA", mask: mask.Date}
	return m
}

func (m registerModel) Init() tea.Cmd {
	return nil
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ownerCreatedMsg:
		m.submitting = false
		if msg.err != nil {
			return m, m.status.setError(msg.err.Error())
		}
		m.status.setSuccess("Conta criada com sucesso!")
		return m, navigateCmd(viewLogin)

	case statusExpireMsg:
		m.status.expire(msg)
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m registerModel) updateKeys(msg tea.KeyMsg) (registerModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.focus = (m.focus + 1) % numRegisterFields
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + numRegisterFields) % numRegisterFields
	case "enter":
		if m.focus == numRegisterFields-1 {
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

func (m registerModel) submit() (registerModel, tea.Cmd) {
	name := m.fields[regName].value
	email := m.fields[regEmail].value
	password := m.fields[regPassword].value
	phone := m.fields[regPhone].value
	cpf := m.fields[regCPF].value

	// First failing rule wins; the birth date is optional.
	if !validate.HasAll(name, email, password, phone, cpf) {
		return m, m.status.setError("Por favor, preencha todos os campos obrigatórios")
	}
	if !validate.IsPhone(phone) {
		return m, m.status.setError("Telefone inválido. Informe DDD e número")
	}
	if !validate.IsCPF(cpf) {
		return m, m.status.setError("CPF inválido. Informe os 11 dígitos")
	}

	m.submitting = true
	m.status.clear()

	req := client.CreateOwnerRequest{
		Name:      strings.TrimSpace(name),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Password:  password,
		Phone:     "+55" + mask.Digits(phone), // country code for Brazil
		CPF:       mask.Digits(cpf),
		BirthDate: mask.DateToISO(m.fields[regBirthDate].value),
	}

	c := m.client
	return m, func() tea.Msg {
		owner, err := c.CreateOwner(context.Background(), req)
		return ownerCreatedMsg{owner: owner, err: err}
	}
}

func (m registerModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + normalStyle.Render("Criar Conta") + "\n")
	b.WriteString("  " + dimStyle.Render("Preencha seus dados para começar") + "\n\n")

	for i := registerField(0); i < numRegisterFields; i++ {
		b.WriteString("  " + renderFormField(m.fields[i], i == m.focus && !m.submitting) + "\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString("  " + dimStyle.Render("criando conta..."))
	} else if banner := m.status.render(); banner != "" {
		b.WriteString("  " + banner)
	}

	return b.String()
}
