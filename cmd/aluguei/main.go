package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/turgho/aluguei-cli/internal/config"
	"github.com/turgho/aluguei-cli/internal/session"
	"github.com/turgho/aluguei-cli/internal/tui"
	"github.com/turgho/aluguei-cli/pkg/client"
	"github.com/turgho/aluguei-cli/pkg/viacep"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	stateDir, err := session.DefaultDir()
	if err != nil {
		return err
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("aluguei " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "logout":
			return runLogout(stateDir)
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
			printHelp()
			os.Exit(2)
		}
	}

	cfg, err := config.Load(stateDir)
	if err != nil {
		return err
	}

	store := session.NewStore(stateDir)
	store.Restore()

	c := client.New(cfg.APIBaseURL, store)
	cep := viacep.New(cfg.ViaCEPURL)

	app := tui.NewApp(c, cep, store)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogout(stateDir string) error {
	store := session.NewStore(stateDir)
	store.Restore()
	if !store.Authenticated() {
		fmt.Println("Nenhuma sessão ativa.")
		return nil
	}
	store.Logout()
	fmt.Println("Sessão encerrada.")
	return nil
}

func printHelp() {
	fmt.Print(`aluguei — gerencie seus imóveis pelo terminal

Uso:
  aluguei             abre o painel interativo
  aluguei logout      encerra a sessão salva
  aluguei --version   mostra a versão
  aluguei help        mostra esta ajuda

Configuração:
  ~/.aluguei/config.yaml         api_base_url, viacep_url
  ALUGUEI_API_URL                URL da API (padrão http://localhost:8080/api/v1)
  ALUGUEI_VIACEP_URL             URL do ViaCEP
  ALUGUEI_STATE_DIR              diretório de estado (padrão ~/.aluguei)
`)
}
