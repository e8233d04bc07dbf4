package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pfa-project/specgen/internal/client"
	"github.com/pfa-project/specgen/internal/config"
	"github.com/pfa-project/specgen/internal/export"
	"github.com/pfa-project/specgen/internal/metrics"
	"github.com/pfa-project/specgen/internal/tui"
)

var (
	rootCmd = &cobra.Command{
		Use:   "specgen",
		Short: "Generate structured project specifications from a guided wizard",
		Long: `Specgen walks you through a step-by-step questionnaire about your
project and assembles the answers into a complete "cahier des charges",
ready to preview, export as HTML, or save to your account.`,
		RunE: runWizard,
	}
	wizardCmd = &cobra.Command{
		Use:   "wizard",
		Short: "Start the interactive specification wizard",
		RunE:  runWizard,
	}
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List your saved specifications",
		RunE:  runList,
	}
	exportCmd = &cobra.Command{
		Use:   "export [specification-id]",
		Short: "Export a saved specification to an HTML document",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	loginCmd = &cobra.Command{
		Use:   "login",
		Short: "Authenticate against the specgen API",
		RunE:  runLogin,
	}
	signupCmd = &cobra.Command{
		Use:   "signup",
		Short: "Create a new account",
		RunE:  runSignup,
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE:  runLogout,
	}

	exportDir string
)

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "output", "o", "", "Directory to write the exported document into")
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(logoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newSession loads the configuration and builds an API session with any
// previously stored token attached.
func newSession() (*client.Session, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	session := client.NewSession(client.New(cfg.APIBaseURL), cfg.TokenPath)
	return session, cfg, nil
}

func runWizard(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}

	documentMetrics, err := metrics.NewDocumentMetrics()
	if err != nil {
		log.Printf("Metrics unavailable: %v", err)
	}

	exporter := export.NewFileExporter(cfg.ExportDir)
	app := tui.NewApp(session, exporter, tui.WithMetrics(documentMetrics))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}
	if !session.Authenticated() {
		return fmt.Errorf("not logged in, run `specgen login` first")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	specs, err := session.Client().ListSpecifications(ctx)
	if err != nil {
		return describeAPIError(session, err)
	}

	if len(specs) == 0 {
		fmt.Println("Aucun document enregistré.")
		return nil
	}
	for _, spec := range specs {
		name := spec.ProjectName
		if strings.TrimSpace(name) == "" {
			name = "(sans titre)"
		}
		fmt.Printf("%-36s  %-30s  %s\n", spec.ID, name, spec.ProjectType)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	session, cfg, err := newSession()
	if err != nil {
		return err
	}
	if !session.Authenticated() {
		return fmt.Errorf("not logged in, run `specgen login` first")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	spec, err := session.Client().GetSpecification(ctx, args[0])
	if err != nil {
		return describeAPIError(session, err)
	}

	dir := cfg.ExportDir
	if exportDir != "" {
		dir = exportDir
	}

	exporter := export.NewFileExporter(dir)
	path, err := exporter.RenderToFile(spec)
	if err != nil {
		return err
	}
	fmt.Printf("Document exporté: %s\n", path)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	email, err := prompt(reader, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(reader, "Mot de passe: ")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	if err := session.SignIn(ctx, email, password); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Connecté en tant que %s\n", session.User().Name)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	name, err := prompt(reader, "Nom: ")
	if err != nil {
		return err
	}
	email, err := prompt(reader, "Email: ")
	if err != nil {
		return err
	}
	password, err := prompt(reader, "Mot de passe: ")
	if err != nil {
		return err
	}
	confirm, err := prompt(reader, "Confirmer le mot de passe: ")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
	defer cancel()

	if err := session.SignUp(ctx, name, email, password, confirm); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}
	fmt.Printf("Compte créé, connecté en tant que %s\n", session.User().Name)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	session, _, err := newSession()
	if err != nil {
		return err
	}
	if err := session.SignOut(); err != nil {
		return err
	}
	fmt.Println("Déconnecté.")
	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// describeAPIError gives session expiry a friendlier message and clears
// the stale token so the next command starts clean.
func describeAPIError(session *client.Session, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, client.ErrSessionExpired) {
		_ = session.SignOut()
		return fmt.Errorf("session expirée, reconnectez-vous avec `specgen login`")
	}
	return err
}
