package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Duhandrade22/vet-system/internal/config"
	"github.com/Duhandrade22/vet-system/internal/sessionstore"
	"github.com/Duhandrade22/vet-system/vetapi"
)

var (
	apiURL  string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "vetctl",
	Short: "Manage your veterinary practice from the terminal",
	Long: `vetctl is the command-line client for the vet-system API.

Log in once and manage owners, animals, and medical records:

  vetctl login --email you@clinic.com
  vetctl owners list
  vetctl animals create --owner <id> --name Rex --species dog
  vetctl records list --animal <id>`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides config and VET_API_BASE_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output JSON instead of tables")
}

// getClient builds an API client from configuration, wired to the
// file-backed session store so the session survives between
// invocations.
func getClient() (*vetapi.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	baseURL := cfg.API.BaseURL
	if apiURL != "" {
		baseURL = apiURL
	}

	store := sessionstore.New(cfg.Session.Dir, cfg.Session.TokenKey, cfg.Session.UserKey)

	client := vetapi.NewClient(
		vetapi.WithBaseURL(baseURL),
		vetapi.WithTimeout(cfg.API.Timeout),
		vetapi.WithSessionStore(store),
		vetapi.WithSessionExpiredHandler(func() {
			fmt.Fprintf(os.Stderr, "%s Session ended. Run 'vetctl login' to sign in again.\n", colorYellow("!"))
		}),
	)
	return client, nil
}

// getAuthedClient is getClient plus a session check, so commands fail
// with a clear message instead of a bare 401.
func getAuthedClient() (*vetapi.Client, error) {
	client, err := getClient()
	if err != nil {
		return nil, err
	}
	if !client.Auth.IsAuthenticated() {
		return nil, fmt.Errorf("not logged in. Run 'vetctl login' first")
	}
	return client, nil
}

func printError(err error) {
	if apiErr, ok := vetapi.IsAPIError(err); ok {
		fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), apiErr.Message)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", colorRed("✗"), err)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printTableHeader(w *tabwriter.Writer, columns ...string) {
	fmt.Fprintln(w, strings.Join(columns, "\t"))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// promptLine reads one line from stdin after showing a label.
func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) bool {
	answer, err := promptLine(fmt.Sprintf("%s [y/N]", question))
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// ANSI helpers, disabled when stdout is not a terminal-ish stream.
func colorize(code, s string) string {
	if os.Getenv("NO_COLOR") != "" {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

func colorGreen(s string) string  { return colorize("32", s) }
func colorRed(s string) string    { return colorize("31", s) }
func colorYellow(s string) string { return colorize("33", s) }
func colorBold(s string) string   { return colorize("1", s) }
