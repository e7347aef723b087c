package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/domuslabs/cashlens/internal/chat"
	"github.com/domuslabs/cashlens/internal/router"
	"github.com/domuslabs/cashlens/internal/tracker"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run an interactive dashboard session in the terminal",
	Long: `Runs the dashboard loop in the terminal: navigate between sections,
ask the assistant questions, and accumulate the same usage profile the
app maintains. Requires a running backend (see 'cashlens serve').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		tr := tracker.New(st, termPresenter{}, cfg.Tracking.Exclude)
		tr.Init()

		rt := router.New(tr, termSurface{}, cfg.APIBase, nil)
		client := chat.NewClient(cfg.APIBase, chatTimeout(cfg.Chat.TimeoutSeconds))
		widget := chat.New(tr, client, st, nil, cfg.Chat.MaxTurns, cfg.Chat.HistoryLimit)

		return runSession(cmd, tr, rt, widget)
	},
}

func runSession(cmd *cobra.Command, tr *tracker.Tracker, rt *router.Router, widget *chat.Widget) error {
	pages := make([]string, 0, len(router.DefaultRoutes()))
	for page := range router.DefaultRoutes() {
		pages = append(pages, page)
	}
	sort.Strings(pages)

	const (
		actionAsk   = "Ask the assistant"
		actionStats = "Show usage stats"
		actionClear = "Clear chat history"
		actionQuit  = "Quit"
	)

	items := make([]string, 0, len(pages)+4)
	for _, page := range pages {
		items = append(items, "Go to "+page)
	}
	items = append(items, actionAsk, actionStats, actionClear, actionQuit)

	for {
		menu := promptui.Select{
			Label: fmt.Sprintf("CashLens (on %s)", rt.CurrentPage()),
			Items: items,
			Size:  len(items),
		}
		_, choice, err := menu.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) {
				return nil
			}
			return fmt.Errorf("session menu: %w", err)
		}

		switch choice {
		case actionAsk:
			if err := askAssistant(cmd, widget); err != nil {
				return err
			}
		case actionStats:
			printProfile(tr.Snapshot())
		case actionClear:
			widget.ClearHistory()
			fmt.Println("Chat history cleared.")
		case actionQuit:
			// Close the dwell window on the page being left.
			tr.RecordLeave(rt.CurrentPage())
			return nil
		default:
			page := strings.TrimPrefix(choice, "Go to ")
			if err := rt.Navigate(cmd.Context(), page); err != nil {
				fmt.Printf("Could not open %s: %v\n", page, err)
			}
		}
	}
}

func askAssistant(cmd *cobra.Command, widget *chat.Widget) error {
	prompt := promptui.Prompt{Label: "You"}
	text, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return nil
		}
		return fmt.Errorf("reading question: %w", err)
	}

	if err := widget.Send(cmd.Context(), text); err != nil {
		fmt.Printf("Could not send: %v\n", err)
		return nil
	}

	turns := widget.Transcript()
	if len(turns) > 0 {
		last := turns[len(turns)-1]
		if last.Role == chat.RoleAssistant {
			fmt.Printf("\nDomus: %s\n\n", last.Text)
		}
	}
	return nil
}

// termPresenter renders tracker callbacks on the terminal.
type termPresenter struct{}

func (termPresenter) RefreshBadges(visits map[string]int) {
	if !verbose {
		return
	}
	fmt.Printf("visits: %v\n", visits)
}

func (termPresenter) ShowGreeting(message string) {
	fmt.Println(message)
}

func (termPresenter) HideGreeting() {}

// termSurface renders the navigation surface on the terminal.
type termSurface struct{}

func (termSurface) SetContent(htmlContent string) {
	fmt.Println()
	fmt.Println(htmlContent)
}

func (termSurface) SetTitle(title string) {
	fmt.Printf("== %s ==\n", title)
}

func (termSurface) ScrollTop() {}

func (termSurface) RedirectExternal(url string) {
	fmt.Printf("This section lives outside the app: %s\n", url)
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}
