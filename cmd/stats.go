package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/domuslabs/cashlens/internal/tracker"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the accumulated usage profile",
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

		tr := tracker.New(st, nil, cfg.Tracking.Exclude)
		printProfile(tr.Snapshot())

		if top, ok := tr.TopPage(); ok {
			fmt.Printf("\nTop section: %s\n", top)
		}
		return nil
	},
}

// printProfile writes a usage profile report to stdout.
func printProfile(p tracker.Profile) {
	fmt.Printf("Sessions: %d\n", p.Sessions)
	if p.FirstSeen != "" {
		fmt.Printf("Active since %s, last seen %s\n", p.FirstSeen, p.LastSeen)
	}

	if len(p.PageVisits) > 0 {
		fmt.Println("\nPage visits:")
		pages := make([]string, 0, len(p.PageVisits))
		for page := range p.PageVisits {
			pages = append(pages, page)
		}
		sort.Strings(pages)
		for _, page := range pages {
			line := fmt.Sprintf("  %-18s %4d", page, p.PageVisits[page])
			if ms := p.TimeSpent[page]; ms > 0 {
				d := time.Duration(ms) * time.Millisecond
				line += fmt.Sprintf("  (%s)", d.Round(time.Second))
			}
			fmt.Println(line)
		}
	}

	if len(p.Actions) > 0 {
		fmt.Println("\nActions:")
		names := make([]string, 0, len(p.Actions))
		for name := range p.Actions {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-18s %4d\n", name, p.Actions[name])
		}
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
