package cmd

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/domuslabs/cashlens/internal/router"
)

var prefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Warm the backend by fetching every dashboard section",
	Long:  `Fetches every fragment route from the backend once, verifying the route table against what the server actually serves.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		routes := router.DefaultRoutes()
		pages := make([]string, 0, len(routes))
		for page, route := range routes {
			if route.Fragment != "" {
				pages = append(pages, page)
			}
		}
		sort.Strings(pages)

		client := &http.Client{Timeout: 15 * time.Second}
		bar := progressbar.Default(int64(len(pages)), "prefetching")

		var failed int
		for _, page := range pages {
			url := cfg.APIBase + "/" + routes[page].Fragment
			frag, err := router.FetchFragment(cmd.Context(), client, url)
			bar.Add(1)
			if err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "\n%s: %v\n", page, err)
				continue
			}
			if verbose {
				fmt.Fprintf(os.Stderr, "\n%s: %q (%d bytes)\n", page, frag.Title, len(frag.Content))
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d sections failed to load", failed, len(pages))
		}
		fmt.Printf("All %d sections loaded.\n", len(pages))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(prefetchCmd)
}
