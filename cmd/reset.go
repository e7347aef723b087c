package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/domuslabs/cashlens/internal/chat"
	"github.com/domuslabs/cashlens/internal/tracker"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the usage profile and chat history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			confirm := promptui.Prompt{
				Label:     "Delete the usage profile and chat history",
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
					fmt.Println("Aborted.")
					return nil
				}
				return fmt.Errorf("confirmation: %w", err)
			}
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		st.Remove(tracker.ProfileKey)
		st.Remove(chat.HistoryKey)

		fmt.Println("Usage profile and chat history deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}
