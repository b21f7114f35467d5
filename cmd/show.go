package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/tinysweep/game"
	"io"
	"os"
)

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a saved board with its numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading snapshot")
		}
		snapshot, err := game.LoadSnapshot(string(data))
		if err != nil {
			return errors.Wrapf(err, "loading snapshot %s", args[0])
		}
		return printSnapshot(cmd.OutOrStdout(), snapshot)
	},
}

func printSnapshot(w io.Writer, snapshot *game.Snapshot) error {
	board, err := snapshot.Render()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Difficulty: %s\n", snapshot.Difficulty)
	fmt.Fprintf(w, "Seed:       %d\n", snapshot.Seed)
	fmt.Fprintf(w, "Time:       %ds\n", snapshot.Seconds)
	fmt.Fprintf(w, "Outcome:    %s\n\n", snapshot.Outcome())
	_, err = io.WriteString(w, board)
	return err
}

func init() {
	rootCmd.AddCommand(showCmd)
}
