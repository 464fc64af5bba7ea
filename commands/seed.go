package commands

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty database with random groups, students and courses.",
	Long: "Generates the configured number of groups and students plus the course catalog, " +
		"stores them, assigns students to groups and courses, and prints the generated records as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		result, err := newSeedService(cfg, store).Seed(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "\t")
		return enc.Encode(result)
	},
}
