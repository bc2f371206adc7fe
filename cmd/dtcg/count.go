package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dembrandt/dtcg-validator/internal/dtcg"
	"github.com/dembrandt/dtcg-validator/internal/validate"
)

var countCmd = &cobra.Command{
	Use:   "count <file.json>",
	Short: "Count leaf tokens in a token file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		doc, err := dtcg.ParseObject(content)
		if err != nil {
			if dtcg.IsErrRootNotObject(err) {
				return fmt.Errorf("root of %s must be an object", args[0])
			}
			return fmt.Errorf("invalid JSON in %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), validate.CountTokens(doc))
		return nil
	},
}
