// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caplane/citeflex/internal/detect"
	"github.com/caplane/citeflex/internal/landmark"
)

var detectCmd = &cobra.Command{
	Use:   "detect <citation>",
	Short: "Detect a citation's type without enrichment",
	Long: `Detect classifies the citation string and prints the type plus whatever
fields could be parsed from the text itself. No network calls are made.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d := detect.New(landmark.New())
		cit := d.Detect(strings.Join(args, " "))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cit)
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
