// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/caplane/citeflex/internal/format"
	"github.com/caplane/citeflex/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export cached citations as CSL-YAML",
	Long: `Export writes every citation in the local store as a CSL-YAML
bibliography, consumable by Pandoc and reference managers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer s.Close()

		cits, err := s.All()
		if err != nil {
			return err
		}

		out := os.Stdout
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return format.WriteCSL(cits, out)
	},
}

func init() {
	exportCmd.Flags().String("output", "", "write to file instead of stdout")

	rootCmd.AddCommand(exportCmd)
}
