// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caplane/citeflex/internal/router"
)

var citeCmd = &cobra.Command{
	Use:   "cite <citation>",
	Short: "Format a single citation string",
	Long: `Cite detects the citation type, enriches it from the landmark cache and
external metadata APIs, and prints the formatted citation.

Examples:
  citeflex cite "Obergefell v. Hodges, 576 U.S. 644 (2015)" --style bluebook
  citeflex cite "https://www.nytimes.com/2023/05/14/us/politics/example.html" --style mla`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := styleFromFlag(cmd)
		if err != nil {
			return err
		}

		cfg := pipelineConfig()
		if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
			cfg.Store.Path = ""
		}

		r, err := router.New(cfg, os.Stderr)
		if err != nil {
			return err
		}
		defer r.Close()

		res, err := r.Cite(cmd.Context(), strings.Join(args, " "), style)
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}

		fmt.Println(res.Formatted.Text)
		if len(res.Unresolved) > 0 {
			fmt.Fprintf(os.Stderr, "unresolved fields: %s\n", strings.Join(res.Unresolved, ", "))
		}
		return nil
	},
}

func init() {
	citeCmd.Flags().String("style", "", "citation style: chicago, apa, mla, bluebook, oscola")
	citeCmd.Flags().Bool("json", false, "output the full result as JSON")
	citeCmd.Flags().Bool("no-cache", false, "skip the local citation store")

	rootCmd.AddCommand(citeCmd)
}
