// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/caplane/citeflex/internal/router"
)

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Format a document's citations with shorthand tracking",
	Long: `Process reads one citation per line from a file (or stdin) and renders
each in order. Consecutive repeats of the same source, and explicit markers
like "Ibid." or "Id. at 652", render in the style's shorthand form. A blank
line resets the shorthand state, as at a section break.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, err := styleFromFlag(cmd)
		if err != nil {
			return err
		}

		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		cfg := pipelineConfig()
		r, err := router.New(cfg, os.Stderr)
		if err != nil {
			return err
		}
		defer r.Close()

		session := r.NewSession(style)
		fmt.Fprintf(os.Stderr, "session %s\n", session.ID())

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				session = r.NewSession(style)
				fmt.Println()
				continue
			}
			res, err := session.Process(cmd.Context(), line)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: %q: %v\n", line, err)
				continue
			}
			fmt.Println(res.Formatted.Text)
		}
		return scanner.Err()
	},
}

func init() {
	processCmd.Flags().String("style", "", "citation style: chicago, apa, mla, bluebook, oscola")

	rootCmd.AddCommand(processCmd)
}
