// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/caplane/citeflex/internal/store"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the local citation store",
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached citations as JSON",
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
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cits)
	},
}

var cacheCountCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of cached citations",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer s.Close()

		n, err := s.Count()
		if err != nil {
			return err
		}
		fmt.Println(n)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached citation",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := store.Open(pipelineConfig().Store)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.Clear()
	},
}

func init() {
	cacheCmd.AddCommand(cacheListCmd, cacheCountCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
