package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/kashvi-admin/config"
	"github.com/shashiranjanraj/kashvi-admin/database/indexes"
	"github.com/shashiranjanraj/kashvi-admin/database/seeders"
	"github.com/shashiranjanraj/kashvi-admin/internal/server"
)

func main() {
	root := &cobra.Command{
		Use:   "kashvi-admin",
		Short: "Catalog administration API for the Kashvi jewellery store",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return server.Run()
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Seed the category taxonomy and the default admin user",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.Load(); err != nil {
					return err
				}
				return seeders.Run(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "db:index",
			Short: "Create the MongoDB indexes",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.Load(); err != nil {
					return err
				}
				return indexes.Ensure(cmd.Context())
			},
		},
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
