package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/server"
	"github.com/grocerly/grocerly/pkg/database"
	"github.com/grocerly/grocerly/pkg/session"
)

// grocerly run — start the HTTP server.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the HTTP server (alias: serve)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// grocerly serve — alias kept for muscle memory.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// grocerly route:list — print all registered named routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Connect()
		if err != nil {
			return err
		}

		r, err := server.Build(db, session.NewMemoryStore())
		if err != nil {
			return err
		}

		routes := r.Routes()
		if len(routes) == 0 {
			fmt.Println("No named routes registered.")
			return nil
		}

		names := make([]string, 0, len(routes))
		for name := range routes {
			names = append(names, name)
		}
		sort.Strings(names)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "NAME\tPATH")
		fmt.Fprintln(w, "----\t----")
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", name, routes[name])
		}
		return w.Flush()
	},
}
