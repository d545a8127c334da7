package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/morehouse/pizzashack/app/routes"
	"github.com/morehouse/pizzashack/config"
	"github.com/morehouse/pizzashack/pkg/app"
	"github.com/morehouse/pizzashack/pkg/logger"
)

var (
	servePort   string
	serveNoSeed bool
)

// pizzashack serve
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Migrate, seed and start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			config.Set("APP_PORT", servePort)
		}
		if serveNoSeed {
			config.Set("SEED_ON_BOOT", "false")
		}

		closeSink, err := logger.Setup()
		if err != nil {
			return err
		}
		defer closeSink()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		application, err := bootApp()
		if err != nil {
			return err
		}
		application.Boot(ctx)

		logger.Info("Morehouse Pizza Shack backend listening", "port", config.AppPort())
		return application.Serve(ctx)
	},
}

// pizzashack route:list
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos := app.New(nil).Routes(routes.RegisterAPI).RouteList()

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides APP_PORT)")
	serveCmd.Flags().BoolVar(&serveNoSeed, "no-seed", false, "skip the demo seeders")
}
