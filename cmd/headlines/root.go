package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	config   string
	source   string
	country  string
	category string
	query    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "headlines",
		Short:        "Terminal top-headlines reader",
		Long:         "headlines fetches top headlines from NewsAPI or an RSS/Atom feed and lets you browse them in the terminal.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.config, "config", "", "path to config file")
	flags.StringVar(&opts.source, "source", "", "headline source (newsapi/rss)")
	flags.StringVar(&opts.country, "country", "", "NewsAPI country code")
	flags.StringVar(&opts.category, "category", "", "NewsAPI category")
	flags.StringVar(&opts.query, "query", "", "NewsAPI keyword query")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "headlines %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
