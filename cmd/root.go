package cmd

import (
	"fmt"
	"os"

	"github.com/masmgr/git-unmerged-go/config"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "git-unmerged",
		Usage:     "Find branches with commits not merged into a base branch",
		Version:   "1.1.0",
		ArgsUsage: " ",
		Flags:     rootFlags(),
		Action:    analyzeAction,
	}
}

func rootFlags() []cli.Flag {
	defaults := config.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to the git repository",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:    "base-branch",
			Aliases: []string{"b"},
			Usage:   "Base branch to compare against",
			Value:   defaults.BaseBranch,
		},
		&cli.StringFlag{
			Name:    "ignore-pattern",
			Aliases: []string{"i"},
			Usage:   "Skip branches containing this substring (empty string disables)",
			Value:   defaults.IgnorePattern,
		},
		&cli.StringSliceFlag{
			Name:  "ignore-glob",
			Usage: "Skip branches matching this glob pattern (can be specified multiple times)",
		},
		&cli.IntFlag{
			Name:    "days",
			Aliases: []string{"d"},
			Usage:   "Number of days to look back for recent commits",
			Value:   defaults.WindowDays,
		},
		&cli.BoolFlag{
			Name:  "no-fetch",
			Usage: "Skip fetching from remote",
		},
		&cli.BoolFlag{
			// No "v" alias: urfave/cli reserves -v for the built-in
			// --version flag when App.Version is set, and a duplicate
			// registration panics at startup.
			Name:  "verbose",
			Usage: "Show detailed commit information for each branch",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown)",
			Value:   defaults.Output.Format,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Limit the number of branches shown (0 = unlimited)",
		},
		&cli.IntFlag{
			Name:    "jobs",
			Aliases: []string{"j"},
			Usage:   "Number of branches to analyze concurrently",
			Value:   defaults.Jobs,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
		},
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
