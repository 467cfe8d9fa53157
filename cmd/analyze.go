package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/masmgr/git-unmerged-go/config"
	"github.com/masmgr/git-unmerged-go/internal/analysis"
	gitpkg "github.com/masmgr/git-unmerged-go/internal/git"
	"github.com/masmgr/git-unmerged-go/internal/output"
	"github.com/urfave/cli/v2"
)

func analyzeAction(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts, err := buildOptions(c, cfg)
	if err != nil {
		return err
	}

	repoPath := c.String("repo")
	provider, err := gitpkg.NewProvider(repoPath, opts.Remote)
	if err != nil {
		return err
	}

	outOpts := outputOptions(c, cfg, opts.Verbose)

	// Progress chatter only belongs on a console report; machine-readable
	// formats stay clean.
	if outOpts.Format == output.FormatConsole && outOpts.OutputPath == "" {
		if opts.Fetch {
			fmt.Println("Fetching latest changes from remote...")
		}
		fmt.Printf("Finding branches with commits in the last %d days...\n", opts.WindowDays)
		if opts.IgnorePattern != "" {
			fmt.Printf("Ignoring branches containing: %q\n", opts.IgnorePattern)
		}
		fmt.Println()
	}

	analyzer := analysis.New(provider, opts)
	result, err := analyzer.Run(context.Background())
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	report := &output.AnalysisReport{
		RepoPath:    repoPath,
		BaseBranch:  opts.BaseBranch,
		WindowDays:  opts.WindowDays,
		GeneratedAt: time.Now(),
		Branches:    result.Reports,
	}

	writer := output.NewReportWriter(outOpts.Format)
	return writer.Write(report, outOpts)
}

// buildOptions merges CLI flags over the file configuration. Flags that the
// user set explicitly win; otherwise the config file value applies.
func buildOptions(c *cli.Context, cfg *config.Config) (analysis.Options, error) {
	opts := analysis.Options{
		BaseBranch:    cfg.BaseBranch,
		Remote:        cfg.Remote,
		IgnorePattern: cfg.IgnorePattern,
		IgnoreGlobs:   cfg.IgnoreGlobs,
		WindowDays:    cfg.WindowDays,
		Fetch:         cfg.Fetch,
		Jobs:          cfg.Jobs,
		Verbose:       c.Bool("verbose"),
	}

	if c.IsSet("base-branch") {
		opts.BaseBranch = c.String("base-branch")
	}
	if c.IsSet("ignore-pattern") {
		opts.IgnorePattern = c.String("ignore-pattern")
	}
	if globs := c.StringSlice("ignore-glob"); len(globs) > 0 {
		opts.IgnoreGlobs = globs
	}
	if c.IsSet("days") {
		opts.WindowDays = c.Int("days")
	}
	if c.Bool("no-fetch") {
		opts.Fetch = false
	}
	if c.IsSet("jobs") {
		opts.Jobs = c.Int("jobs")
	}

	if opts.WindowDays < 0 {
		return analysis.Options{}, fmt.Errorf("invalid days value: %d (must be non-negative)", opts.WindowDays)
	}
	return opts, nil
}

func outputOptions(c *cli.Context, cfg *config.Config, verbose bool) output.Options {
	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	top := cfg.Output.Top
	if c.IsSet("top") {
		top = c.Int("top")
	}
	return output.Options{
		Format:     output.ParseFormat(format),
		Top:        top,
		OutputPath: c.String("output"),
		Verbose:    verbose,
	}
}
