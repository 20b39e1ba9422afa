package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/felixgeelhaar/pickex/internal/config"
	"github.com/felixgeelhaar/pickex/internal/exercise"
	"github.com/felixgeelhaar/pickex/internal/report"
	"github.com/spf13/cobra"
)

// app holds per-invocation state shared by all commands
type app struct {
	configPath string
	doneDir    string
	seed       uint64
	logLevel   string

	count           int
	fromChapters    []string
	excludeChapters []string
	fromGroups      []string
	excludeGroups   []string
	useDone         bool

	cfg     *config.Config
	catalog *exercise.Catalog
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "pickex",
		Short: "Randomly pick the next Cracking the Coding Interview exercises",
		Long: `pickex draws random exercises from Cracking the Coding Interview (6th ed.).

Exercises already solved are skipped. An exercise counts as solved when a
file named ch<chapter>_ex<exercise>.<ext> exists in the done directory.

Draws are reproducible: the same seed and the same done directory give the
same exercises.`,
		Example: `  pickex -n 3
  pickex --from_groups data_structures --exclude_chapters 2
  pickex --from_chapters 16,17 --use_done
  pickex progress`,
		Version:           Version,
		Args:              cobra.NoArgs,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDraw,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ~/.pickex/config.yaml)")
	pf.StringVar(&a.doneDir, "done_dir", "", "directory holding solved exercise files (default ./problems)")
	pf.Uint64Var(&a.seed, "seed", exercise.DefaultSeed, "random seed")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default warn)")

	f := cmd.Flags()
	f.IntVarP(&a.count, "count", "n", 1, "number of exercises to get")
	f.StringSliceVar(&a.fromChapters, "from_chapters", nil, "select from these chapters only")
	f.StringSliceVar(&a.excludeChapters, "exclude_chapters", nil, "exclude these chapters")
	f.StringSliceVar(&a.fromGroups, "from_groups", nil, "select from these groups only (default all groups)")
	f.StringSliceVar(&a.excludeGroups, "exclude_groups", nil, "exclude these groups")
	f.BoolVar(&a.useDone, "use_done", false, "also use exercises already done")

	groupCompletion := func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return exercise.Default().Groups(), cobra.ShellCompDirectiveNoFileComp
	}
	_ = cmd.RegisterFlagCompletionFunc("from_groups", groupCompletion)
	_ = cmd.RegisterFlagCompletionFunc("exclude_groups", groupCompletion)

	cmd.AddCommand(
		newProgressCmd(a),
		newCatalogCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// setup loads configuration, applies flag overrides and builds the catalog
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("done_dir") {
		cfg.DoneDir = a.doneDir
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	setupLogging(cmd.ErrOrStderr(), parseLogLevel(cfg.LogLevel))

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	a.catalog = catalog

	slog.Debug("configuration loaded",
		"config", a.configPath,
		"done_dir", cfg.DoneDir,
		"seed", cfg.Seed,
		"catalog_file", cfg.CatalogFile)
	return nil
}

func loadCatalog(cfg *config.Config) (*exercise.Catalog, error) {
	if cfg.CatalogFile == "" {
		return exercise.Default(), nil
	}
	catalog, err := exercise.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", cfg.CatalogFile, err)
	}
	return catalog, nil
}

func (a *app) picker() *exercise.Picker {
	return exercise.NewPicker(a.catalog, exercise.DirSource{Dir: a.cfg.DoneDir}, exercise.NewSampler(a.cfg.Seed))
}

func (a *app) runDraw(cmd *cobra.Command, _ []string) error {
	filter, err := a.filter(cmd)
	if err != nil {
		return err
	}
	if err := filter.Validate(a.catalog); err != nil {
		return err
	}
	if a.count < 0 {
		return fmt.Errorf("number of exercises must not be negative: %d", a.count)
	}

	// Input is valid; remaining failures are not usage errors
	cmd.SilenceUsage = true

	draw, err := a.picker().Pick(filter, a.count)
	if err != nil {
		return err
	}
	return report.Draw(cmd.OutOrStdout(), draw)
}

// filter builds a fresh filter from the flags of this invocation
func (a *app) filter(cmd *cobra.Command) (exercise.Filter, error) {
	f := exercise.Filter{IncludeCompleted: a.useDone}

	flags := cmd.Flags()
	if flags.Changed("from_chapters") {
		chapters, err := parseChapters(a.fromChapters)
		if err != nil {
			return exercise.Filter{}, err
		}
		f.FromChapters = chapters
	}

	excluded, err := parseChapters(a.excludeChapters)
	if err != nil {
		return exercise.Filter{}, err
	}
	f.ExcludeChapters = excluded

	if flags.Changed("from_groups") {
		f.FromGroups = append([]string{}, a.fromGroups...)
	}
	f.ExcludeGroups = append([]string{}, a.excludeGroups...)

	return f, nil
}

func parseChapters(values []string) ([]int, error) {
	chapters := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid chapter %q: must be a number", v)
		}
		chapters = append(chapters, n)
	}
	return chapters, nil
}
