package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"mdtoc/pkg/config"
	"mdtoc/pkg/rewrite"
	"mdtoc/pkg/toc"
	"mdtoc/pkg/utils"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "insert":
		runUpdate(os.Args[2:], false)
	case "check":
		runUpdate(os.Args[2:], true)
	case "version":
		fmt.Printf("mdtoc %s\n", version)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`mdtoc - Markdown table-of-contents generator

Usage:
  mdtoc <command> [options] [files...]

Commands:
  generate    Print the ToC for a file (or stdin) to stdout
  insert      Insert or refresh the ToC between markers in files, in place
  check       Verify the ToC between markers is up to date (CI mode)
  version     Show version info

Run 'mdtoc <command> -h' for command-specific help.`)
}

// commonFlags holds the flags shared by every command.
type commonFlags struct {
	configPath *string
	logLevel   *string
	symbol     *string
	minLevel   *int
	maxLevel   *int
	indent     *int
}

func registerCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		configPath: fs.String("config", "", "Path to YAML config file (default: "+config.DefaultConfigFile+" if present)"),
		logLevel:   fs.String("loglevel", "info", "Log level (debug, info, warn, error, fatal)"),
		symbol:     fs.String("symbol", "", "List item symbol (-, * or +)"),
		minLevel:   fs.Int("min-level", 0, "Lowest heading level to include (1..6)"),
		maxLevel:   fs.Int("max-level", 0, "Highest heading level to include (1..6)"),
		indent:     fs.Int("indent", -1, "Spaces per indentation level"),
	}
}

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid log level %q, using 'info'", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}

// loadConfig resolves the effective config: the given file, or the default
// file if present, or built-in defaults. Flags set on the command line
// override file values.
func loadConfig(fs *flag.FlagSet, flags commonFlags, log *logrus.Logger) *config.Config {
	cfg := &config.Config{}
	path := *flags.configPath
	if path == "" {
		if _, err := os.Stat(config.DefaultConfigFile); err == nil {
			path = config.DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		log.Debugf("Loaded config from %s", path)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "symbol":
			cfg.ItemSymbol = *flags.symbol
		case "min-level":
			cfg.MinLevel = *flags.minLevel
		case "max-level":
			cfg.MaxLevel = *flags.maxLevel
		case "indent":
			cfg.Indent = flags.indent
		}
	})

	warnings, err := cfg.Validate()
	for _, w := range warnings {
		log.Warnf("Config: %s", w)
	}
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	flags := registerCommonFlags(fs)
	fs.Parse(args)
	log := newLogger(*flags.logLevel)
	cfg := loadConfig(fs, flags, log)

	var (
		data []byte
		err  error
	)
	switch fs.NArg() {
	case 0:
		data, err = io.ReadAll(os.Stdin)
	case 1:
		data, err = os.ReadFile(fs.Arg(0))
	default:
		log.Fatal("generate takes at most one file argument")
	}
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	fmt.Print(toc.New(data).RenderWithOptions(cfg.Options()))
}

func runUpdate(args []string, checkOnly bool) {
	name := "insert"
	if checkOnly {
		name = "check"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	flags := registerCommonFlags(fs)
	workers := fs.Int("workers", 0, "Number of files processed concurrently")
	fs.Parse(args)
	log := newLogger(*flags.logLevel)
	cfg := loadConfig(fs, flags, log)
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if fs.NArg() == 0 {
		log.Fatal("No files given")
	}

	begin, end := cfg.Markers()
	opts := cfg.Options()

	var stale atomic.Int64
	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for _, path := range fs.Args() {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return utils.WrapErrorf(utils.ErrFilesystem, "reading %q", path)
			}
			if !rewrite.HasMarkers(data, begin) {
				log.Debugf("%s: no %q marker, skipping", path, begin)
				return nil
			}
			rendered := toc.New(data).RenderWithOptions(opts)
			updated, err := rewrite.Update(data, rendered, begin, end)
			if err != nil {
				return utils.WrapErrorf(err, "updating %q", path)
			}
			if bytes.Equal(data, updated) {
				log.Debugf("%s: up to date", path)
				return nil
			}
			if checkOnly {
				log.Warnf("%s: ToC is stale", path)
				stale.Add(1)
				return nil
			}
			info, err := os.Stat(path)
			if err != nil {
				return utils.WrapErrorf(utils.ErrFilesystem, "stat %q", path)
			}
			if err := os.WriteFile(path, updated, info.Mode().Perm()); err != nil {
				return utils.WrapErrorf(utils.ErrFilesystem, "writing %q", path)
			}
			log.Infof("%s: ToC updated", path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("%v", err)
	}
	if n := stale.Load(); n > 0 {
		log.Errorf("%d file(s) have a stale ToC, run 'mdtoc insert' to refresh", n)
		os.Exit(1)
	}
}
