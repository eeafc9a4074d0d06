package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/beamgridgo/internal/app"
	"github.com/specialistvlad/beamgridgo/internal/beam"
	"github.com/specialistvlad/beamgridgo/internal/report"
)

// Exit codes returned through ExitError.
const (
	ExitRuntime = 1
	ExitUsage   = 2
)

// EnvPrefix prefixes the environment variable consulted for every unset flag.
const EnvPrefix = "BEAMGRID_"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Parse processes command-line arguments against the process environment.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return ParseWithEnv(args, output, os.LookupEnv)
}

// ParseWithEnv is Parse with an explicit environment lookup.
func ParseWithEnv(args []string, output io.Writer, lookup LookupEnv) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("beamgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
BeamGrid - Count the tiles a light beam energizes in a mirror contraption.

Usage:
  beamgrid [options] [LAYOUT_PATH]

Arguments:
  LAYOUT_PATH
    Path to a layout text file (optionally zstd-compressed, *.zst).
    Without -start, every edge entry is searched and the maximum reported.

Every option can also be set through the environment as BEAMGRID_<NAME>,
e.g. BEAMGRID_RESULTS_DB for -results-db. Explicit flags win.

Options:
`)
		flagSet.PrintDefaults()
	}

	var starts startList
	layoutFlag := flagSet.String("layout", "", "Path to the layout file.")
	lFlag := flagSet.String("l", "", "Path to the layout file (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a run manifest (.hcl, .yaml) or a directory of .hcl files.")
	flagSet.Var(&starts, "start", "Starting beam as x,y,heading (repeatable). Default: every edge.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent search workers. 0 means one per CPU.")
	orderFlag := flagSet.String("order", "", "Worklist order of the simulator. Options: 'fifo' or 'lifo'.")
	formatFlag := flagSet.String("format", "", "Report format. Options: "+strings.Join(report.Formats(), ", ")+".")
	renderFlag := flagSet.Bool("render", false, "Print the energized map of the best start.")
	resultsDBFlag := flagSet.String("results-db", "", "SQLite file to persist every run into.")
	publishURLFlag := flagSet.String("publish-url", "", "Socket.IO server URL to stream runs to.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	envFileFlag := flagSet.String("env-file", "", "Dotenv file with BEAMGRID_* defaults.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	// A shorthand or positional layout counts as an explicit -layout.
	var given []string
	if *lFlag != "" || flagSet.NArg() > 0 {
		given = append(given, "layout")
	}
	if err := applyEnv(flagSet, *envFileFlag, lookup, given...); err != nil {
		return nil, false, err
	}

	path := ""
	if *layoutFlag != "" {
		path = *layoutFlag
	} else if *lFlag != "" {
		path = *lFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Layout path determined.", "path", path, "config", *configFlag)

	if path == "" && *configFlag == "" {
		slog.Debug("No layout or manifest provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if _, err := beam.ParseOrder(*orderFlag); err != nil {
		return nil, false, usageError("invalid order: %v", err)
	}
	if *formatFlag != "" {
		if _, err := report.ForFormat(*formatFlag); err != nil {
			return nil, false, usageError("invalid format: %v", err)
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		LayoutPath:      path,
		ManifestPath:    *configFlag,
		Starts:          starts.starts,
		Workers:         *workersFlag,
		Order:           strings.ToLower(*orderFlag),
		Format:          *formatFlag,
		Render:          *renderFlag,
		ResultsDB:       *resultsDBFlag,
		PublishURL:      *publishURLFlag,
		HealthcheckPort: *healthPortFlag,
		LogFormat:       logFormat,
		LogLevel:        logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// EnvName returns the environment variable backing the named flag.
func EnvName(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyEnv sets every flag not given on the command line from the
// environment, then from the dotenv file. The real environment wins over the
// file. Flags named in given are treated as set. The shorthand -l has no
// variable of its own.
func applyEnv(fs *flag.FlagSet, envFile string, lookup LookupEnv, given ...string) error {
	if envFile == "" {
		if v, ok := lookup(EnvName("env-file")); ok {
			envFile = v
		}
	}
	var fileVars map[string]string
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return usageError("failed to read env file %s: %v", envFile, err)
		}
		fileVars = vars
		slog.Debug("Env file loaded.", "path", envFile, "count", len(vars))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for _, name := range given {
		set[name] = true
	}

	var errs []error
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || f.Name == "l" || f.Name == "env-file" {
			return
		}
		key := EnvName(f.Name)
		v, ok := lookup(key)
		if !ok {
			v, ok = fileVars[key]
		}
		if !ok {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	})
	if err := errors.Join(errs...); err != nil {
		return usageError("invalid environment: %v", err)
	}
	return nil
}
