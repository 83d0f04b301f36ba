package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/landmap/camellia/appenv"
	"github.com/landmap/camellia/config"
	"github.com/landmap/camellia/internal/logging"
)

func main() {
	logger, err := logging.New(appenv.Current())
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

// loadFlags are shared by the commands that assemble configuration.
type loadFlags struct {
	schema *string
	dir    *string
	noEnv  *bool
}

func registerLoadFlags(cmd *kingpin.CmdClause) loadFlags {
	return loadFlags{
		schema: cmd.Flag("schema", "Configuration schema name").Short('s').Envar("CAMELLIA_SCHEMA").Default(config.DefaultSchema).String(),
		dir:    cmd.Flag("dir", "Configuration root directory").Short('d').Envar("CAMELLIA_DIR").Default(config.DefaultDir).String(),
		noEnv:  cmd.Flag("no-env", "Ignore environment variable overrides").Envar("CAMELLIA_NO_ENV").Bool(),
	}
}

func (f loadFlags) options(logger *zap.Logger) config.Options {
	return config.Options{
		Schema:             *f.schema,
		Dir:                *f.dir,
		DisableEnvOverride: *f.noEnv,
		Logger:             logger,
	}
}

func run(args []string, stdout io.Writer, logger *zap.Logger) error {
	app := kingpin.New("camellia", "Inspect the application environment and layered configuration")

	envCmd := app.Command("env", "Print the resolved application environment")

	sourcesCmd := app.Command("sources", "List configuration sources in merge order")
	sourcesFlags := registerLoadFlags(sourcesCmd)

	showCmd := app.Command("show", "Print the merged configuration tree")
	showFlags := registerLoadFlags(showCmd)
	format := showCmd.Flag("format", "Output format").Short('f').Default("yaml").Enum("yaml", "json", "toml")

	command, err := app.Parse(args)
	if err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	switch command {
	case envCmd.FullCommand():
		_, err = fmt.Fprintln(stdout, appenv.Current())
		return err
	case sourcesCmd.FullCommand():
		return printSources(stdout, sourcesFlags.options(logger))
	case showCmd.FullCommand():
		return printConfig(stdout, showFlags.options(logger), *format)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printSources(w io.Writer, opts config.Options) error {
	for _, src := range config.Sources(opts) {
		required := "optional"
		if src.Required {
			required = "required"
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", src.Kind, required, src); err != nil {
			return err
		}
	}
	return nil
}

func printConfig(w io.Writer, opts config.Options, format string) error {
	parser, ok := config.ParserFor(format)
	if !ok {
		return fmt.Errorf("unsupported format %q", format)
	}

	k, err := config.Build(opts)
	if err != nil {
		return err
	}

	out, err := k.Marshal(parser)
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}

	_, err = w.Write(out)
	return err
}
