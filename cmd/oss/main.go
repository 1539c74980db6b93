package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"oss/inspect"
	"oss/misc"
	"oss/state"
)

const sourceHelp = `
SOURCE:
    path to style file, format is selected by extension:
        ".css", ".oss" - CSS rulesets, "#id", ".class" and "tag" selectors separated by whitespace nest scopes
        ".toml" - TOML tables
        anything else - YAML (or JSON) mappings
`

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:         "dump",
			Usage:        "Loads style file and outputs resulting style tree",
			OnUsageError: passUsageError,
			Action:       inspect.Dump,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "pretty", Aliases: []string{"p"}, Usage: "render tree for terminal with color swatches instead of YAML"},
				&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite destination file if it exists"},
			},
			Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
				state.EnvFromContext(ctx).Overwrite = cmd.Bool("overwrite")
				return ctx, nil
			},
			ArgsUsage: "SOURCE [DESTINATION]",
			CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + `
DESTINATION:
    file name to write style tree to, if absent - STDOUT
    YAML output could be loaded back as style file
`,
		},
		{
			Name:         "resolve",
			Usage:        "Computes geometry of a style node inside parent boundary",
			OnUsageError: passUsageError,
			Action:       inspect.Resolve,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "selector", Aliases: []string{"s"}, Usage: "whitespace separated `PATH` of selectors, root if absent"},
				&cli.StringFlag{Name: "parent", Required: true, Usage: "parent boundary as `X,Y,WIDTH,HEIGHT`"},
				&cli.StringFlag{Name: "image", Usage: "intrinsic background size as `WIDTH,HEIGHT`"},
			},
			ArgsUsage:          "SOURCE",
			CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
		},
		{
			Name:         "check",
			Usage:        "Verifies media files referenced by style file",
			OnUsageError: passUsageError,
			Action:       inspect.Check,
			ArgsUsage:    "SOURCE",
			CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + `
    every background-image and background-video reference must point to
    existing file of proper type, relative references are resolved against
    style file directory
`,
		},
		{
			Name:  "dumpconfig",
			Usage: "Dumps either default or actual configuration (YAML)",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
			},
			OnUsageError: passUsageError,
			Action:       dumpConfig,
			ArgsUsage:    "DESTINATION",
			CustomHelpTemplate: cli.CommandHelpTemplate + `
DESTINATION:
    file name to write configuration to, if absent - STDOUT

Actual configuration is composition of default values and values from
configuration file. Use --default to see configuration embedded into the
program.
`,
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "object style sheets: loads, inspects and resolves style files",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          setupEnv,
		After:           teardownEnv,
		OnUsageError:    passUsageError,
		ExitErrHandler:  logCommandError,
		CommandNotFound: unknownCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: commands(),
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		// log may be absent (argument parsing) or already closed
		if !errLogged {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}
