package commands

import (
	"fmt"
	"io"
	"log/slog"

	kterrors "git.home.luguber.info/inful/ktdocs/internal/errors"
	"git.home.luguber.info/inful/ktdocs/internal/version"
	"github.com/alecthomas/kong"
)

// exitUsage matches the code kong uses for command-line parse errors.
const exitUsage = 80

// Execute parses args, runs the selected command and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	cli := &CLI{logOut: stderr}
	parser, err := kong.New(cli,
		kong.Name("ktdocs"),
		kong.Description("Inspect, validate and scaffold the Keras Tuner API reference tree."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "ktdocs: %v\n", err)
		return exitUsage
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "ktdocs: error: %v\n", err)
		return exitUsage
	}

	err = ctx.Run(&Global{Logger: slog.Default(), Out: stdout}, cli)
	return kterrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).WithOutput(stderr).Report(err)
}
