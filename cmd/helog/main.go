package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"helog/internal/constants"
	"helog/internal/filtering"
	"helog/internal/stream"
	"helog/pkg/cel"
	"helog/pkg/errors"
	"helog/pkg/logging"
)

var hostPattern = regexp.MustCompile(`^[^:/@?&]+(:\d+)?$`)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	earlyLog := logging.NewEarlyLogTo(stderr)
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	if len(args) == 0 {
		rootCmd.SetOut(stderr)
		_ = rootCmd.Usage()
		return errors.ExitUsage
	}

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return errors.ExitOK
	}

	var end *streamEnd
	if errors.As(err, &end) {
		if ctx.Err() != nil {
			return constants.ExitInterrupted
		}
		return errors.ExitCode(end.err)
	}

	earlyLog.Error("%v", err)
	if ctx.Err() != nil {
		return constants.ExitInterrupted
	}

	var appErr *errors.Error
	if !errors.As(err, &appErr) {
		// cobra's own argument errors
		return errors.ExitUsage
	}
	return errors.ExitCode(err)
}

type options struct {
	configFile string
	criteria   filtering.Criteria
	format     filtering.Format
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "helog",
		Short: "Live log and event tailer for a Hubitat hub",
		Long: "helog connects to the log or event socket of a Hubitat hub and prints every\n" +
			"entry as it arrives, as readable text, CSV or raw JSON.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Validation("%s", err.Error())
	})

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (or HELOG_CONFIG)")

	rootCmd.AddCommand(
		streamCmd(stream.Log, "Stream live log entries", &configFile, stdout, stderr),
		streamCmd(stream.Events, "Stream live device and app events", &configFile, stdout, stderr),
	)

	return rootCmd
}

func streamCmd(kind stream.Kind, short string, configFile *string, stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   kind.String() + " <host>",
		Short: short,
		Args:  hostArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configFile = *configFile
			if opts.configFile == "" {
				opts.configFile = os.Getenv("HELOG_CONFIG")
			}
			return runStream(cmd.Context(), kind, args[0], opts, stdout, stderr)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opts.format.Raw, "raw", "r", false, "Print raw JSON exactly as received")
	flags.BoolVar(&opts.format.CSV, "csv", false, "Print CSV, starting with a header row")
	flags.StringSliceVar(&opts.criteria.Device, "device", nil, "Only entries from these devices (id or name)")
	flags.StringSliceVar(&opts.criteria.ExcludeDevice, "xdevice", nil, "Skip entries from these devices (id or name)")
	flags.StringVar(&opts.criteria.Where, "where", "", whereUsage())
	addKindFlags(kind, flags, &opts.criteria)

	return cmd
}

// addKindFlags registers every filter flag on both streams so that a flag used
// with the wrong stream is reported by filtering.Validate, not as an unknown flag.
func addKindFlags(kind stream.Kind, flags *pflag.FlagSet, c *filtering.Criteria) {
	appValues := "id or name"
	if !kind.AppByNameAllowed() {
		appValues = "numeric id"
	}
	flags.StringSliceVar(&c.App, "app", nil, "Only entries from these apps ("+appValues+")")
	flags.StringSliceVar(&c.ExcludeApp, "xapp", nil, "Skip entries from these apps ("+appValues+")")

	flags.StringSliceVar(&c.Name, "name", nil, "Only events with these names (events only)")
	flags.StringSliceVar(&c.ExcludeName, "xname", nil, "Skip events with these names (events only)")
	flags.StringSliceVar(&c.Level, "level", nil, "Only entries at these levels: "+strings.Join(filtering.LogLevels, ", ")+" (log only)")
	flags.StringSliceVar(&c.ExcludeLevel, "xlevel", nil, "Skip entries at these levels (log only)")

	if !kind.SupportsEventName() {
		_ = flags.MarkHidden("name")
		_ = flags.MarkHidden("xname")
	}
	if !kind.SupportsLogLevel() {
		_ = flags.MarkHidden("level")
		_ = flags.MarkHidden("xlevel")
	}
}

func whereUsage() string {
	return "CEL expression over record.<field> and stream, e.g. " + cel.FilterExpressionExamples["value_equals"]
}

func hostArg(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return errors.Validation("Missing required parameter: '<host>'")
	case len(args) > 1:
		return errors.Validation("Unmatched argument: '%s'", args[1])
	case !hostPattern.MatchString(args[0]):
		return errors.Validation("Invalid value '%s' for host: should be an IP address or hostname, "+
			"optionally with a port using the format <host>:<port>", args[0])
	}
	return nil
}
