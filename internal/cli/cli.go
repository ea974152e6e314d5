package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/defpeek/internal/app"
	"github.com/vk/defpeek/internal/config"
	"github.com/vk/defpeek/internal/dataset"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// NewRootCmd returns the defpeek command. Results go to outW, logs and errors to errW.
func NewRootCmd(outW, errW io.Writer) *cobra.Command {
	var cfg app.Config
	var session *app.App

	root := &cobra.Command{
		Use:   "defpeek",
		Short: "Inspect game definition dumps",
		Long: `defpeek loads object, npc, item, enum, struct and interface definitions
from a directory dump on demand and prints them in a readable form.

Collections: ` + strings.Join(dataset.New("", nil).Registry().Names(), ", "),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.LogLevel = strings.ToLower(cfg.LogLevel)
			cfg.LogFormat = strings.ToLower(cfg.LogFormat)
			a, err := app.NewApp(outW, errW, &cfg)
			if errors.Is(err, config.ErrInvalidConfig) {
				return usageError("%v", err)
			}
			if err != nil {
				return err
			}
			session = a
			return nil
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringVarP(&cfg.Root, "root", "r", "", "Dataset root directory (default: the session file's root, else '.').")
	flags.StringVarP(&cfg.ConfigPath, "config", "c", "", "HCL session file (default: <root>/defpeek.hcl when present).")
	flags.StringVar(&cfg.LogLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&cfg.LogFormat, "log-format", "", "Log output format: 'text' or 'json'.")

	get := func() *app.App { return session }
	root.AddCommand(
		newGetCmd(get),
		newEnumCmd(get),
		newWidgetCmd(get),
		newNamesCmd(get),
		newVaryingCmd(get),
		newFormatCmd(get),
		newDumpCmd(get),
	)
	return root
}

func newGetCmd(session func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Print one entry of a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := session()
			v, err := a.Entry(a.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return a.Print(v)
		},
	}
}

func newEnumCmd(session func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "enum <id>",
		Short: "Print an enum with keys and values formatted by their declared types",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := session()
			v, err := a.Entry(a.Context(), dataset.Enums, args[0])
			if err != nil {
				return err
			}
			return a.Print(v)
		},
	}
}

func newWidgetCmd(session func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "widget <group:child>",
		Short: "Print a widget with composite ids and listener arguments decoded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := session()
			v, err := a.Entry(a.Context(), dataset.Widgets, args[0])
			if err != nil {
				return err
			}
			return a.Print(v)
		},
	}
}

func newNamesCmd(session func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "names <collection>",
		Short: "Print collision-free constant names for every record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := session()
			names, err := a.Names(a.Context(), args[0])
			if err != nil {
				return err
			}
			return a.Print(names)
		},
	}
}

func newVaryingCmd(session func() *app.App) *cobra.Command {
	var keep []string
	cmd := &cobra.Command{
		Use:   "varying <collection> [id...]",
		Short: "Print records reduced to the fields that differ between them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args)-1)
			for _, s := range args[1:] {
				id, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return usageError("invalid id %q", s)
				}
				ids = append(ids, id)
			}
			a := session()
			recs, err := a.Varying(a.Context(), args[0], ids, keep)
			if err != nil {
				return err
			}
			return a.Print(recs)
		},
	}
	cmd.Flags().StringSliceVarP(&keep, "keep", "k", []string{"id"}, "Fields always kept in the output.")
	return cmd
}

func newFormatCmd(session func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "format <TYPE> <value>",
		Short: "Format a raw value as a primitive type (COORDGRID, COMPONENT, OBJ, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := session()
			s, err := a.FormatValue(a.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
}

func newDumpCmd(session func() *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <collection> <out.json>",
		Short: "Write a whole collection in display form to a JSON file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := session()
			return a.Dump(a.Context(), args[0], args[1])
		},
	}
}
