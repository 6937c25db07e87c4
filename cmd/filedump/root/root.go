package root

import (
	"fmt"

	"github.com/flarebyte/filedump/internal/buildinfo"
	"github.com/flarebyte/filedump/internal/dumper"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for filedump.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filedump <path>",
		Short: "Print the text of a file to standard output",
		Long: "Read the whole file at <path>, decode it as " + dumper.Encoding +
			" and print it followed by a newline.\n\n" +
			"Use -- before a path that starts with a dash: filedump -- -notes.txt",
		Args:    pathArg,
		Version: buildinfo.Summary(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dumper.New(cmd.OutOrStdout()).Dump(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("filedump {{.Version}}\n")
	return cmd
}

func pathArg(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return &dumper.FileAccessError{Op: "args", Err: dumper.ErrMissingPath}
	case 1:
		return nil
	default:
		return fmt.Errorf("accepts 1 arg, received %d", len(args))
	}
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
