package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"al.essio.dev/pkg/shellescape"
	"github.com/agentx-labs/readlink/internal/branding"
	"github.com/agentx-labs/readlink/internal/logging"
	"github.com/agentx-labs/readlink/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Resolver provides the two link capabilities the command dispatches to.
type Resolver interface {
	Canonicalize(path string, mode platform.CanonMode) (string, error)
	ReadLink(path string) (string, error)
}

type fsResolver struct{}

func (fsResolver) Canonicalize(path string, mode platform.CanonMode) (string, error) {
	return platform.Canonicalize(path, mode)
}

func (fsResolver) ReadLink(path string) (string, error) {
	return platform.ReadSymlinkTarget(path)
}

// usageError is a problem with the argument vector itself.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

// exitError is a resolution failure. silent suppresses the diagnostic.
type exitError struct {
	err    error
	silent bool
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

type options struct {
	mode      platform.CanonMode // zero: read the link, don't canonicalize
	noNewline bool
	verbose   bool
}

// choiceFlag is a no-argument flag that stores value into a target shared
// with other flags, so among -e/-f/-m (or -q/-s/-v) the last one given wins.
type choiceFlag[T comparable] struct {
	target *T
	value  T
	on     bool
}

func (f *choiceFlag[T]) Set(s string) error {
	on, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	f.on = on
	if on {
		*f.target = f.value
	}
	return nil
}

func (f *choiceFlag[T]) String() string { return strconv.FormatBool(f.on) }

func (f *choiceFlag[T]) Type() string { return "bool" }

func choiceVar[T comparable](flags *pflag.FlagSet, target *T, value T, name, shorthand, usage string) {
	flags.VarPF(&choiceFlag[T]{target: target, value: value}, name, shorthand, usage).NoOptDefVal = "true"
}

func newRootCmd(name string, resolver Resolver) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           name + " [OPTION]... FILE",
		Short:         branding.Description(),
		Long:          "Display value of a symbolic link on standard output.\nArguments are read as one line from standard input.",
		Version:       versionString(buildVersion, buildCommit, buildDate),
		Args:          operandArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resolve(cmd, resolver, opts, args[0])
		},
	}
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	flags := cmd.Flags()
	flags.SortFlags = false
	choiceVar(flags, &opts.mode, platform.CanonAllButLast, "canonicalize", "f",
		"canonicalize by following every symlink in every component of the given name recursively; all but the last component must exist")
	choiceVar(flags, &opts.mode, platform.CanonExisting, "canonicalize-existing", "e",
		"canonicalize by following every symlink in every component of the given name recursively, all components must exist")
	choiceVar(flags, &opts.mode, platform.CanonMissing, "canonicalize-missing", "m",
		"canonicalize by following every symlink in every component of the given name recursively, without requirements on components existence")
	flags.BoolVarP(&opts.noNewline, "no-newline", "n", false, "do not output the trailing newline")
	choiceVar(flags, &opts.verbose, false, "quiet", "q", "suppress most error messages")
	choiceVar(flags, &opts.verbose, false, "silent", "s", "suppress most error messages")
	choiceVar(flags, &opts.verbose, true, "verbose", "v", "report error messages")

	return cmd
}

func operandArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return &usageError{msg: "missing operand"}
	case len(args) > 1:
		return &usageError{msg: "extra operand " + shellescape.Quote(args[1])}
	}
	return nil
}

func resolve(cmd *cobra.Command, resolver Resolver, opts *options, fname string) error {
	logger := logging.GetLogger("resolve")

	var value string
	var err error
	if opts.mode != 0 {
		logger.Debug().Str("path", fname).Stringer("mode", opts.mode).Msg("Canonicalizing")
		value, err = resolver.Canonicalize(fname, opts.mode)
	} else {
		logger.Debug().Str("path", fname).Msg("Reading link target")
		value, err = resolver.ReadLink(fname)
	}
	if err != nil {
		// Report "FILE: cause" rather than the PathError's "op FILE: cause".
		var pe *fs.PathError
		if errors.As(err, &pe) {
			err = pe.Err
		}
		return &exitError{err: fmt.Errorf("%s: %w", fname, err), silent: !opts.verbose}
	}

	out := cmd.OutOrStdout()
	if opts.noNewline {
		fmt.Fprint(out, value)
	} else {
		fmt.Fprintln(out, value)
	}
	return nil
}
