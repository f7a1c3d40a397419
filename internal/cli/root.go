package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agentx-labs/readlink/internal/branding"
	"github.com/agentx-labs/readlink/internal/config"
	"github.com/agentx-labs/readlink/internal/lineinput"
	"github.com/agentx-labs/readlink/internal/logging"
	"github.com/agentx-labs/readlink/internal/tokenizer"
	"github.com/rs/zerolog/log"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Env is everything one invocation reads from or writes to the outside.
type Env struct {
	// Program is the real invocation name; it becomes element 0 of the vector.
	Program string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	// Lookup expands $NAME references on the argument line.
	Lookup tokenizer.LookupFunc
	// Resolver defaults to the filesystem when nil.
	Resolver Resolver
}

// Execute runs one invocation against the process streams with build info
// injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return Run(Env{
		Program: os.Args[0],
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Lookup:  os.LookupEnv,
	})
}

// Run reads the argument line from env.Stdin, tokenizes it and executes the
// command over the resulting vector. Diagnostics are written to env.Stderr;
// a non-nil error means failure exit status.
func Run(env Env) error {
	name := programName(env.Program)

	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
		return err
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
		return err
	}
	closeLog, err := logging.SetupLogger(env.Stderr, level, settings.LogFile)
	defer closeLog()
	if err != nil {
		log.Warn().Err(err).Str("path", settings.LogFile).Msg("Failed to open log file, logging to stderr only")
	}
	logger := logging.GetLogger("cli")

	reader := &lineinput.Reader{
		In:          env.Stdin,
		Out:         env.Stderr,
		MaxLength:   settings.MaxLineLength,
		Interactive: settings.Interactive,
		Prompt:      settings.Prompt,
	}
	line, err := reader.ReadLine()
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: reading arguments from stdin: %v\n", name, err)
		return err
	}

	tok := tokenizer.New(env.Lookup, tokenizer.Options{
		FlushTrailing: settings.FlushTrailing,
		OnWarning: func(w tokenizer.Warning) {
			logger.Debug().Stringer("kind", w.Kind).Int("offset", w.Offset).Str("detail", w.Detail).Msg("Tolerated malformed argument line")
		},
	})
	argv := tok.Tokenize(env.Program, line)
	logger.Debug().Int("bytes", len(line)).Int("tokens", len(argv.Args())).Msg("Tokenized argument line")

	return runCommand(argv, env)
}

// runCommand parses argv the way the process argument list would be parsed
// and reports failures in coreutils style.
func runCommand(argv tokenizer.Vector, env Env) error {
	name := programName(argv.Program())
	resolver := env.Resolver
	if resolver == nil {
		resolver = fsResolver{}
	}

	cmd := newRootCmd(name, resolver)
	cmd.SetIn(env.Stdin)
	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)

	// Cobra falls back to os.Args when given nil.
	args := argv.Args()
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return nil
	}

	var usage *usageError
	var exit *exitError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(env.Stderr, "%s: %s\nTry '%s --help' for more information.\n", name, usage.msg, name)
	case errors.As(err, &exit):
		if !exit.silent {
			fmt.Fprintf(env.Stderr, "%s: %v\n", name, exit.err)
		}
	default:
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
	}
	return err
}

func programName(program string) string {
	if program == "" {
		return branding.CLIName()
	}
	return filepath.Base(program)
}
