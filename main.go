package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// Processing
	numThreads int

	// Input lists
	filesFrom  string
	files0From string

	cfgFile string
)

// version is set via ldflags.
var version = "dev"

var errMixedArgs = errors.New("file operands cannot be combined with --files-from or --files0-from")

var rootCmd = &cobra.Command{
	Use:   "cw [flags] [input]...",
	Short: "Count words, lines, characters and bytes, fast.",
	Long: `cw counts lines, words, characters, bytes and maximum line length,
like wc, picking the cheapest scanning loop that satisfies the requested
metrics. With no input, or when an input is -, it reads standard input.
Multiple inputs can be counted in parallel with --threads.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := metricSet(cmd.Flags(), os.Args[1:])

		sources, err := resolveSources(args)
		if err != nil {
			return err
		}

		track := newTracker()
		watchProgress(track)

		threads := viper.GetInt("threads")
		results := countAll(pickStrategy(opts), sources, threads, track)

		// Totals are computed only once every result is in, so the final
		// block of output is derived from one consistent snapshot.
		var total Counts
		failed := false
		for _, r := range results {
			if r.Err != nil {
				failed = true
				continue
			}
			total.Add(r.Counts)
		}

		width := columnWidth(opts, results, total)
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", r.Name, r.Err)
				continue
			}
			writeCounts(os.Stdout, width, opts, r.Counts, r.Name)
		}
		if len(sources) > 1 {
			writeCounts(os.Stdout, width, opts, total, "total")
		}

		if failed {
			return errSourceFailed
		}
		return nil
	},
}

// errSourceFailed only drives the exit status; the per-source errors have
// already been reported.
var errSourceFailed = errors.New("some inputs could not be read")

// metricSet builds the requested metric bitmask from the parsed flags.
// With no selector at all the classic default applies: lines, words and
// bytes. -c and -m toggle each other, last one on the command line wins.
func metricSet(f *pflag.FlagSet, argv []string) uint8 {
	lines, _ := f.GetBool("lines")
	words, _ := f.GetBool("words")
	chars, _ := f.GetBool("chars")
	bytes, _ := f.GetBool("bytes")
	maxLen, _ := f.GetBool("max-line-length")

	if bytes && chars {
		if lastSelector(argv) == 'm' {
			bytes = false
		} else {
			chars = false
		}
	}

	var opts uint8
	if lines {
		opts |= Lines
	}
	if words {
		opts |= Words
	}
	if chars {
		opts |= Chars
	}
	if bytes {
		opts |= Bytes
	}
	if maxLen {
		opts |= MaxLength
	}
	if opts == 0 {
		opts = Lines | Words | Bytes
	}
	return opts
}

// lastSelector scans raw argv for the later of -c/--bytes and -m/--chars,
// including occurrences inside combined short flags. pflag records that
// both were set but not their order.
func lastSelector(argv []string) byte {
	var sel byte
	for _, a := range argv {
		switch {
		case a == "--":
			return sel
		case a == "--bytes":
			sel = 'c'
		case a == "--chars":
			sel = 'm'
		case len(a) > 1 && a[0] == '-' && a[1] != '-':
			for _, ch := range a[1:] {
				switch ch {
				case 'c':
					sel = 'c'
				case 'm':
					sel = 'm'
				}
			}
		}
	}
	return sel
}

// resolveSources turns positional arguments and the --files-from /
// --files0-from flags into the ordered input list. No operands at all
// means standard input, identified by an empty name.
func resolveSources(args []string) ([]Source, error) {
	switch {
	case filesFrom != "" && files0From != "":
		return nil, errors.New("--files-from and --files0-from are mutually exclusive")
	case filesFrom != "" || files0From != "":
		if len(args) > 0 {
			return nil, errMixedArgs
		}
		if filesFrom != "" {
			return readFileList(filesFrom, false)
		}
		return readFileList(files0From, true)
	case len(args) == 0:
		return []Source{{}}, nil
	default:
		sources := make([]Source, len(args))
		for i, a := range args {
			sources[i] = Source{Path: a}
		}
		return sources, nil
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().BoolP("lines", "l", false, "print the newline counts")
	rootCmd.Flags().BoolP("words", "w", false, "print the word counts")
	rootCmd.Flags().BoolP("chars", "m", false, "print the character counts instead of bytes")
	rootCmd.Flags().BoolP("bytes", "c", false, "print the byte counts")
	rootCmd.Flags().BoolP("max-line-length", "L", false, "print the length of the longest line")

	rootCmd.Flags().IntVar(&numThreads, "threads", 1, "number of counting workers")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	viper.SetDefault("threads", 1)

	rootCmd.Flags().StringVar(&filesFrom, "files-from", "", "read input paths from FILE, one per line")
	rootCmd.Flags().StringVar(&files0From, "files0-from", "", "read input paths from FILE, NUL-terminated")
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.config/cw/config.toml)")
}

// initConfig reads in the config file and CW_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cw"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("CW")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "cw: reading config: %v\n", err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSourceFailed) {
			fmt.Fprintln(os.Stderr, "cw:", err)
		}
		os.Exit(1)
	}
}
