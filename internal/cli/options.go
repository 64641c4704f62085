// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"regexp"

	"seqsleuth/internal/version"
)

// Output formats.
const (
	FormatCSV   = "csv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	FastqFiles []string // positional FASTQ paths
	FileList   string   // CSV manifest: file_type,filename,filepath

	// Extraction parameters
	NumReads         int  // reads sampled per file; -1 = all
	ReadNameFallback bool // consult read-name shape when the filename gives Unknown

	// Performance
	Workers int

	// Output
	Format string
	Sort   bool
	Header bool // true unless --no-header

	Quiet   bool
	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: sequencing technology prediction and metadata extraction

Classifies FASTQ/BAM/VCF files by sequencing technology and extracts
provenance metadata from read names, file headers, and path tokens.

Version: %s

Usage: %s [flags] [FASTQ files...]
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

var fastqExt = regexp.MustCompile(`\.(fastq|fq)(\.gz)?$`)

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.FileList, "file-list", "", "CSV manifest of files to process (file_type,filename,filepath)")
	fs.IntVar(&opt.NumReads, "num-reads", 5, "reads sampled per file (-1 = all) [5]")
	fs.BoolVar(&opt.ReadNameFallback, "readname-fallback", false, "classify by read-name shape when the filename gives Unknown [false]")

	fs.IntVar(&opt.Workers, "workers", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.StringVar(&opt.Format, "output", FormatCSV, "output format: csv | json | jsonl [csv]")
	fs.BoolVar(&opt.Sort, "sort", false, "sort output rows by filename for determinism [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in CSV [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "log per-file progress [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.FastqFiles = fs.Args()
	opt.Header = !noHeader

	// Validation
	if len(opt.FastqFiles) == 0 && opt.FileList == "" {
		return opt, errors.New("provide FASTQ files or --file-list")
	}
	for _, f := range opt.FastqFiles {
		if f != "-" && !fastqExt.MatchString(f) {
			return opt, fmt.Errorf("%s is not a fastq file by extension (want .fastq, .fastq.gz, .fq, or .fq.gz)", f)
		}
	}
	if opt.NumReads == 0 || opt.NumReads <= -2 {
		return opt, errors.New("--num-reads must be > 0, or -1 to sample all reads")
	}
	if opt.Workers < 0 {
		return opt, errors.New("--workers must be ≥ 0")
	}
	if opt.Format != FormatCSV && opt.Format != FormatJSON && opt.Format != FormatJSONL {
		return opt, fmt.Errorf("invalid --output %q", opt.Format)
	}
	return opt, nil
}
