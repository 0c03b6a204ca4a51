package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/muniverk/commentmood/internal/emotion"
	"github.com/muniverk/commentmood/internal/log"
	"github.com/muniverk/commentmood/internal/output"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "commentmood: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "analyze":
		return runAnalyze(args[1:])
	case "classify":
		return runClassify(args[1:])
	case "lexicon":
		return runLexicon(args[1:])
	default:
		return usageError()
	}
}

// validCountries are the countries the flag-driven path accepts for -country,
// besides the literal "all". A config file may extend this list.
var validCountries = []string{
	"bangladesh", "brazil", "canada", "china", "egypt",
	"france", "germany", "india", "iran", "japan", "mexico",
	"nigeria", "pakistan", "russia", "south korea", "turkey",
	"united kingdom", "united states",
}

type analyzeOptions struct {
	configPath string
	lexicon    string
	comments   string
	country    string
	out        string
	format     string
	force      bool
	print      bool
	color      bool
	verbose    bool
}

func runAnalyze(args []string) error {
	opts, err := parseAnalyzeArgs(args)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}
	if err := checkCountry(cfg.Country, cfg.Countries); err != nil {
		return err
	}
	if err := checkOutput(cfg.Output); err != nil {
		return err
	}

	logger := log.New(opts.verbose, os.Stderr)
	summary, err := emotion.Run(cfg, logger)
	if err != nil {
		return err
	}

	// Render fully before touching the output file so a formatting error
	// never leaves a partial report behind. The persisted report is always
	// plain; color only applies to the -print copy.
	var buf bytes.Buffer
	if err := formatterFor(cfg.Output.Format, false).Format(&buf, summary); err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Output.Path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if opts.print {
		if err := formatterFor(cfg.Output.Format, opts.color).Format(os.Stdout, summary); err != nil {
			return err
		}
	}
	fmt.Printf("Most common emotion is: %s\n", summary.Dominant)
	fmt.Printf("report: %s\n", cfg.Output.Path)
	return nil
}

func parseAnalyzeArgs(args []string) (analyzeOptions, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to run config yaml")
	lexicon := fs.String("lexicon", "", "path to keyword lexicon tsv")
	comments := fs.String("comments", "", "path to comments csv")
	country := fs.String("country", "", "country to analyze, or 'all'")
	out := fs.String("out", "", "path to write the report")
	format := fs.String("format", "", "report format: text or json")
	force := fs.Bool("force", false, "overwrite an existing report file")
	printOut := fs.Bool("print", false, "also print the report to stdout")
	color := fs.Bool("color", false, "colorize the printed report")
	verbose := fs.Bool("v", false, "verbose progress on stderr")
	if err := fs.Parse(args); err != nil {
		return analyzeOptions{}, err
	}

	opts := analyzeOptions{
		configPath: *configPath,
		lexicon:    *lexicon,
		comments:   *comments,
		country:    *country,
		out:        *out,
		format:     *format,
		force:      *force,
		print:      *printOut,
		color:      *color,
		verbose:    *verbose,
	}
	if opts.configPath == "" && (opts.lexicon == "" || opts.comments == "" || opts.out == "") {
		return analyzeOptions{}, errors.New("analyze requires -config, or -lexicon, -comments, and -out")
	}
	return opts, nil
}

// resolveConfig builds the run config from a config file, from direct flags,
// or from both, with flags taking precedence over the file.
func resolveConfig(opts analyzeOptions) (emotion.Config, error) {
	var cfg emotion.Config
	if opts.configPath != "" {
		loaded, err := emotion.LoadConfig(opts.configPath)
		if err != nil {
			return emotion.Config{}, err
		}
		cfg = loaded
	} else {
		cfg.Emotions = emotion.DefaultSet().Labels()
		cfg.Country = emotion.FilterAll
		cfg.Output.Format = emotion.FormatText
		if err := checkExtension("keyword file", opts.lexicon, ".tsv"); err != nil {
			return emotion.Config{}, err
		}
		if err := checkExtension("comment file", opts.comments, ".csv"); err != nil {
			return emotion.Config{}, err
		}
	}

	if opts.lexicon != "" {
		cfg.Lexicon = opts.lexicon
	}
	if opts.comments != "" {
		cfg.Comments = []emotion.SourceConfig{{Path: opts.comments, Include: []string{"**/*.csv"}}}
	}
	if opts.country != "" {
		cfg.Country = strings.ToLower(strings.TrimSpace(opts.country))
	}
	if opts.out != "" {
		cfg.Output.Path = opts.out
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}
	if opts.force {
		cfg.Output.Overwrite = true
	}

	if cfg.Output.Format != emotion.FormatText && cfg.Output.Format != emotion.FormatJSON {
		return emotion.Config{}, fmt.Errorf("format must be text or json, got %q", cfg.Output.Format)
	}
	return cfg, nil
}

func checkCountry(country string, extra []string) error {
	if country == emotion.FilterAll {
		return nil
	}
	for _, known := range validCountries {
		if country == known {
			return nil
		}
	}
	for _, known := range extra {
		if country == strings.ToLower(strings.TrimSpace(known)) {
			return nil
		}
	}
	return fmt.Errorf("%s is not a valid country to filter by", country)
}

func checkOutput(out emotion.OutputConfig) error {
	if out.Path == "" {
		return errors.New("report output path is required")
	}

	wantExt := ".txt"
	if out.Format == emotion.FormatJSON {
		wantExt = ".json"
	}
	if err := checkExtension("report file", out.Path, wantExt); err != nil {
		return err
	}

	if !out.Overwrite {
		if _, err := os.Stat(out.Path); err == nil {
			return fmt.Errorf("report file %s already exists (use -force to overwrite)", out.Path)
		}
	}
	return nil
}

func checkExtension(kind string, path string, want string) error {
	// Directory sources are matched by include globs instead.
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil
	}
	if strings.ToLower(filepath.Ext(path)) != want {
		return fmt.Errorf("%s %s does not end in %s", kind, path, want)
	}
	return nil
}

func formatterFor(format string, color bool) output.Formatter {
	if format == emotion.FormatJSON {
		return &output.JSONFormatter{}
	}
	return &output.TextFormatter{Color: color}
}

func runClassify(args []string) error {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	lexiconPath := fs.String("lexicon", "", "path to keyword lexicon tsv")
	text := fs.String("text", "", "comment text to classify")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *lexiconPath == "" || *text == "" {
		return errors.New("classify requires -lexicon and -text")
	}

	lexicon, err := emotion.LoadLexicon(*lexiconPath, emotion.DefaultSet())
	if err != nil {
		return err
	}
	fmt.Println(emotion.Classify(*text, lexicon))
	return nil
}

func runLexicon(args []string) error {
	fs := flag.NewFlagSet("lexicon", flag.ContinueOnError)
	path := fs.String("file", "", "path to keyword lexicon tsv")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		return errors.New("lexicon requires -file")
	}

	set := emotion.DefaultSet()
	lexicon, err := emotion.LoadLexicon(*path, set)
	if err != nil {
		return err
	}

	names := make([]string, 0, set.Len())
	for _, label := range set.Labels() {
		names = append(names, string(label))
	}
	fmt.Printf("entries:    %d\n", lexicon.Len())
	fmt.Printf("categories: %s\n", strings.Join(names, ", "))
	return nil
}

func usageError() error {
	return errors.New("usage: commentmood <analyze|classify|lexicon> [flags]")
}
