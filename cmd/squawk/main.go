package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-isatty"

	"github.com/squawkhq/squawk/linter"
	"github.com/squawkhq/squawk/syntax"
	"github.com/squawkhq/squawk/util"
)

var version string

type options struct {
	Config              string   `short:"c" long:"config" description:"Path to the .squawk.toml configuration file" value-name:"path"`
	Exclude             []string `short:"e" long:"exclude" description:"Rule to disable; may be given multiple times" value-name:"rule"`
	PgVersion           string   `long:"pg-version" description:"PostgreSQL version for version-aware rules" value-name:"version"`
	AssumeInTransaction bool     `long:"assume-in-transaction" description:"Lint each file as if wrapped in BEGIN/COMMIT"`
	Reporter            string   `long:"reporter" description:"Output format" choice:"tty" choice:"json" choice:"gcc" default:"tty"`
	DebugLex            bool     `long:"debug-lex" description:"Dump the token stream instead of linting"`
	DebugAst            bool     `long:"debug-ast" description:"Dump the syntax tree instead of linting"`
	ListRules           bool     `long:"list-rules" description:"List every rule and exit"`
	Help                bool     `long:"help" description:"Show this help"`
	Version             bool     `long:"version" description:"Show this version"`
}

func parseOptions(args []string) (*options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...] file.sql..."
	args, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}
	if opts.ListRules {
		for _, rule := range linter.Rules() {
			fmt.Println(rule)
		}
		os.Exit(0)
	}
	if len(args) == 0 {
		fmt.Print("No files given!\n\n")
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}
	return &opts, args
}

func main() {
	util.InitSlog()
	opts, files := parseOptions(os.Args[1:])

	config, err := loadConfig(opts.Config)
	if err != nil {
		log.Fatal(err)
	}

	settings, enabled, err := buildSettings(opts, config)
	if err != nil {
		log.Fatal(err)
	}
	files = filterExcluded(files, config.ExcludedPaths)

	reporter := newReporter(opts.Reporter, isatty.IsTerminal(os.Stdout.Fd()))

	exitCode := 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "squawk: %v\n", err)
			exitCode = 1
			continue
		}
		text := string(data)
		parse := syntax.ParseSourceFile(text)

		if opts.DebugLex || opts.DebugAst {
			dumpDebug(opts, file, text, parse)
			continue
		}

		l := linter.New(enabled...)
		l.Settings = settings
		violations := l.Lint(parse, text)
		reporter.report(os.Stdout, file, text, parse.Errors(), violations)
		if len(violations) > 0 || len(parse.Errors()) > 0 {
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func buildSettings(opts *options, config *config) (linter.Settings, []linter.Rule, error) {
	var settings linter.Settings
	settings.AssumeInTransaction = opts.AssumeInTransaction || config.AssumeInTransaction

	pgVersion := opts.PgVersion
	if pgVersion == "" {
		pgVersion = config.PgVersion
	}
	if pgVersion != "" {
		v, err := linter.ParseVersion(pgVersion)
		if err != nil {
			return settings, nil, err
		}
		settings.PgVersion = &v
	}

	excluded := make(map[linter.Rule]bool)
	for _, name := range append(config.ExcludedRules, opts.Exclude...) {
		rule, err := linter.RuleFromName(name)
		if err != nil {
			return settings, nil, err
		}
		excluded[rule] = true
	}
	var enabled []linter.Rule
	for _, rule := range linter.Rules() {
		if !excluded[rule] {
			enabled = append(enabled, rule)
		}
	}
	return settings, enabled, nil
}

func filterExcluded(files, patterns []string) []string {
	if len(patterns) == 0 {
		return files
	}
	var out []string
	for _, file := range files {
		skip := false
		for _, pattern := range patterns {
			if ok, _ := filepath.Match(pattern, filepath.Base(file)); ok {
				skip = true
				break
			}
			if ok, _ := filepath.Match(pattern, file); ok {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, file)
		}
	}
	return out
}
