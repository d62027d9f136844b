package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"github.com/slack-go/slack"

	"paperbot/pkg/arxiv"
	"paperbot/pkg/config"
	"paperbot/pkg/feed"
	"paperbot/pkg/llm"
	"paperbot/pkg/notifier"
	"paperbot/pkg/runner"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"CONFIG_FILE" default:"config.yaml" description:"config file"`
	Secrets string `short:"s" long:"secrets" env:"SECRETS_FILE" default:"secrets.yaml" description:"secrets file"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

// fetchTimeout bounds a single feed fetch or arXiv query
const fetchTimeout = 30 * time.Second

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	secrets, err := config.LoadSecrets(opts.Secrets)
	if err != nil {
		fmt.Printf("failed to load secrets: %v\n", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, secrets.MaskValues()...)

	log.Printf("[INFO] starting paperbot version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	loc := cfg.Location()
	llmCfg := cfg.LLM
	llmCfg.APIKey = secrets.OpenAIKey
	llmCfg.Model = secrets.OpenAIModel

	r := runner.New(runner.Params{
		Config:     cfg,
		Secrets:    secrets,
		Journals:   feed.NewIngestor(fetchTimeout, loc),
		Arxiv:      arxiv.NewIngestor(arxiv.NewClient(fetchTimeout), loc),
		Summarizer: llm.NewSummarizer(llmCfg),
		NewMessenger: func(token string) runner.Messenger {
			return notifier.New(slack.New(token), loc)
		},
	})

	err = r.Run(ctx)
	cancel()

	if err != nil {
		log.Printf("[ERROR] run failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] run complete")
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
