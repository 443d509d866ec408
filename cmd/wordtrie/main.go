// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs a word dictionary as an IPC server or as a CLI.

wordtrie keeps a set of words in a counting prefix tree. Every node knows how
many words live below it, so prefix counts cost one walk down the tree, and
removals prune branches nothing uses anymore.

# Usage

Start the server with default settings:

	wordtrie

Seed the dictionary from a word list and enable debug logs:

	wordtrie -seed words.txt -d

Run in CLI mode for interactive testing:

	wordtrie -c -limit 10

# Configuration

Runtime configuration lives in a TOML file created with defaults on first run
under the user config dir (override with -config):

	[server]
	max_limit = 64
	default_limit = 10
	max_word_len = 60
	enable_filter = true

	[dict]
	strict_counting = false
	seed_file = ""
	max_words = 0
	min_frequency = 0

	[cli]
	default_limit = 24

With strict_counting off, inserting a word that is already stored bumps every
count on its path again. Turn it on to make repeated inserts no-ops.

# IPC Protocol

The server reads msgpack maps from stdin and writes one msgpack map per
request to stdout. Logs go to stderr.

	{"id": "r1", "op": "insert", "w": "cart"}
	{"id": "r2", "op": "search", "w": "ca", "l": 2}

See package server for the full message set.

# Command Line Flags

	-config string
	    Path to a config file
	-seed string
	    Word list to load at start (overrides dict.seed_file)
	-words int
	    Maximum words to load from the seed (0 for all)
	-strict
	    Ignore repeated inserts of the same word
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-limit int
	    Number of words find returns in CLI mode
	-no-filter
	    Accept any input as a word
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/logger"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/server"
	"github.com/bastiangx/wordtrie/pkg/trie"
	"github.com/bastiangx/wordtrie/pkg/wordlist"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordtrie"
	gh      = "https://github.com/bastiangx/wordtrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only wires packages together and manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config file")
	seedFile := flag.String("seed", "", "Word list to load at start (overrides dict.seed_file)")
	wordLimit := flag.Int("words", -1, "Maximum words to load from the seed (0 for all, default from config)")
	strict := flag.Bool("strict", false, "Ignore repeated inserts of the same word")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 0, fmt.Sprintf("Number of words find returns in CLI mode (default from config, %d)", defaultConfig.CLI.DefaultLimit))
	noFilter := flag.Bool("no-filter", false, "Accept any input as a word (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	var appConfig *config.Config
	usedPath := *configPath
	if *configPath != "" {
		appConfig, usedPath, err = config.LoadConfigWithPriority(*configPath)
	} else {
		usedPath = pathResolver.GetConfigPath(config.FileName)
		appConfig, err = config.InitConfig(usedPath)
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if *strict {
		appConfig.Dict.StrictCounting = true
	}
	if *seedFile != "" {
		appConfig.Dict.SeedFile = *seedFile
	}
	if *wordLimit >= 0 {
		appConfig.Dict.MaxWords = *wordLimit
	}

	opts := []trie.Option{trie.WithLogger(logger.New("trie"))}
	if appConfig.Dict.StrictCounting {
		opts = append(opts, trie.WithStrictCounting())
	}
	dict := trie.New(opts...)

	if appConfig.Dict.SeedFile != "" {
		seedDictionary(dict, pathResolver, appConfig, *noFilter)
	} else {
		log.Warn("No seed file specified, running with empty dict...")
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		cliLimit := appConfig.CLI.DefaultLimit
		if *limit > 0 {
			cliLimit = *limit
		}
		log.Debug("Input info:", "limit", cliLimit, "noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(dict, cliLimit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *noFilter {
		appConfig.Server.EnableFilter = false
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(dict, appConfig)
	showStartupInfo(dict)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// seedDictionary loads the configured word list. Failures are logged and
// leave the dictionary empty.
func seedDictionary(dict *trie.Dictionary, pr *utils.PathResolver, cfg *config.Config, noFilter bool) {
	path, err := pr.FindFile(cfg.Dict.SeedFile)
	if err != nil {
		log.Errorf("Seed file %s not found: %v", cfg.Dict.SeedFile, err)
		return
	}
	stats, err := wordlist.LoadFile(path, dict, wordlist.LoadOptions{
		MaxWords:     cfg.Dict.MaxWords,
		MinFrequency: cfg.Dict.MinFrequency,
		Filter:       !noFilter,
	})
	if err != nil {
		log.Errorf("Failed to load seed file: %v", err)
		return
	}
	log.Debugf("Seeded %d words from %s", stats.Inserted, path)
}

func printVersion() {
	l := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ " + AppName + " ] prefix counts and completions from a counting trie")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo writes basic info about the init process to stderr.
func showStartupInfo(dict *trie.Dictionary) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %s", utils.FormatWithCommas(dict.Size()))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
