// Neon Boroughs is a turn-based city life simulator.
// Usage: neonboroughs [--version] [--plain] [--seed <n>] [--data <dir>] [--script <file>]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nathoo/neonboroughs/cli"
	"github.com/nathoo/neonboroughs/engine"
	"github.com/nathoo/neonboroughs/engine/character"
	"github.com/nathoo/neonboroughs/loader"
	"github.com/nathoo/neonboroughs/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Optional .env with NEONBOROUGHS_DATA / NEONBOROUGHS_SEED /
	// NEONBOROUGHS_SAVES overrides.
	_ = godotenv.Load()

	plain := false
	dataDir := os.Getenv("NEONBOROUGHS_DATA")
	var seed int64
	seedSet := false
	var scriptFile string

	if env := os.Getenv("NEONBOROUGHS_SEED"); env != "" {
		if n, err := strconv.ParseInt(env, 10, 64); err == nil {
			seed = n
			seedSet = true
		}
	}

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("neonboroughs %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--seed":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--seed requires a number\n")
				os.Exit(1)
			}
			i++
			n, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "--seed: %v\n", err)
				os.Exit(1)
			}
			seed = n
			seedSet = true
		case "--data":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--data requires a directory\n")
				os.Exit(1)
			}
			i++
			dataDir = args[i]
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", args[i])
			fmt.Fprintf(os.Stderr, "Usage: neonboroughs [--version] [--plain] [--seed <n>] [--data <dir>] [--script <file>]\n")
			os.Exit(1)
		}
	}

	if dataDir == "" {
		dataDir = "data"
	}
	if !seedSet {
		seed = time.Now().UnixNano()
	}

	// Load and compile Lua content. Bad files degrade to built-in
	// defaults with a warning rather than aborting.
	data, warnings := loader.Load(dataDir)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}

	session := engine.NewSession(data, character.DefaultProfile(), seed)

	// Script mode: read commands from a file, force plain, echo input.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		c := cli.New(session)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		c := cli.New(session)
		c.Run()
		return
	}

	if err := tui.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
