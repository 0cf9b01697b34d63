package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/alcamie101/luasdl"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runScript(args, false)
	case "dev":
		err = runScript(args, true)
	case "version", "-v", "--version":
		fmt.Printf("luasdl version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "luasdl: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`luasdl - run Lua scripts against SDL 1.2

Usage:
  luasdl run [-config luasdl.toml] [script.lua]
  luasdl dev [-config luasdl.toml] [script.lua]   (re-run on change)
  luasdl version
  luasdl help

With no script argument, the entry from the config's [script] section
is used.`)
}

func loadConfig(path string) (luasdl.Config, error) {
	if path != "" {
		return luasdl.LoadConfig(path)
	}
	// Pick up luasdl.toml from the working directory when present.
	if _, err := os.Stat("luasdl.toml"); err == nil {
		return luasdl.LoadConfig("luasdl.toml")
	}
	return luasdl.DefaultConfig(), nil
}

func runScript(args []string, watch bool) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "path to luasdl.toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	script := cfg.Script.Entry
	if fs.NArg() > 0 {
		script = fs.Arg(0)
	}
	if script == "" {
		return fmt.Errorf("no script given and no [script] entry configured")
	}

	if !watch {
		host, err := luasdl.New(cfg)
		if err != nil {
			return err
		}
		defer host.Close()
		return host.RunFile(script)
	}
	return watchAndRun(cfg, script)
}

// watchAndRun runs the script once, then re-runs it whenever it
// changes on disk. The parent directory is watched because editors
// commonly replace files instead of writing them in place.
func watchAndRun(cfg luasdl.Config, script string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	scriptAbs, err := filepath.Abs(script)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(scriptAbs)); err != nil {
		return err
	}

	run := func() {
		host, err := luasdl.New(cfg)
		if err != nil {
			log.Printf("dev: %v", err)
			return
		}
		defer host.Close()
		if err := host.RunFile(script); err != nil {
			log.Printf("dev: %v", err)
		}
	}

	run()
	log.Printf("dev: watching %s", script)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != scriptAbs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				log.Printf("dev: %s changed, re-running", script)
				run()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("dev: watch error: %v", err)
		}
	}
}
