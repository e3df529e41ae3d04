// Command objpath-doctor diagnoses engine factory discovery. It probes every
// discovery source for a key, reports which one wins, and can attempt to
// load the resolved implementation from the process registry.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/objpath/objpath/errors"
	"github.com/objpath/objpath/factory"
)

func main() {
	var (
		key         = flag.String("key", factory.FactoryNameProperty, "Discovery key to resolve")
		fallback    = flag.String("fallback", factory.DefaultFactoryName, "Identifier used when no source matches")
		home        = flag.String("home", "", "Installation root probed for lib/objpath.properties (default: executable's install root)")
		dir         = flag.String("dir", ".", "Directory scanned for META-INF/services resources")
		attempt     = flag.Bool("load", false, "Attempt to load the resolved factory")
		debug       = flag.Bool("debug", false, "Trace resolution to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if err := runInteractive(*home, *dir); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*key, *fallback, *home, *dir, *attempt, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newResolver(home, dir string, debug bool) *factory.Resolver {
	return factory.NewResolver(&factory.Config{
		InstallDir: home,
		SearchPath: []fs.FS{os.DirFS(dir)},
		Debug:      debug,
	})
}

func run(key, fallback, home, dir string, attempt, debug bool) error {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	r := newResolver(home, dir, debug)

	fmt.Printf("Key: %s (env %s)\n", key, factory.EnvKey(key))
	fmt.Println()

	for _, pr := range r.Probe(key, fallback) {
		fmt.Println(renderProbe(pr, styled))
	}

	resolved := r.Resolve(key, fallback)
	fmt.Println()
	if styled {
		fmt.Printf("Resolved: %s\n", resultStyle.Render(resolved))
	} else {
		fmt.Printf("Resolved: %s\n", resolved)
	}

	names := factory.Names()
	fmt.Printf("Registered constructors: %d\n", len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}

	if attempt {
		f, err := factory.Load(resolved)
		switch {
		case errors.IsConfiguration(err):
			fmt.Printf("Load: configuration error\n  %v\n", err)
		case err != nil:
			return err
		default:
			fmt.Printf("Load: ok (%T)\n", f)
		}
	}

	return nil
}

func renderProbe(pr factory.ProbeResult, styled bool) string {
	mark := "-"
	detail := "not found"
	switch {
	case pr.Found:
		mark = "+"
		detail = pr.Value
	case pr.Err != nil:
		detail = fmt.Sprintf("not found (%v)", pr.Err)
	}

	line := fmt.Sprintf("  %s %-10s %s", mark, pr.Source, detail)
	if !styled {
		return line
	}
	if pr.Found {
		return foundStyle.Render(line)
	}
	return missStyle.Render(line)
}
