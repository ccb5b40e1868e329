package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	arbor "github.com/daios-ai/arbor"
)

const (
	appName     = "arbor"
	historyFile = ".arbor_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var banner = fmt.Sprintf("Arbor %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", arbor.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(arbor.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Arbor %s (built %s)

Usage:
  %s run [-yaml] <file|->    Evaluate one expression document (use - for stdin).
  %s repl                    Start the REPL.
  %s version                 Print the compiled version.

`, arbor.Version, arbor.BuildDate, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	asYAML := fs.Bool("yaml", false, "decode the document as YAML instead of JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run [-yaml] <file|->\n", appName)
		return 2
	}

	path := fs.Arg(0)
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}

	decode := arbor.DecodeJSON
	if *asYAML || strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		decode = arbor.DecodeYAML
	}
	expr, err := decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}

	ip := arbor.NewInterpreter()
	v, err := ip.Eval(expr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	fmt.Println(arbor.FormatValue(v))
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := arbor.NewInterpreter()

	for {
		doc, ok := readDocument(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(doc)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		expr, err := arbor.DecodeJSON([]byte(doc))
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		v, err := ip.EvalPersistent(expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			continue
		}
		fmt.Println(arbor.FormatValue(v))
		ln.AppendHistory(strings.ReplaceAll(doc, "\n", " "))
	}
}

// readDocument accumulates lines until the buffer forms a complete JSON
// document (or an error other than truncation shows up — that is reported by
// the decode step so the user sees a real message).
func readDocument(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		doc := strings.TrimSpace(b.String())
		if doc == "" || strings.HasPrefix(doc, ":") {
			return doc, true
		}
		if _, err := arbor.DecodeJSON([]byte(doc)); err == nil || !isIncomplete(err) {
			return doc, true
		}
	}
}

func isIncomplete(err error) bool {
	return err != nil && strings.Contains(err.Error(), "unexpected end of JSON input")
}
