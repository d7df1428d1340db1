// Command ttlc is a standalone CLI/REPL over the TTL core, useful for
// exercising annotations against a fixture host registry without embedding
// the core in a full compiler.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/ttl-lang/ttlc/internal/host"
	"github.com/ttl-lang/ttlc/internal/ttl"
	"github.com/ttl-lang/ttlc/internal/ttlsrc"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

func main() {
	registryFlag := flag.String("registry", "", "path to a host registry fixture (YAML)")
	flag.Parse()

	if flag.NArg() == 0 {
		printHelp()
		os.Exit(1)
	}

	env, err := loadEnv(*registryFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "validate":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\nUsage: ttlc validate <file>\n", red("Error"))
			os.Exit(1)
		}
		validateFile(flag.Arg(1))
	case "eval":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\nUsage: ttlc [-registry <fixture.yaml>] eval <file>\n", red("Error"))
			os.Exit(1)
		}
		evalFile(flag.Arg(1), env)
	case "repl":
		runREPL(env)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), flag.Arg(0))
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(bold("ttlc - Type Transformation Language tool"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  ttlc validate <file>")
	fmt.Println("  ttlc [-registry <fixture.yaml>] eval <file>")
	fmt.Println("  ttlc [-registry <fixture.yaml>] repl")
}

func loadEnv(registryPath string) (host.Env, error) {
	if registryPath == "" {
		return host.NewEnv(host.NewRegistry(), host.NewScope()), nil
	}
	reg, scope, err := host.LoadFixture(registryPath)
	if err != nil {
		return nil, fmt.Errorf("load registry fixture: %w", err)
	}
	return host.NewEnv(reg, scope), nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func validateFile(path string) {
	src, err := readFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	_, w, ok := ttl.ParseAndValidate(ttlsrc.Parse, src, path, 1, 1)
	printWarnings(w)
	if ok {
		fmt.Println(green("valid"))
		return
	}
	fmt.Println(red("invalid"))
	os.Exit(1)
}

func evalFile(path string, env host.Env) {
	src, err := readFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		os.Exit(1)
	}
	term, w, ok := ttl.ParseAndValidate(ttlsrc.Parse, src, path, 1, 1)
	printWarnings(w)
	if !ok {
		fmt.Println(red("invalid"))
		os.Exit(1)
	}
	ew := &ttl.Warnings{}
	result := ttl.Eval(term, env, ttl.NewTypeVars(), ttl.NewNameVars(), ew)
	printWarnings(ew)
	fmt.Printf("%s %s\n", bold("=>"), result.String())
}

func runREPL(env host.Env) {
	fmt.Printf("%s - Type Transformation Language\n", bold("ttlc"))
	fmt.Println("Enter a TTL expression. Ctrl-D to exit.")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("ttl> ")
		if err != nil {
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Println()
				return
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		term, w, ok := ttl.ParseAndValidate(ttlsrc.Parse, input, "<repl>", 1, 1)
		printWarnings(w)
		if !ok {
			fmt.Println(red("invalid"))
			continue
		}
		ew := &ttl.Warnings{}
		result := ttl.Eval(term, env, ttl.NewTypeVars(), ttl.NewNameVars(), ew)
		printWarnings(ew)
		fmt.Printf("%s %s\n", bold("=>"), result.String())
	}
}

func printWarnings(w *ttl.Warnings) {
	for _, item := range w.Items() {
		fmt.Fprintln(os.Stderr, yellow(item.Message()))
	}
}
