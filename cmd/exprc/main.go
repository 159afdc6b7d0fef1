package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"exprc/pkg/compiler"
)

var (
	srcFile = flag.String("f", "", "read the expression from a file")
	trace   = flag.Bool("trace", false, "print the tokens and the AST stage by stage")
)

func main() {
	flag.Parse()

	switch {
	case *srcFile != "":
		data, err := os.ReadFile(*srcFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		if !run(string(data)) {
			os.Exit(1)
		}
	case flag.NArg() > 0:
		if !run(strings.Join(flag.Args(), " ")) {
			os.Exit(1)
		}
	default:
		interactive()
	}
}

// run compiles one expression and prints the IR followed by the result.
// It reports whether the compilation succeeded; stage errors have already
// been written to stderr by the compiler.
func run(src string) bool {
	if *trace {
		return runTrace(src)
	}
	res, err := compiler.Compile(src)
	if err != nil {
		return false
	}
	fmt.Print(res.IR)
	fmt.Println(res.Value)
	return true
}

// runTrace prints each stage the way the compiler sees it.
func runTrace(src string) bool {
	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		return false
	}
	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	fmt.Println()

	root, err := compiler.Parse(tokens, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		return false
	}
	fmt.Println("AST")
	fmt.Println(" ", root)
	fmt.Println()

	value, ir, err := compiler.Eval(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, "eval error:", err)
		return false
	}
	fmt.Println("IR")
	fmt.Print(ir)
	fmt.Println()
	fmt.Println("Result:", value)
	return true
}

// interactive reads expressions from stdin, one per line. The prompt is
// shown only when stdin is a terminal, so piped input stays clean.
func interactive() {
	tty := isatty.IsTerminal(os.Stdin.Fd())
	sc := bufio.NewScanner(os.Stdin)
	for {
		if tty {
			fmt.Print("> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		run(line)
	}
}
