package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ashvela/exprc"
	"github.com/chzyer/readline"
)

func main() {
	log.SetFlags(0)
	var (
		debug bool
		out   string
	)
	flag.BoolVar(&debug, "d", false, "trace the infix and postfix token sequences")
	flag.BoolVar(&debug, "debug", false, "trace the infix and postfix token sequences")
	flag.StringVar(&out, "o", "main.ll", "path for the compiled LLVM module")
	flag.Parse()

	expr, err := input()
	if err != nil {
		log.Fatal(err)
	}

	toks, err := exprc.Lex(expr)
	if err != nil {
		log.Fatal(err)
	}
	if debug {
		fmt.Println(toks)
	}
	post, err := exprc.Parse(toks)
	if err != nil {
		log.Fatal(err)
	}
	if debug {
		fmt.Println(post)
	}
	r, err := exprc.Eval[float64](post, exprc.Interpreter{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Result: %.3f\n", r)

	e := exprc.NewEmitter(exprc.SourceName(filepath.Base(out)))
	if err := e.Compile(post); err != nil {
		log.Fatal(err)
	}
	if err := e.WriteFile(out); err != nil {
		log.Fatal(err)
	}
}

// input returns the expression to compile: the joined command-line
// arguments if any, else one line read from the user.
func input() (string, error) {
	if flag.NArg() > 0 {
		return strings.Join(flag.Args(), " "), nil
	}
	fmt.Println("Enter math expression to be parsed:")
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".exprc_history"),
		InterruptPrompt: "^C",
	})
	if err != nil {
		// stdin is not a terminal; take one line as is
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
	defer rl.Close()
	line, err := rl.Readline()
	switch err {
	case nil:
		return line, nil
	case readline.ErrInterrupt, io.EOF:
		return "", nil
	}
	return "", err
}
