package exprc_test

import (
	"fmt"
	"strings"

	"github.com/ashvela/exprc"
)

func Example() {
	const src = "-1 + 5 * (6 + 2) - 12 / 4 + 2**4 + pi - e * 1.01e-1 - (1 << 5) + -hypot(1, -2, 3) * max(1, 2, min(4, 5))"
	r, err := exprc.EvalString(src)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Result: %.3f\n", r)
	// Output:
	// Result: 7.900
}

func ExampleLex() {
	toks, _ := exprc.Lex("1 + sin(2) * 3")
	fmt.Println(toks)
	// Output:
	// 1.000 + sin ( 2.000 ) * 3.000
}

func ExampleParse() {
	toks, _ := exprc.Lex("1 + sin(2) * 3")
	post, _ := exprc.Parse(toks)
	fmt.Println(post)
	// Output:
	// 1.000 2.000 sin 1.000 3.000 * +
}

func ExampleEvalString() {
	r, _ := exprc.EvalString("hypot(3, 4) + 2 ** 3")
	fmt.Printf("%.3f\n", r)
	// Output:
	// 13.000
}

func ExampleCompileString() {
	m, _ := exprc.CompileString("1 + 2", exprc.SourceName("demo.ll"))
	fmt.Println(strings.SplitN(m.String(), "\n", 2)[0])
	// Output:
	// source_filename = "demo.ll"
}
