package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/evermath/symexpr"
)

func main() {
	log.SetFlags(0)
	var (
		inname, mode string
		given        [][2]string
		echo         bool
	)
	addgiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.Func("given", "name=value variable definition (any number of times)", addgiven)
	flag.StringVar(&mode, "mode", "radians", "angle unit, radians or degrees")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Parse()

	var opts []symexpr.EvalOption
	switch mode {
	case "radians":
	case "degrees":
		opts = append(opts, symexpr.WithMode(symexpr.Degrees))
	default:
		log.Fatalf("mode must be radians or degrees, not %q", mode)
	}
	for _, d := range given {
		v, err := symexpr.Evaluate(d[1], opts...)
		if err != nil {
			log.Fatalf("setting %s: %v", d[0], err)
		}
		opts = append(opts, symexpr.SetVar(d[0], v))
	}

	var srcs []string
	if flag.NArg() > 0 {
		srcs = flag.Args()
	} else {
		f := os.Stdin
		if inname != "" && inname != "-" {
			in, err := os.Open(inname)
			if err != nil {
				log.Fatal(err)
			}
			defer in.Close()
			f = in
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if s := strings.TrimSpace(sc.Text()); s != "" {
				srcs = append(srcs, s)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}

	for _, src := range srcs {
		a, err := symexpr.Parse(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := symexpr.Eval(a, opts...)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}
}
