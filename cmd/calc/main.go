package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	calc "github.com/Kiarash-sabbaghii-giit/calculator"
	"github.com/Kiarash-sabbaghii-giit/calculator/pkg/logging"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, logname string
		echo, names           bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.StringVar(&logname, "log", "", "JSON log file for failed evaluations")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&names, "names", false, "list the names usable in expressions and exit")
	flag.Parse()

	logging.InitLogger(logging.LoggerConfig{
		LogToFile: logname != "",
		Filename:  logname,
		MaxSize:   10,
		LogLevel:  "info",
	})

	if names {
		for _, name := range calc.Default().Names() {
			fmt.Println(name)
		}
		return
	}

	var ins []string
	if inname != "" || flag.NArg() == 0 {
		lines, err := inlines(inname)
		if err != nil {
			log.Fatal(err)
		}
		ins = append(ins, lines...)
	}
	ins = append(ins, flag.Args()...)

	verb += "\n"
	bad := 0
	for _, in := range ins {
		if strings.TrimSpace(in) == "" {
			continue
		}
		if echo {
			a, err := calc.Parse(strings.NewReader(calc.Normalize(in)))
			if err == nil {
				fmt.Printf("%v : ", a)
			}
		}
		r, err := calc.Evaluate(in)
		if err != nil {
			slog.Error("evaluation failed", "input", in, "error", err.Error())
			fmt.Println(err)
			bad++
			continue
		}
		fmt.Printf(verb, r)
	}
	if bad > 0 {
		os.Exit(1)
	}
}

// inlines reads expressions from the named file, or stdin for "" or "-".
func inlines(inname string) ([]string, error) {
	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	var lines []string
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		lines = append(lines, scan.Text())
	}
	return lines, scan.Err()
}
