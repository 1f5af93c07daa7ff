// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program ftd interprets a single .ftd document, displays errors, and
// prints either the resulting bag or instruction tree.
//
// Usage: ftd [--path DIR] [--format FORMAT] [FILE]
//
// With no FILE, the document is read from standard input.
//
// FORMAT, which defaults to "tree", selects between "tree" (an indented
// dump of the instruction list) and "bag" (a YAML dump of the bag).
//
// THIS PROGRAM EXERCISES THE INTERPRETER; IT IS NOT A RENDERER.
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/ftd-lang/ftd/pkg/ftd"
	"github.com/ftd-lang/ftd/pkg/indent"
	"github.com/pborman/getopt"
)

func main() {
	var format string
	var paths []string
	var help bool

	getopt.ListVarLong(&paths, "path", 0, "comma separated list of directories to add to the module search path", "DIR[,DIR...]")
	getopt.StringVarLong(&format, "format", 0, "output format: tree, bag", "FORMAT")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("FILE")

	if err := getopt.Getopt(func(getopt.Option) bool { return true }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	for _, p := range paths {
		ftd.AddPath(strings.Split(p, ",")...)
	}

	if format == "" {
		format = "tree"
	}
	if format != "tree" && format != "bag" {
		fmt.Fprintf(os.Stderr, "%s: invalid format, want tree or bag\n", format)
		os.Exit(1)
	}

	files := getopt.Args()
	var name, source string
	if len(files) == 0 {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		name, source = "<STDIN>", string(data)
	} else {
		data, err := ioutil.ReadFile(files[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		name, source = files[0], string(data)
	}

	lib := ftd.NewFileLibrary(nil)
	ip, err := ftd.NewInterpreter(lib)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	instructions, err := ip.Interpret(name, source)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch format {
	case "bag":
		out, err := ftd.MarshalYAML(ip.Bag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
	case "tree":
		w := indent.NewWriter(os.Stdout, "  ")
		for _, instr := range instructions {
			fmt.Fprintf(w, "%s\n", instr.Kind)
		}
	}
}
