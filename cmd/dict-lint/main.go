// Command dict-lint sanitizes a FileRef dictionary file against a
// blocklist of disallowed substrings before it's trusted as an
// enumeration source.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/konelav/reglan/dictlint"
)

func main() {
	var path, blocklist string
	flag.StringVar(&path, "file", "", "path to the dictionary file to lint")
	flag.StringVar(&blocklist, "blocklist", "", "comma-separated substrings to flag (default: NUL, tab, CR)")
	flag.Parse()

	if path == "" {
		fmt.Fprintf(os.Stderr, "usage: dict-lint -file <path> [-blocklist a,b,c]\n")
		os.Exit(1)
	}

	var needles []string
	if blocklist != "" {
		needles = strings.Split(blocklist, ",")
	}

	violations, err := dictlint.Lint(path, needles)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dict-lint: %v\n", err)
		os.Exit(1)
	}

	if len(violations) == 0 {
		fmt.Printf("%s: clean\n", path)
		return
	}

	for _, v := range violations {
		fmt.Println(v.Error())
	}
	os.Exit(1)
}
