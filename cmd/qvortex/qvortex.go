// Command qvortex prints qvortex digests of files, reading standard input
// when no files are given.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/qvortex/qvortex"
)

func main() {
	var (
		key     = flag.String("key", "", "the digest key, empty for the unkeyed table")
		version = flag.Bool("version", false, "print the algorithm version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println(qvortex.Version())
		return
	}

	log := slog.New(slog.Default().Handler())
	h := qvortex.New([]byte(*key))

	names := flag.Args()
	if len(names) == 0 {
		names = []string{"-"}
	}

	code := 0
	for _, name := range names {
		in := os.Stdin
		if name != "-" {
			f, err := os.Open(name)
			if err != nil {
				log.Error("failed to open file", "name", name, "err", err)
				code = 1
				continue
			}
			in = f
		}

		h.Reset()
		_, err := io.Copy(h, in)
		if in != os.Stdin {
			_ = in.Close()
		}
		if err != nil {
			log.Error("failed to read file", "name", name, "err", err)
			code = 1
			continue
		}

		fmt.Printf("%x  %s\n", h.Sum(nil), name)
	}

	os.Exit(code)
}
