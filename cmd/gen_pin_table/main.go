package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

// Enumerates every (cathode, anode) wire pair in scan order by brute force,
// independently of the closed-form mapping the matrix package uses, so the
// table can be used to check that mapping.
func main() {
	var (
		out      string
		wires    int
		elements int
	)
	flag.IntVar(&wires, "wires", 11, "Number of matrix wires")
	flag.IntVar(&elements, "elements", 105, "Number of wired elements")
	flag.StringVar(&out, "out", "", "Output file (default chaser/matrix/testdata/pins_<wires>x<elements>.txt)")
	flag.Parse()

	if wires < 2 || wires*(wires-1) < elements {
		fmt.Fprintf(os.Stderr, "error: %d wires cannot address %d elements\n", wires, elements)
		os.Exit(1)
	}
	if out == "" {
		out = filepath.Join("chaser", "matrix", "testdata", fmt.Sprintf("pins_%dx%d.txt", wires, elements))
	}

	var buf bytes.Buffer
	buf.WriteString("# Reference pin table, generated by cmd/gen_pin_table. DO NOT EDIT.\n")
	fmt.Fprintf(&buf, "# wires=%d elements=%d\n", wires, elements)
	buf.WriteString("# index cathode anode\n")

	index := 0
	for cathode := 0; cathode < wires && index < elements; cathode++ {
		for anode := 0; anode < wires && index < elements; anode++ {
			if anode == cathode {
				continue
			}
			fmt.Fprintf(&buf, "%d %d %d\n", index, cathode, anode)
			index++
		}
	}

	if err := os.WriteFile(out, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", out, err)
		os.Exit(1)
	}
}
