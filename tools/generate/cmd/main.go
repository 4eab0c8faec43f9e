// Regenerates the embedded release catalog CSV from upstream sources.
package main

import (
	"fmt"
	"os"

	"github.com/ivoronin/mobilevet/tools/generate"
)

const outputPath = "internal/catalog/data/releases.csv"

func main() {
	generators := []generate.ReleaseGenerator{
		generate.AppleGenerator{},
		generate.AndroidGenerator{},
	}

	var entries []generate.Entry
	for _, g := range generators {
		got, err := g.Generate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %v\n", g.Name(), err)
			os.Exit(1)
		}
		fmt.Printf("%s: %d releases\n", g.Name(), len(got))
		entries = append(entries, got...)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = f.Close() }()

	if err := generate.WriteCSV(f, entries); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s\n", outputPath)
}
