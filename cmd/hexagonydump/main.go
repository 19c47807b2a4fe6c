// Command hexagonydump prints the empty hexagonal template for a given
// side length, optionally to a file.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Urethramancer/hexagony/hexgrid"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <side-length> [outputfile]\n", os.Args[0])
		os.Exit(1)
	}

	size, err := strconv.Atoi(os.Args[1])
	if err != nil || size < 0 {
		fmt.Fprintf(os.Stderr, "Invalid side length: %v\n", os.Args[1])
		os.Exit(1)
	}

	var outputFile string
	if len(os.Args) == 3 {
		outputFile = os.Args[2]
	}

	template := hexgrid.Template(size)

	if outputFile == "" {
		fmt.Print(template)
	} else {
		err = os.WriteFile(outputFile, []byte(template), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Template written to %s\n", outputFile)
	}
}
