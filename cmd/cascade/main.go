package main

import (
	"fmt"
	"io"
	"os"

	"github.com/neurlang/spectshow/cascade"
	"github.com/neurlang/spectshow/scp"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, "Usage: cascade <scp_file> <output_file>")
		return 1
	}
	var list, output = args[0], args[1]

	inputs, err := scp.Load(list)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	rep, err := cascade.Merge(inputs, output)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Merged WAV file created: %s\n", output)
	if len(rep.Skipped) > 0 {
		fmt.Fprintf(stdout, "Skipped %d of %d inputs\n", len(rep.Skipped), len(inputs))
	}
	return 0
}
