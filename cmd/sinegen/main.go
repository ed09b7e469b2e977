package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/neurlang/spectshow/scp"
	"github.com/neurlang/spectshow/tone"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("sinegen", flag.ContinueOnError)
	fs.SetOutput(stdout)
	dir := fs.String("dir", ".", "output directory")
	duration := fs.Duration("duration", 100*time.Millisecond, "length of each file")
	gate := fs.Duration("gate", 100*time.Millisecond, "silence each tone after this time, 0 disables")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(stdout, "Usage: sinegen [-dir .] [-duration 100ms] [-gate 100ms]")
		return 1
	}

	// One list per sample rate, named after the rate in kHz.
	lists := make(map[int][]string)
	for _, t := range tone.Grid(*duration, *gate) {
		name := t.Name()
		if err := t.Save(filepath.Join(*dir, name)); err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Generated: %s\n", name)
		lists[t.SampleRate] = append(lists[t.SampleRate], name)
	}

	var written []string
	for _, rate := range tone.Rates {
		name := fmt.Sprintf("%dk.scp", rate/1000)
		if err := scp.Save(filepath.Join(*dir, name), lists[rate]); err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return 1
		}
		written = append(written, name)
	}
	fmt.Fprintf(stdout, "SCP files generated: %s and %s\n", written[0], written[1])
	return 0
}
