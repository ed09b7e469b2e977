package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/neurlang/spectshow"
	"github.com/neurlang/spectshow/render"
)

const usage = "Usage: spectshow [flags] <in_wav> <in_txt> <out_pdf>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	var page = render.NewPage()

	fs := flag.NewFlagSet("spectshow", flag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintln(stdout, usage)
		fs.PrintDefaults()
	}
	axes := fs.String("axes", page.Axes.String(), "axis labels: physical or index")
	fs.DurationVar(&page.FrameInterval, "frame-interval", page.FrameInterval, "time between spectrogram rows")
	fs.IntVar(&page.DFTSize, "dft", page.DFTSize, "DFT size for bin spacing, 0 spreads bins up to Nyquist")
	fs.BoolVar(&page.ColorBar, "colorbar", page.ColorBar, "draw a color legend under the spectrogram")
	reproducible := fs.Bool("reproducible", false, "pin document timestamps to the Unix epoch")

	// -h prints the usage through fs.Usage and, like any other call
	// without three paths, exits 1.
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 3 {
		fmt.Fprintln(stdout, usage)
		fmt.Fprintf(stdout, "Error: %v\n", &spectshow.UsageError{Want: 3, Got: fs.NArg()})
		return 1
	}

	var err error
	if page.Axes, err = render.ParseAxes(*axes); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	if *reproducible {
		page.Timestamp = time.Unix(0, 0)
	}

	var inWav, inTxt, outPdf = fs.Arg(0), fs.Arg(1), fs.Arg(2)

	wave, err := spectshow.LoadWaveform(inWav)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	matrix, err := spectshow.LoadMatrix(inTxt)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}
	if err := page.Render(wave, matrix, outPdf); err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Generated %s: %s\n", strings.ToUpper(render.Format(outPdf)), outPdf)
	return 0
}
