package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	gofigure "github.com/exomath/GoFigure"
)

func main() {
	out := flag.String("o", "schema.png", "output file (.png or .svg)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: renderschema [-o out.png] schema.json")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "read: %v\n", err)
		os.Exit(1)
	}

	r := gofigure.NewRenderer(gofigure.DefaultRenderOptions())
	fig := r.RenderFigure(data)
	for _, issue := range fig.Issues {
		fmt.Fprintf(os.Stderr, "warning: %s\n", issue)
	}

	output := fig.SVG
	if !strings.HasSuffix(*out, ".svg") {
		output, err = r.Rasterize(fig.SVG)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rasterize: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.WriteFile(*out, output, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %s to %s\n", flag.Arg(0), *out)
}
