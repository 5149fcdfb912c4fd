package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	template "github.com/dhentchel/bench"
	"github.com/dhentchel/bench/internal/runner"
	"github.com/projectdiscovery/gologger"
)

func main() {
	opts := runner.ParseFlags()

	tree, err := template.ParseFile(opts.Template)
	if err != nil {
		gologger.Fatal().Msgf("failed to compile %v got: %v", opts.Template, err)
	}
	if err := tree.SetVariables(opts.Vars); err != nil {
		gologger.Fatal().Msgf("failed to apply vars=%v got: %v", opts.Vars, err)
	}

	for i := 0; i < opts.Num; i++ {
		rootContext := opts.Start + i
		out := outputPathFor(opts.Output, opts.Num, i)
		w, closeFn := openOutput(out)

		if _, err := tree.Generate(rootContext, w); err != nil {
			gologger.Error().Msgf("generate failed for context %d: %v", rootContext, err)
		}
		closeFn()
	}

	gologger.Info().Msgf("Generated %d output(s) from %v", opts.Num, opts.Template)
}

// outputPathFor: with num==1 the path is used verbatim (or stdout if
// empty); with num>1 a zero-padded index is inserted before the final
// extension.
func outputPathFor(path string, num, index int) string {
	if path == "" {
		return ""
	}
	if num <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	width := len(strconv.Itoa(num - 1))
	return fmt.Sprintf("%s_%0*d%s", base, width, index, ext)
}

func openOutput(path string) (*os.File, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		gologger.Fatal().Msgf("failed to open output file %v got %v", path, err)
	}
	return f, func() { f.Close() }
}
