package runner

import (
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// Options holds the gentemplate CLI's parsed flags.
type Options struct {
	Template string // path to the template file (required)
	Vars     string // "none" | "{k=v,...}" | properties file path
	Output   string // output path; "" means stdout
	Num      int    // number of files/streams to generate
	Start    int    // starting root context value
	Format   string // "text" (default) reserved for future output modes
	Config   string // CLI config file path

	Verbose bool
	Silent  bool
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Statistical structured-text template generator.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Template, "template", "t", "", "template file to compile (required)"),
		flagSet.StringVarP(&opts.Vars, "vars", "va", "none", "seed variables: 'none', '{k=v,...}', or a properties file"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "out", "o", "", "output path (default stdout); with num>1 a zero-padded index is inserted before the extension"),
		flagSet.IntVarP(&opts.Num, "num", "n", 1, "number of outputs to generate"),
		flagSet.IntVarP(&opts.Start, "start", "s", 0, "starting root context value"),
		flagSet.StringVarP(&opts.Format, "format", "f", "text", "output format"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display gentemplate version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `gentemplate cli config file (read only when given)`),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if opts.Template == "" {
		gologger.Fatal().Msgf("gentemplate: no template= given")
	}
	if opts.Num < 1 {
		opts.Num = 1
	}

	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
