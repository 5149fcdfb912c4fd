package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
    __                    __            __      __
   / /_  ___  ____  _____/ /_     ____ / /__   / /_     ____
  / __ \/ _ \/ __ \/ ___/ __ \   / __ '/ / _ \ / __ \   / __ \
 / /_/ /  __/ / / / /__/ / / /  / /_/ / /  __// / / /  / / / /
/_.___/\___/_/ /_/\___/_/ /_/   \__, /_/\___//_/ /_/  /_/ /_/
                               /____/
`)

var version = "v0.0.1"

// showBanner prints the CLI banner.
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tgentemplate - structured text template generator\n\n")
}
