package config

import (
	"flag"
	"fmt"
)

// parseCLIFlags parses command-line flags and returns a FlagSource and help flag
func parseCLIFlags() (*FlagSource, bool) {
	flagSource := NewFlagSource()

	// Define CLI flags
	deviceHost := flag.String(FlagDeviceHost, "", HelpDeviceHost)
	devicePort := flag.Int(FlagDevicePort, 0, HelpDevicePort)
	bindAddr := flag.String(FlagBindAddr, "", HelpBindAddr)
	cycleSeconds := flag.Float64(FlagPollCycleSeconds, 0, HelpPollCycleSeconds)
	timeoutSeconds := flag.Float64(FlagPollTimeoutSeconds, 0, HelpPollTimeoutSeconds)
	mode := flag.String(FlagMode, "", HelpMode)
	verbose := flag.Bool(FlagVerbose, true, HelpVerbose)
	synthetic := flag.Bool(FlagSynthetic, false, HelpSynthetic)
	injectZero := flag.Bool(FlagInjectZero, false, HelpInjectZero)
	help := flag.Bool(FlagHelp, false, HelpShowHelp)

	flag.Parse()

	if *help {
		return flagSource, true
	}

	// Store non-zero/non-empty values in flag source
	if *deviceHost != "" {
		flagSource.Set(KeyDeviceHost, *deviceHost)
	}
	if *devicePort != 0 {
		flagSource.Set(KeyDevicePort, *devicePort)
	}
	if *bindAddr != "" {
		flagSource.Set(KeyBindAddr, *bindAddr)
	}
	if *cycleSeconds != 0 {
		flagSource.Set(KeyPollCycleSeconds, *cycleSeconds)
	}
	if *timeoutSeconds != 0 {
		flagSource.Set(KeyPollTimeoutSeconds, *timeoutSeconds)
	}
	if *mode != "" {
		flagSource.Set(KeyMode, *mode)
	}

	// Booleans carry meaning either way (--verbose=false must override an
	// env VERBOSE=true), so record only the ones actually set.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case FlagVerbose:
			flagSource.Set(KeyVerbose, *verbose)
		case FlagSynthetic:
			flagSource.Set(KeySynthetic, *synthetic)
		case FlagInjectZero:
			flagSource.Set(KeyInjectZero, *injectZero)
		}
	})

	return flagSource, false
}

// printUsage prints the usage message
func printUsage() {
	fmt.Printf("%s - %s\n", AppName, AppDescription)
	fmt.Println()
	fmt.Printf("%s\n", HelpUsage)
	fmt.Printf("  %s\n", UsageFormat)
	fmt.Println()
	fmt.Printf("%s\n", HelpOptions)
	fmt.Printf("  --%s string      %s (default: %s)\n", FlagDeviceHost, HelpDeviceHost, DefaultDeviceHost)
	fmt.Printf("  --%s int         %s (default: %d)\n", FlagDevicePort, HelpDevicePort, DefaultDevicePort)
	fmt.Printf("  --%s string        %s (default: %s)\n", FlagBindAddr, HelpBindAddr, DefaultBindAddr)
	fmt.Printf("  --%s float    %s (default: %.4f)\n", FlagPollCycleSeconds, HelpPollCycleSeconds, float64(DefaultPollCycleSeconds))
	fmt.Printf("  --%s float  %s (default: %.1f)\n", FlagPollTimeoutSeconds, HelpPollTimeoutSeconds, float64(DefaultPollTimeoutSeconds))
	fmt.Printf("  --%s string             %s (default: %s)\n", FlagMode, HelpMode, DefaultMode)
	fmt.Printf("  --%s                 %s (default: true)\n", FlagVerbose, HelpVerbose)
	fmt.Printf("  --%s               %s\n", FlagSynthetic, HelpSynthetic)
	fmt.Printf("  --%s             %s\n", FlagInjectZero, HelpInjectZero)
	fmt.Printf("  --%s                    %s\n", FlagHelp, HelpShowHelp)
	fmt.Println()
	fmt.Printf("%s\n", HelpEnvironmentVars)
	fmt.Printf("  %-24s %s\n", KeyDeviceHost, HelpDeviceHost)
	fmt.Printf("  %-24s %s\n", KeyDevicePort, HelpDevicePort)
	fmt.Printf("  %-24s %s\n", KeyBindAddr, HelpBindAddr)
	fmt.Printf("  %-24s %s\n", KeyPollCycleSeconds, HelpPollCycleSeconds)
	fmt.Printf("  %-24s %s\n", KeyPollTimeoutSeconds, HelpPollTimeoutSeconds)
	fmt.Printf("  %-24s %s\n", KeyMode, HelpMode)
	fmt.Printf("  %-24s %s\n", KeyVerbose, HelpVerbose)
	fmt.Printf("  %-24s %s\n", KeySynthetic, HelpSynthetic)
	fmt.Printf("  %-24s %s\n", KeyInjectZero, HelpInjectZero)
	fmt.Println()
	fmt.Printf("%s\n", HelpNote)
}
