package brewdump

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Dump installed Homebrew casks as Brewfile entries"
	MsgCasksShort   = "List installed casks"
	MsgDumpShort    = "Print Brewfile cask entries"
	MsgDepsShort    = "List formulae the given casks depend on"
	MsgConfigShort  = "Print the effective configuration"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/brewdump/config.toml)"
	MsgFlagFormat   = "Output format: text, json or yaml (overrides output.format)"
	MsgFlagRequired = "Casks other packages depend on; listed in their own section"

	// Status messages
	MsgBrewMissing    = "warning: %s not found on PATH, no casks will be listed\n"
	MsgVersionFormat  = "brewdump version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigFromFile = "# loaded from %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

// Long messages
const (
	MsgRootLong = `brewdump asks Homebrew which casks are installed and prints them as
Brewfile entries, keeping casks that other packages depend on in their own
section. It can also resolve the formulae a set of casks depends on.`

	MsgDumpLong = `Print a cask line for every installed cask.

Casks named with --required are printed first, followed by the remaining
casks, both in the order Homebrew reports them.`

	MsgDumpExample = `  brewdump dump
  brewdump dump --required xquartz
  brewdump dump --format json`

	MsgDepsExample = `  brewdump deps wireshark
  brewdump deps docker visual-studio-code --format yaml`
)
