package lazysetup

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install and update a LazyVim setup from lazyvim.toml"
	MsgInstallShort    = "Clone the starter and all plugins"
	MsgInstallLong     = "Install removes any existing copy of each repository and clones it again with depth 1. Failed clones are retried with backoff."
	MsgUpdateShort     = "Re-clone the starter and all plugins"
	MsgUpdateLong      = "Update is a full re-clone of every repository, exactly like install."
	MsgDeleteShort     = "Delete the Neovim config, data, cache and state directories"
	MsgDeleteLong      = "Delete removes every Neovim directory lazysetup knows about. Missing directories are skipped. There is no confirmation prompt."
	MsgListShort       = "Show what would be installed where"
	MsgInitShort       = "Write a starter lazyvim.toml"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v DEBUG, -vv TRACE); LAZYSETUP_LOG overrides"
	MsgFlagConfig  = "Path to lazyvim.toml (default: ./lazyvim.toml, then ../lazyvim.toml)"
	MsgFlagFormat  = "Output format: auto, term or text"
	MsgFlagForce   = "Overwrite an existing file"

	// Status messages
	MsgFinished      = "Finished"
	MsgConfigWritten = "Wrote %s\n"
	MsgVersionFormat = "lazysetup version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
