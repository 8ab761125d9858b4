// Package config loads lazyvim.toml.
//
// Values are layered with koanf: embedded defaults, then the user file,
// then LAZYSETUP_* environment variables. The user file is required; a
// missing or unparsable file stops the run before anything is cloned.
//
//	starter = "https://github.com/LazyVim/starter"
//	plugins = [
//	  "https://github.com/folke/lazy.nvim.git",
//	]
package config
