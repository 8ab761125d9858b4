// Package paths resolves the well-known editor directories lazysetup
// installs into and deletes.
//
// The directories follow Neovim's stdpath() conventions and are resolved
// once at startup through the XDG Base Directory variables (adrg/xdg).
// NVIM_APPNAME renames the leaf directory the same way Neovim does.
// Nothing here is read from lazyvim.toml: the layout belongs to the
// platform, not to the user's plugin list.
package paths
