// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.4.0"

// Milestones:
// 0.4.0 - Cosmology calculator view, XLSX export, .env configuration
// 0.3.0 - Darkness-window detection, moon illumination panel, sample cache
// 0.2.0 - Filter & ranking engine, Bortle-scale magnitude limits, CSV export
// 0.1.0 - Initial release: alt/az sampling, visibility analysis, TUI results list
