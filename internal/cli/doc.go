// Package cli defines the Cobra command tree for the open-lnk CLI. The root
// command opens the shortcuts given as arguments; each other file registers
// one subcommand (inspect, resolve, mapping, cache, config, doctor, init,
// version). Commands delegate to internal packages for decoding and
// resolution and only handle flags, output formatting and exit codes.
package cli
