// Package cli implements the textcanon command line.
//
// Commands are package-level cobra.Command values registered on rootCmd in
// init functions. The root command's persistent pre-run loads Config from
// the environment, builds the logger (stderr, so stdout carries only data)
// and stores a per-invocation run id in the command context; every log
// record emitted while the command runs carries that id.
package cli
