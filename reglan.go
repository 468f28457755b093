// Package reglan enumerates every string in a pattern's language,
// length-ascending, supporting external dictionary references and
// backreferences. See ast, parser, and enum for the pattern compiler and
// the lazy enumeration engine; cmd/reglan for the CLI.
package reglan

// Version is reglan's release version, surfaced by cmd/reglan's
// -version flag.
const Version = "0.1.0"
