// internal/version/version.go
package version

// Version of the seqsleuth tool.
const Version = "0.2.0"
