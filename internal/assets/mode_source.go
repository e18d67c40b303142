//go:build !bundled

package assets

// DefaultMode is the resolver mode this build was made for.
const DefaultMode = ModeSource
