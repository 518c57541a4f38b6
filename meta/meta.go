// meta/meta.go
package meta

// DICE_PER_DRAW defines the number of dice in a standard challenge.
const DICE_PER_DRAW = 7

// MAX_PIECES defines the default largest collection the solver will search.
// The search visits 2^n splits, so this bounds it at about a million.
const MAX_PIECES = 20

// VERSION defines the CLI version string.
const VERSION = "0.1.0"
