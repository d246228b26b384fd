// Package assets embeds the default word list so the binary plays
// without any files on disk.
package assets

import (
	_ "embed"
)

//go:embed words.txt
var words string

// WordList returns the raw embedded list, one candidate word per line.
func WordList() string {
	return words
}
