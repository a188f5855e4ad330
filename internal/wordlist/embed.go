// Package wordlist supplies candidate answers: an embedded default list and
// user-provided files.
package wordlist

import "embed"

// dataFS embeds the default word list at build time.
//
//go:embed *.json
var dataFS embed.FS
