// Package fonts resolves the regular and bold faces used on labels.
// A configured TTF path wins; when it is absent or unreadable the
// embedded Go fonts apply, with a logged warning so a typo in the config
// does not abort a print run.
package fonts

import (
	"log"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Regular returns the TTF bytes for the regular face.
func Regular(path string) []byte {
	return load(path, goregular.TTF)
}

// Bold returns the TTF bytes for the bold face.
func Bold(path string) []byte {
	return load(path, gobold.TTF)
}

func load(path string, fallback []byte) []byte {
	if path == "" {
		return fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("fonts: cannot read %s, falling back to embedded Go font: %v", path, err)
		return fallback
	}
	return data
}
