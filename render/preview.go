package render

import (
	"io"
	"os"

	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Preview prints an image file to a terminal that understands the iTerm2
// inline image protocol.
func Preview(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrap(err, "preview")
	}
	imgcat.CatFile(path, w)
	return nil
}
