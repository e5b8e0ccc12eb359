// Package clipboard implements the spec §6 clipboard interface: writes
// go through the OSC 52 escape sequence, written to standard output,
// buffered and flushed once per operation.
package clipboard

import (
	"os"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
)

// Write sends content to the system clipboard via OSC 52 (spec §6:
// "ESC ] 52 ; c ; base64(content) BEL"). On platforms/terminals that
// don't read OSC 52 back into the OS clipboard, the same content is also
// written through atotto/clipboard as a best-effort fallback; a failure
// there is not reported, since the primary OSC 52 write already
// succeeded and this is a secondary convenience path.
func Write(content []byte) error {
	if _, err := osc52.New(string(content)).WriteTo(os.Stdout); err != nil {
		return err
	}
	_ = clipboard.WriteAll(string(content))
	return nil
}
