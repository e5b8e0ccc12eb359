// Package editor spawns $EDITOR on a CSV dump of a data frame and reads
// the result back, for out-of-band bulk editing. Grounded in the
// original's misc/external_editor.rs, including its process-wide lock
// around the stop-spawn-restart terminal sequence (spec §5: "no
// concurrent terminal I/O permitted during this window").
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/espenotterstad/gridview/internal/dataframe"
	"github.com/espenotterstad/gridview/internal/modal"
	"github.com/espenotterstad/gridview/internal/reader"
	"github.com/espenotterstad/gridview/internal/writer"
)

// terminalMu serializes every external-editor invocation against the rest
// of the program's terminal access (spec §5: "enforced by a process-wide
// mutex guarding terminal access").
var terminalMu sync.Mutex

// Suspend and Resume bracket the editor's terminal ownership window; the
// app shell supplies them so this package never imports the TUI program
// directly (avoiding a cycle with internal/app).
type Hooks struct {
	Suspend func() error
	Resume  func() error
}

// Edit writes df to a temp CSV file, runs $EDITOR on it, and reads the
// edited file back as the new data frame. Returns an error if $EDITOR is
// unset, the editor exits non-zero, or the file fails to read back.
func Edit(df dataframe.DataFrame, hooks Hooks) (dataframe.DataFrame, error) {
	editorCmd := os.Getenv("EDITOR")
	if editorCmd == "" {
		return dataframe.DataFrame{}, fmt.Errorf("editor: $EDITOR is not set")
	}

	tmp, err := os.CreateTemp("", "gridview-edit-*.csv")
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("editor: create temp file: %w", err)
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	if err := (writer.Writer{}).Export(df, modal.ExportCSV, path); err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("editor: write temp file: %w", err)
	}

	terminalMu.Lock()
	defer terminalMu.Unlock()

	if hooks.Suspend != nil {
		if err := hooks.Suspend(); err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("editor: suspend terminal: %w", err)
		}
	}

	parts := strings.Fields(editorCmd)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	runErr := cmd.Run()

	if hooks.Resume != nil {
		if err := hooks.Resume(); err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("editor: resume terminal: %w", err)
		}
	}

	if runErr != nil {
		return dataframe.DataFrame{}, fmt.Errorf("editor: %s: %w", editorCmd, runErr)
	}

	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("editor: reopen edited file: %w", err)
	}
	defer f.Close()
	return reader.ReadCSV(f, reader.DefaultOptions())
}
