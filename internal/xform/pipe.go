package xform

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"

	"github.com/ironsheep/gif-transform/internal/diag"
	"github.com/ironsheep/gif-transform/internal/gif"
)

// Pipe recolors a colormap through an external filter command. The
// command receives one "R G B" line per entry on stdin and must print a
// replacement colormap in the same format on stdout.
//
// The call is synchronous and has no timeout: a hung filter hangs the
// pipeline, matching the behavior of shelling out through a blocking
// pipe. Failure to launch the command is fatal; a nonzero exit or
// unparseable output leaves the colormap unchanged for this invocation
// and is reported as a recoverable error.
type Pipe struct {
	Command string
}

func (t *Pipe) Kind() Kind { return KindPipe }

func (t *Pipe) Apply(cm *gif.Colormap, rep diag.Reporter) {
	tmp, err := os.CreateTemp("", "gif-transform-*")
	if err != nil {
		rep.Fatal("can't create temporary file: %v", err)
		return
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	var in bytes.Buffer
	for _, c := range cm.Colors {
		fmt.Fprintf(&in, "%d %d %d\n", c.R, c.G, c.B)
	}

	cmd := exec.Command("/bin/sh", "-c", t.Command)
	cmd.Stdin = &in
	cmd.Stdout = tmp
	if err := cmd.Start(); err != nil {
		tmp.Close()
		rep.Fatal("can't run color transformation command: %v", err)
		return
	}
	waitErr := cmd.Wait()
	closeErr := tmp.Close()
	if waitErr != nil {
		rep.Error("color transformation command failed: %v", waitErr)
		return
	}
	if closeErr != nil {
		rep.Error("color transformation error: %v", closeErr)
		return
	}

	out, err := os.Open(tmpName)
	if err != nil {
		rep.Error("color transformation error: %v", err)
		return
	}
	newCM, parseErr := gif.ParseColormap(out)
	out.Close()
	if parseErr != nil {
		rep.Error("color transformation output unreadable: %v", parseErr)
		return
	}
	if newCM.Len() == 0 {
		rep.Error("color transformation command generated no output")
		return
	}

	n := newCM.Len()
	if n < cm.Len() {
		rep.Warning("too few colors in color transformation results")
	} else if n > cm.Len() {
		rep.Warning("too many colors in color transformation results")
		n = cm.Len()
	}
	// Replace 1:1 by index; entries past the filter's output keep their
	// original colors.
	copy(cm.Colors[:n], newCM.Colors[:n])
}
