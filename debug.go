package pointerdnd

import (
	"fmt"
	"io"
	"os"
)

// debugOutput receives debug lines. Tests swap it for a buffer.
var debugOutput io.Writer = os.Stderr

// debugLog prints a single tagged line. Callers check their debug flag first.
func debugLog(msg string) {
	_, _ = fmt.Fprintf(debugOutput, "[pointerdnd] %s\n", msg)
}
