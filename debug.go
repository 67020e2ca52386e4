package journey

import (
	"fmt"
	"os"
)

// debugLog prints a diagnostic line to stderr when debug mode is on.
func (c *Controller) debugLog(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[journey] "+format+"\n", args...)
}

// debugIgnored reports a dropped input and why.
func (c *Controller) debugIgnored(input, reason string) {
	c.debugLog("ignored %s: %s", input, reason)
}
