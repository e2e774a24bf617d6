package testutil

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Importing testutil discards log output unless tests run verbosely, while
// keeping every level enabled so logging code paths still execute.
func init() {
	logrus.SetLevel(logrus.TraceLevel)

	if !isVerbose() {
		logrus.StandardLogger().Out = io.Discard
	}
}

func isVerbose() bool {
	for _, arg := range os.Args {
		if arg == "-test.v" || strings.HasPrefix(arg, "-test.v=") && arg != "-test.v=false" {
			return true
		}
	}
	return false
}

// DisableLogging discards log output until the returned func is called.
func DisableLogging() (reset func()) {
	originalLogOutput := logrus.StandardLogger().Out
	logrus.StandardLogger().Out = io.Discard
	return func() {
		logrus.StandardLogger().Out = originalLogOutput
	}
}
