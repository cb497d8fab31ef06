package primerforge

import (
	"io"
	"os"
	"runtime"

	colorable "github.com/mattn/go-colorable"
	"github.com/shenwei356/go-logging"
)

var log = logging.MustGetLogger("primerforge")

var logFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{color}[%{level:.4s}]%{color:reset} %{message}`,
)

func init() {
	var stderr io.Writer = os.Stderr
	if runtime.GOOS == "windows" {
		stderr = colorable.NewColorableStderr()
	}
	backend := logging.NewLogBackend(stderr, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logFormat)
	logging.SetBackend(backendFormatter)
	logging.SetLevel(logging.INFO, "primerforge")
}

// SetVerbose raises the package logger to DEBUG level; the CLI layer calls
// this when --verbose is set.
func SetVerbose(verbose bool) {
	if verbose {
		logging.SetLevel(logging.DEBUG, "primerforge")
	} else {
		logging.SetLevel(logging.INFO, "primerforge")
	}
}
