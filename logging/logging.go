package logging

import (
	"io"
	"log"
	"os"
)

var (
	InfoLog = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLog = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrLog  = log.New(os.Stderr, "ERR: ", log.Ldate|log.Ltime|log.Lshortfile)
)

// SetOutput redirects all loggers to w. Passing io.Discard silences them (useful in tests)
func SetOutput(w io.Writer) {
	InfoLog.SetOutput(w)
	WarnLog.SetOutput(w)
	ErrLog.SetOutput(w)
}
