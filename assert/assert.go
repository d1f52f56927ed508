//go:build !release

package assert

import (
	"fmt"

	"github.com/bloeys/glscaffold/logging"
)

// T panics with the formatted message if check is false.
// Assertions guard programmer errors (e.g. nested program activation) and compile to
// nothing when building with '-tags release'.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	errMsg := "Assert failed: " + fmt.Sprintf(msg, args...)
	logging.ErrLog.Output(2, errMsg)
	panic(errMsg)
}
