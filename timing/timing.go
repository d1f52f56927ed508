// The timing package is the frame loop's clock. Times are measured on the monotonic clock
// from the call to Init.
package timing

import "time"

var (
	startTime      time.Time
	frameStartTime time.Time
	dt             float32
)

func Init() {
	startTime = time.Now()
	frameStartTime = startTime
	dt = 0
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {
	dt = float32(time.Since(frameStartTime).Seconds())
}

// DT is the duration of the last completed frame in seconds
func DT() float32 {
	return dt
}

// ElapsedTime returns the seconds passed since Init
func ElapsedTime() float32 {
	return float32(time.Since(startTime).Seconds())
}
