package rounding

import "sync/atomic"

var defaultMode atomic.Int32

func init() {
	defaultMode.Store(int32(TiesToEven))
}

// Default returns the process-wide default rounding mode. Encoders must
// consult this at encode time, not at codec-construction time.
func Default() Mode {
	return Mode(defaultMode.Load())
}

// SetDefault changes the process-wide default rounding mode. Changing it
// concurrently with an in-flight encode yields an unspecified but
// well-formed result, per the ambient concurrency model.
func SetDefault(m Mode) {
	defaultMode.Store(int32(m))
}
