package utils

import "runtime"

// GetCurrentFunctionName names the calling function, used to tag goroutine
// bookkeeping messages.
func GetCurrentFunctionName() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return "unknown"
	}
	return runtime.FuncForPC(pc).Name()
}
