//go:build !debug
// +build !debug

package ndraytrace

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
