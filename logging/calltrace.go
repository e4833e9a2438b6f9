package logging

import (
	"runtime"
	"strings"
)

const maxTraceDepth = 32

// callTrace walks the active call stack and returns the logical caller
// chain that produced the log call, ordered root first, so that joining
// the frames with " -> " reads top-down into the call site.
//
// The skip count assumes the fixed path
// runtime.Callers -> callTrace -> (*sinkLogger).log -> exported method,
// so the first recorded frame is the user code that invoked the logger.
func callTrace() []string {
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(4, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	var chain []string
	for {
		frame, more := frames.Next()
		if frame.Function != "" && !strings.HasPrefix(frame.Function, "runtime.") {
			chain = append(chain, shortFuncName(frame.Function))
		}
		if !more {
			break
		}
	}

	// root caller first
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// shortFuncName trims the package import path directory from a fully
// qualified function name, keeping pkg.Type.Method.
func shortFuncName(name string) string {
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// renderTrace formats a call trace the way every sink annotates it.
func renderTrace(trace []string) string {
	return strings.Join(trace, " -> ")
}
