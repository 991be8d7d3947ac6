package suite

import (
	"runtime"
	"runtime/debug"

	apperrors "github.com/agbru/fibbench/internal/errors"
	"github.com/agbru/fibbench/internal/logging"
)

// GCMode controls the garbage collector while a size is measured.
type GCMode string

const (
	// GCModeDefault leaves the collector alone.
	GCModeDefault GCMode = "default"
	// GCModeDisabled turns the collector off for the measurement and
	// collects once afterwards.
	GCModeDisabled GCMode = "disabled"
)

// memoryLimitFactor bounds heap growth while the collector is off, as a
// multiple of the memory obtained from the OS when the size started.
const memoryLimitFactor = 3

// ParseGCMode validates a mode name.
func ParseGCMode(s string) (GCMode, error) {
	switch m := GCMode(s); m {
	case GCModeDefault, GCModeDisabled:
		return m, nil
	case "":
		return GCModeDefault, nil
	}
	return "", apperrors.NewConfigError("unknown gc mode %q", s)
}

// gcController disables the collector between Begin and End.
type gcController struct {
	mode            GCMode
	logger          logging.Logger
	originalPercent int
	originalLimit   int64
}

func newGCController(mode GCMode, logger logging.Logger) *gcController {
	return &gcController{mode: mode, logger: logger}
}

// Begin turns the collector off when the mode asks for it. A soft memory
// limit stays in place so a runaway size still triggers collection.
func (gc *gcController) Begin() {
	if gc.mode != GCModeDisabled {
		return
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	gc.originalPercent = debug.SetGCPercent(-1)
	// A negative input only reads the current limit.
	gc.originalLimit = debug.SetMemoryLimit(-1)
	if limit := int64(ms.Sys) * memoryLimitFactor; limit > 0 && limit < gc.originalLimit {
		debug.SetMemoryLimit(limit)
	}
	gc.logger.Debug("gc disabled", logging.Uint64("heap_alloc_bytes", ms.HeapAlloc))
}

// End restores the collector percent and memory limit, then collects once.
func (gc *gcController) End() {
	if gc.mode != GCModeDisabled {
		return
	}
	debug.SetGCPercent(gc.originalPercent)
	debug.SetMemoryLimit(gc.originalLimit)
	runtime.GC()
	gc.logger.Debug("gc re-enabled")
}
