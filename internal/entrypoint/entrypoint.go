// Package entrypoint holds the process-wide program registration the host
// loads programs through. It only forwards calls.
package entrypoint

import (
	"sync"
	"sync/atomic"

	"collateral-loan-program/internal/core/domain"
	"collateral-loan-program/internal/core/ports"
	"collateral-loan-program/pkg/apperror"
)

var (
	mu         sync.RWMutex
	registered ports.ProcessFunc
	running    atomic.Bool
)

// Register installs fn as the program entrypoint, replacing any previous one.
func Register(fn ports.ProcessFunc) {
	mu.Lock()
	defer mu.Unlock()
	registered = fn
}

// Registered reports whether an entrypoint is installed.
func Registered() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registered != nil
}

// Invoke calls the registered entrypoint. A call made while another is still
// running fails with ENT_001 without reaching the program.
func Invoke(programID domain.ProgramID, slots []ports.StorageSlot, instruction []byte) ([]byte, error) {
	mu.RLock()
	fn := registered
	mu.RUnlock()
	if fn == nil {
		return nil, apperror.ErrNoProgram()
	}

	if !running.CompareAndSwap(false, true) {
		return nil, apperror.ErrReentrantInvocation()
	}
	defer running.Store(false)

	return fn(programID, slots, instruction)
}
