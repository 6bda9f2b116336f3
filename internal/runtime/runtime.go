package runtime

import (
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/funvibe/funkos/internal/space"
	"github.com/funvibe/funkos/internal/types"
)

// DeviceModule is a handle to one backend runtime instance. When multiple
// accelerator devices are present there is one module per device, and the
// active one decides where dispatches resolve.
type DeviceModule interface {
	Initialize() error
	Finalize() error
}

type state struct {
	mu               sync.RWMutex
	defaultSpace     space.ExecutionSpace
	defaultPrecision types.DataType
	layoutOverrides  map[space.ExecutionSpace]space.Layout
	initialized      bool
	uvmEnabled       bool
	hostModule       DeviceModule
	deviceModules    []DeviceModule
	activeModule     DeviceModule
	deviceID         int
}

var st = state{
	defaultSpace:     space.OpenMP,
	defaultPrecision: types.Double,
	layoutOverrides:  make(map[space.ExecutionSpace]space.Layout),
}

// DefaultSpace returns the process-wide default execution space. The DEBUG
// environment variable forces the Debug space, same as the original
// runtime does for troubleshooting.
func DefaultSpace() space.ExecutionSpace {
	if os.Getenv("DEBUG") != "" {
		return space.Debug
	}
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.defaultSpace
}

// SetDefaultSpace changes the process-wide default execution space.
func SetDefaultSpace(s space.ExecutionSpace) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.defaultSpace = s
}

// DefaultPrecision returns the default floating-point precision.
func DefaultPrecision() types.DataType {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.defaultPrecision
}

// SetDefaultPrecision changes the default floating-point precision.
func SetDefaultPrecision(p types.DataType) error {
	if p != types.Double && p != types.Float {
		return errors.Errorf("precision %q is not a floating-point type", p)
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.defaultPrecision = p
	return nil
}

// DefaultLayout returns the default memory layout for views on the given
// execution space, honoring any configured override.
func DefaultLayout(s space.ExecutionSpace) space.Layout {
	st.mu.RLock()
	l, ok := st.layoutOverrides[s]
	st.mu.RUnlock()
	if ok {
		return l
	}
	return space.DefaultLayout(s)
}

// SetDefaultLayout overrides the default memory layout for one execution
// space.
func SetDefaultLayout(s space.ExecutionSpace, l space.Layout) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.layoutOverrides[s] = l
}

// IsUVMEnabled reports whether unified virtual memory is enabled.
func IsUVMEnabled() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.uvmEnabled
}

// EnableUVM enables unified virtual memory for device allocations.
func EnableUVM() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.uvmEnabled = true
}

// DisableUVM disables unified virtual memory for device allocations.
func DisableUVM() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.uvmEnabled = false
}

// SetHostModule installs the backend module dispatches resolve against on
// host spaces. Must be called before Initialize.
func SetHostModule(m DeviceModule) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.hostModule = m
	if st.activeModule == nil {
		st.activeModule = m
	}
}

// Initialize starts the underlying execution runtime. Calling it when
// already initialized is a no-op.
func Initialize() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.initialized {
		return nil
	}
	if st.hostModule != nil {
		if err := st.hostModule.Initialize(); err != nil {
			return errors.Wrap(err, "initializing host module")
		}
	}
	st.initialized = true
	return nil
}

// Finalize shuts the execution runtime down. Calling it when not
// initialized is a no-op.
func Finalize() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.initialized {
		return nil
	}
	if st.hostModule != nil {
		if err := st.hostModule.Finalize(); err != nil {
			return errors.Wrap(err, "finalizing host module")
		}
	}
	st.initialized = false
	return nil
}

// IsInitialized reports whether Initialize has run.
func IsInitialized() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.initialized
}

// RegisterDeviceModules installs the per-device backend modules and makes
// device 0 active.
func RegisterDeviceModules(mods ...DeviceModule) error {
	for i, m := range mods {
		if err := m.Initialize(); err != nil {
			return errors.Wrapf(err, "initializing device %d", i)
		}
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.deviceModules = mods
	st.deviceID = 0
	if len(mods) > 0 {
		st.activeModule = mods[0]
	}
	return nil
}

// NumDevices returns the number of registered accelerator devices.
func NumDevices() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.deviceModules)
}

// IsMultiDeviceEnabled reports whether more than one accelerator device is
// registered.
func IsMultiDeviceEnabled() bool {
	return NumDevices() > 1
}

// DeviceID returns the ID of the currently selected device.
func DeviceID() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.deviceID
}

// SetDeviceID selects which device module subsequent dispatches resolve
// against. It is bounds-checked against the registered device table.
// Callers must serialize it with respect to in-flight dispatches.
func SetDeviceID(id int) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := len(st.deviceModules)
	if id < 0 || id >= n {
		return errors.Errorf("device %d does not exist (range [0..%d))", id, n)
	}
	if n == 1 {
		return nil
	}
	st.deviceID = id
	st.activeModule = st.deviceModules[id]
	return nil
}

// ActiveModule returns the backend module handle for the given residency:
// the host module for host spaces, the selected device module otherwise.
func ActiveModule(isHost bool) DeviceModule {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if isHost {
		return st.hostModule
	}
	return st.activeModule
}
