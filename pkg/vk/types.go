package vk

import (
	"fmt"
	"unsafe"
)

// Dispatchable handles are pointers on every platform.
type (
	Instance       uintptr
	PhysicalDevice uintptr
	Device         uintptr
	Queue          uintptr
	CommandBuffer  uintptr
)

// Non-dispatchable handles are 64-bit on every platform.
type (
	SurfaceKHR             uint64
	SwapchainKHR           uint64
	Image                  uint64
	Buffer                 uint64
	Semaphore              uint64
	Fence                  uint64
	DebugUtilsMessengerEXT uint64
)

type (
	Bool32         uint32
	DeviceSize     uint64
	Format         int32
	PresentModeKHR int32
)

const (
	FALSE Bool32 = 0
	TRUE  Bool32 = 1
)

const (
	MAX_EXTENSION_NAME_SIZE = 256
	MAX_DESCRIPTION_SIZE    = 256
)

type Result int32

const (
	SUCCESS               Result = 0
	NOT_READY             Result = 1
	TIMEOUT               Result = 2
	EVENT_SET             Result = 3
	EVENT_RESET           Result = 4
	INCOMPLETE            Result = 5
	OUT_OF_HOST_MEMORY    Result = -1
	OUT_OF_DEVICE_MEMORY  Result = -2
	INITIALIZATION_FAILED Result = -3
	DEVICE_LOST           Result = -4
	MEMORY_MAP_FAILED     Result = -5
	LAYER_NOT_PRESENT     Result = -6
	EXTENSION_NOT_PRESENT Result = -7
	FEATURE_NOT_PRESENT   Result = -8
	INCOMPATIBLE_DRIVER   Result = -9
	TOO_MANY_OBJECTS      Result = -10
	FORMAT_NOT_SUPPORTED  Result = -11
	FRAGMENTED_POOL       Result = -12
	UNKNOWN               Result = -13
	SURFACE_LOST          Result = -1000000000
	NATIVE_WINDOW_IN_USE  Result = -1000000001
	SUBOPTIMAL            Result = 1000001003
	OUT_OF_DATE           Result = -1000001004
	INCOMPATIBLE_DISPLAY  Result = -1000003001
	VALIDATION_FAILED     Result = -1000011001
)

var resultNames = map[Result]string{
	SUCCESS:               "SUCCESS",
	NOT_READY:             "NOT READY",
	TIMEOUT:               "TIMEOUT",
	EVENT_SET:             "EVENT SET",
	EVENT_RESET:           "EVENT RESET",
	INCOMPLETE:            "INCOMPLETE",
	OUT_OF_HOST_MEMORY:    "OUT OF HOST MEMORY",
	OUT_OF_DEVICE_MEMORY:  "OUT OF DEVICE MEMORY",
	INITIALIZATION_FAILED: "INITIALIZATION FAILED",
	DEVICE_LOST:           "DEVICE LOST",
	MEMORY_MAP_FAILED:     "MEMORY MAP FAILED",
	LAYER_NOT_PRESENT:     "LAYER NOT PRESENT",
	EXTENSION_NOT_PRESENT: "EXTENSION NOT PRESENT",
	FEATURE_NOT_PRESENT:   "FEATURE NOT PRESENT",
	INCOMPATIBLE_DRIVER:   "INCOMPATIBLE DRIVER",
	TOO_MANY_OBJECTS:      "TOO MANY OBJECTS",
	FORMAT_NOT_SUPPORTED:  "FORMAT NOT SUPPORTED",
	FRAGMENTED_POOL:       "FRAGMENTED POOL",
	UNKNOWN:               "UNKNOWN",
	SURFACE_LOST:          "SURFACE LOST",
	NATIVE_WINDOW_IN_USE:  "NATIVE WINDOW IN USE",
	SUBOPTIMAL:            "SUBOPTIMAL",
	OUT_OF_DATE:           "OUT OF DATE",
	INCOMPATIBLE_DISPLAY:  "INCOMPATIBLE DISPLAY",
	VALIDATION_FAILED:     "VALIDATION FAILED",
}

func (r Result) Error() string {
	if s, ok := resultNames[r]; ok {
		return s
	}
	return fmt.Sprintf("VkResult(%d)", r)
}

// Err returns nil for success codes and r otherwise.
func (r Result) Err() error {
	if r >= SUCCESS {
		return nil
	}
	return r
}

// AllocationCallbacks is passed through as an opaque pointer; every call in
// this package accepts nil.
type AllocationCallbacks struct {
	PUserData             unsafe.Pointer
	PfnAllocation         uintptr
	PfnReallocation       uintptr
	PfnFree               uintptr
	PfnInternalAllocation uintptr
	PfnInternalFree       uintptr
}

type ExtensionProperties struct {
	ExtensionName [MAX_EXTENSION_NAME_SIZE]byte
	SpecVersion   uint32
}

func (p *ExtensionProperties) Name() string {
	return cstring(p.ExtensionName[:])
}

func MakeApiVersion(variant, major, minor, patch uint32) uint32 {
	return variant<<29 | major<<22 | minor<<12 | patch
}

func ApiVersionVariant(v uint32) uint32 { return v >> 29 }
func ApiVersionMajor(v uint32) uint32   { return (v >> 22) & 0x7f }
func ApiVersionMinor(v uint32) uint32   { return (v >> 12) & 0x3ff }
func ApiVersionPatch(v uint32) uint32   { return v & 0xfff }

var (
	API_VERSION_1_0 = MakeApiVersion(0, 1, 0, 0)
	API_VERSION_1_1 = MakeApiVersion(0, 1, 1, 0)
	API_VERSION_1_2 = MakeApiVersion(0, 1, 2, 0)
	API_VERSION_1_3 = MakeApiVersion(0, 1, 3, 0)
)

func FormatApiVersion(v uint32) string {
	return fmt.Sprintf("%d.%d.%d", ApiVersionMajor(v), ApiVersionMinor(v), ApiVersionPatch(v))
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
