package vk

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vietanhduong/wcap"
	"github.com/vietanhduong/wcap/pkg/dl"
	"github.com/vietanhduong/wcap/pkg/logging"
	"github.com/vietanhduong/wcap/pkg/logging/logfields"
	"github.com/vietanhduong/wcap/pkg/utils"
)

var log = logging.DefaultLogger.WithFields(logrus.Fields{logfields.LogSubsys: "vk"})

const loaderTableName = "vulkan_loader"

var ErrNoLoader = errors.New("vkGetInstanceProcAddr is not exported")

// LibrariesEnv overrides the loader search list with a comma separated list.
const LibrariesEnv = "WCAP_VULKAN_LIBRARIES"

// DefaultLibraries is the loader search list for the running platform.
func DefaultLibraries() []string {
	var libs []string
	switch runtime.GOOS {
	case "darwin":
		libs = []string{"libvulkan.1.dylib", "libvulkan.dylib", "libMoltenVK.dylib"}
	case "windows":
		libs = []string{"vulkan-1.dll"}
	default:
		libs = []string{"libvulkan.so.1", "libvulkan.so"}
	}
	return utils.GetEnvListOrDefault(LibrariesEnv, libs)
}

// Entry is the root of all tables: it holds vkGetInstanceProcAddr and caches
// one table per handle and extension.
type Entry struct {
	lib    *dl.Library
	opts   []wcap.LoadOption
	tables *wcap.Registry

	getInstanceProcAddr wcap.EntryPoint[func(instance Instance, pName string) uintptr]
}

// NewEntry opens the Vulkan loader. With no arguments DefaultLibraries is
// searched.
func NewEntry(libs ...string) (*Entry, error) {
	return NewEntryWithOptions(libs)
}

func NewEntryWithOptions(libs []string, opts ...wcap.LoadOption) (*Entry, error) {
	if len(libs) == 0 {
		libs = DefaultLibraries()
	}
	lib, err := dl.Open(libs...)
	if err != nil {
		return nil, fmt.Errorf("open vulkan loader: %w", err)
	}
	e, err := NewEntryFromResolver(lib, opts...)
	if err != nil {
		lib.Close()
		return nil, fmt.Errorf("%s: %w", lib.Path(), err)
	}
	e.lib = lib
	log.WithField(logfields.Library, lib.Path()).Debug("Vulkan loader opened")
	return e, nil
}

// NewEntryFromResolver takes vkGetInstanceProcAddr from r. r is only asked
// for that one name.
func NewEntryFromResolver(r wcap.Resolver, opts ...wcap.LoadOption) (*Entry, error) {
	e := &Entry{opts: opts, tables: wcap.NewRegistry()}
	s := wcap.NewSession(loaderTableName, r, opts...)
	wcap.Bind(s, &e.getInstanceProcAddr, "vkGetInstanceProcAddr")
	s.Done()
	if !e.getInstanceProcAddr.Supported() {
		return nil, ErrNoLoader
	}
	return e, nil
}

func (e *Entry) GetInstanceProcAddr(instance Instance, name string) uintptr {
	return e.getInstanceProcAddr.Func()(instance, name)
}

// GlobalResolver resolves commands that are called without an instance.
func (e *Entry) GlobalResolver() wcap.Resolver { return e.InstanceResolver(0) }

func (e *Entry) InstanceResolver(instance Instance) wcap.Resolver {
	return wcap.ResolverFunc(func(name string) uintptr {
		return e.GetInstanceProcAddr(instance, name)
	})
}

// DeviceResolver resolves through vkGetDeviceProcAddr, skipping the loader
// trampolines. Without vkGetDeviceProcAddr it falls back to the instance.
func (e *Entry) DeviceResolver(instance Instance, device Device) wcap.Resolver {
	inst := e.Instance(instance)
	if !wcap.Supports(inst, "vkGetDeviceProcAddr") {
		return e.InstanceResolver(instance)
	}
	return wcap.ResolverFunc(func(name string) uintptr {
		return inst.GetDeviceProcAddr(device, name)
	})
}

func (e *Entry) Global() *GlobalCommands {
	key := wcap.ScopeKey{Scope: wcap.ScopeGlobal}
	return e.tables.Load(key, GlobalCommandsName, func() wcap.Table {
		return LoadGlobalCommands(e.GlobalResolver(), e.opts...)
	}).(*GlobalCommands)
}

func (e *Entry) Instance(instance Instance) *InstanceCommands {
	return InstanceTable(e, instance, InstanceCommandsName, LoadInstanceCommands)
}

func (e *Entry) Device(instance Instance, device Device) *DeviceCommands {
	return DeviceTable(e, instance, device, DeviceCommandsName, LoadDeviceCommands)
}

// InstanceTable returns the table called name for instance, loading it on
// first use.
//
//	surface := vk.InstanceTable(e, inst, vk.KhrSurfaceName, vk.LoadKhrSurface)
func InstanceTable[T wcap.Table](e *Entry, instance Instance, name string, load func(wcap.Resolver, ...wcap.LoadOption) T) T {
	key := wcap.ScopeKey{Scope: wcap.ScopeInstance, Handle: uintptr(instance)}
	return e.tables.Load(key, name, func() wcap.Table {
		return load(e.InstanceResolver(instance), e.opts...)
	}).(T)
}

func DeviceTable[T wcap.Table](e *Entry, instance Instance, device Device, name string, load func(wcap.Resolver, ...wcap.LoadOption) T) T {
	key := wcap.ScopeKey{Scope: wcap.ScopeDevice, Handle: uintptr(device)}
	return e.tables.Load(key, name, func() wcap.Table {
		return load(e.DeviceResolver(instance, device), e.opts...)
	}).(T)
}

// ReleaseInstance drops the cached tables of instance. Call it after
// vkDestroyInstance; the handle value may be reused.
func (e *Entry) ReleaseInstance(instance Instance) {
	n := e.tables.Release(wcap.ScopeKey{Scope: wcap.ScopeInstance, Handle: uintptr(instance)})
	log.WithField(logfields.Scope, "instance").Debugf("Released %d tables of %#x", n, uintptr(instance))
}

func (e *Entry) ReleaseDevice(device Device) {
	n := e.tables.Release(wcap.ScopeKey{Scope: wcap.ScopeDevice, Handle: uintptr(device)})
	log.WithField(logfields.Scope, "device").Debugf("Released %d tables of %#x", n, uintptr(device))
}

// Close releases the loader library when the Entry opened it. Tables and
// functions obtained from e must not be used afterwards.
func (e *Entry) Close() error {
	if e.lib == nil {
		return nil
	}
	err := e.lib.Close()
	e.lib = nil
	return err
}

// APIVersion is the instance-level version the loader supports. Loaders
// without vkEnumerateInstanceVersion only support 1.0.
func (e *Entry) APIVersion() (uint32, error) {
	g := e.Global()
	if !wcap.Supports(g, "vkEnumerateInstanceVersion") {
		return API_VERSION_1_0, nil
	}
	var v uint32
	if err := g.EnumerateInstanceVersion(&v).Err(); err != nil {
		return 0, fmt.Errorf("vkEnumerateInstanceVersion: %w", err)
	}
	return v, nil
}

// InstanceExtensions lists the instance extensions of the loader and the
// implicit layers.
func (e *Entry) InstanceExtensions() ([]ExtensionProperties, error) {
	g := e.Global()
	for {
		var count uint32
		if err := g.EnumerateInstanceExtensionProperties(nil, &count, nil).Err(); err != nil {
			return nil, fmt.Errorf("vkEnumerateInstanceExtensionProperties: %w", err)
		}
		if count == 0 {
			return nil, nil
		}
		props := make([]ExtensionProperties, count)
		res := g.EnumerateInstanceExtensionProperties(nil, &count, &props[0])
		if res == INCOMPLETE {
			continue
		}
		if err := res.Err(); err != nil {
			return nil, fmt.Errorf("vkEnumerateInstanceExtensionProperties: %w", err)
		}
		return props[:count], nil
	}
}
