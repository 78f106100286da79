// Package vk binds a small, representative part of the Vulkan API as
// capability tables. Every table is resolved through the loader's
// vkGetInstanceProcAddr or the device's vkGetDeviceProcAddr; entry points
// the driver does not expose panic with their name when called.
package vk

//go:generate go run ../../cmd/wcap-gen -registry registry.yaml -output tables_gen.go
