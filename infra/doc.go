// Package infra contains technical adapters such as the zerolog logger and
// the chart renderer. These packages should depend only on the interfaces
// and types defined in the core packages.
package infra
