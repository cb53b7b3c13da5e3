// Package driving defines the interfaces the CLI uses to reach core
// services. Implementations live in internal/core/services.
package driving
