// Package driven defines the outbound ports of the core: interfaces
// the services require from storage, configuration and the change
// notification bus. Adapters under internal/adapters/driven implement
// them.
package driven
