// Package driving defines the inbound ports of the core: the service
// interfaces the CLI (and any other presentation layer) calls into.
package driving
