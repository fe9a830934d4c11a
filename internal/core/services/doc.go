// Package services implements the core business logic behind the
// driving ports: catalog mutations and queries, site document editing,
// site management and the onboarding wizard. Services depend only on
// the driven ports and publish change notifications after every
// successful write.
package services
