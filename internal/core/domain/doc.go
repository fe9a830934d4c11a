// Package domain contains the core business entities for Sitewright:
// sites, their services catalogs, site content documents, and the pure
// catalog query engine. It has no dependencies on adapters or services.
package domain
