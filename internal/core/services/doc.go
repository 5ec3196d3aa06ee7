// Package services implements the driving ports on top of the driven
// ports: ingestion, similarity search and document management.
package services
