// Package docscheck provides CI lint utilities for documentation builds:
// a doc checker that scans reST guides and Go sources for missing
// cross-references and stylistic violations, and a JSON/YAML schema
// validation pipeline with an ETag-backed cache for remote specs.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., jsonschema/, yaml/, http/).
package docscheck
