// Package doccrawl crawls documentation sites into local text files.
// It discovers pages reachable from a seed URL within a root domain,
// admits pages worth keeping, and writes them to per-site directories
// for downstream indexing.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, sqlite/).
package doccrawl
