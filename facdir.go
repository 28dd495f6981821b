// Package facdir scrapes a university department's public faculty
// directory into a flat record set and answers name searches over it.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, chi/).
package facdir
