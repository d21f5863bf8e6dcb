// Package docinv builds content inventories of documentation sites.
// It crawls a product landing page, discovers the guides it links to,
// extracts each guide's heading hierarchy with in-page anchors, and
// shapes the result into a spreadsheet-friendly CSV.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package docinv
