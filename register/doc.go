// Package register models the register files of 16, 32 and 64-bit x86
// processors.
//
// Each Register knows its width, its alternate names, and the wider
// register it is a part of (AL is part of AX, which is part of EAX, which is
// part of RAX). A Set is the catalog of one architecture mode, keyed by both
// canonical names and aliases.
//
// Exact lookups through Set.Index are case sensitive, while Set.Get and
// Set.Contains upper-case their argument first: Index("rax") fails where
// Get("rax", nil) succeeds.
package register
