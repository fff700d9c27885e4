// Package toolchain resolves well-known build tools, linkers, and compiler
// caches to executable paths using a binpath cache.
//
// Each tool has an ordered list of program names (for example GNU make is
// tried as "gmake" before "make"); the first name that resolves wins. Within a
// kind the catalog is ordered by preference, so Preferred(KindLinker) returns
// mold when installed, then lld, gold, and finally the BFD linker.
//
// The package only locates tools. Running them is left to the caller.
package toolchain
