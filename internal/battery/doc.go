// Package battery runs named check cases against the bits formatters.
//
// A case names one operation, its literal inputs, and either the expected
// output or the name of the expected error. Default returns the built-in
// battery; Load reads additional cases from a TOML file:
//
//	[[case]]
//	name = "hex byte"
//	kind = "hex"
//	value = 18
//	width = 8
//	want = "0x12"
//
//	[[case]]
//	name = "binary overflow"
//	kind = "bin"
//	value = 256
//	width = 8
//	want_err = "width_overflow"
//
// Run evaluates cases in order and reports a Result per case.
package battery
