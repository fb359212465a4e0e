package interp

// registerBuiltins installs the full built-in command library described by
// spec.md §4.6 into a freshly constructed Interp.
func registerBuiltins(i *Interp) {
	registerFlowBuiltins(i)
	registerMathBuiltins(i)
	registerStringBuiltins(i)
	registerInfoBuiltins(i)
}
