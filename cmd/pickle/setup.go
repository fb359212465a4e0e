package main

import (
	"fmt"
	"os"

	"tcl9.dev/pickle/pkg/alloc"
	"tcl9.dev/pickle/pkg/config"
	"tcl9.dev/pickle/pkg/history"
	"tcl9.dev/pickle/pkg/host"
	"tcl9.dev/pickle/pkg/interp"
	"tcl9.dev/pickle/pkg/prog"
)

// newInterp builds an interpreter with the host command library and
// (optionally) the history built-in installed against it, using cfg's
// limits. hist may be nil, in which case `history` is not registered. f
// selects the allocator strategy: the default Go allocator, or (with
// -arena-alloc) a fixed-block arena sized by -arena-blocks/-arena-block-size,
// for benchmarking against a custom allocator the way an embedder
// swapping out pickle.c's allocator_t would.
func newInterp(cfg *config.Config, ports host.Ports, hist *history.Store, f *prog.Flags) (*interp.Interp, error) {
	var a alloc.Allocator
	if f != nil && f.ArenaAlloc {
		a = alloc.NewArenaAllocator(f.ArenaBlocks, f.ArenaBlockSize)
	}
	i := interp.New(a)
	i.SetMaxDepth(cfg.RecursionLimit)
	i.SetMaxArgc(cfg.MaxArgc)
	if err := host.Install(i, ports); err != nil {
		return nil, err
	}
	if hist != nil {
		if err := history.Register(i, hist); err != nil {
			return nil, err
		}
	}
	return i, nil
}

func openHistory(cfg *config.Config) *history.Store {
	h, err := history.Open(cfg.HistoryPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: could not open history store:", err)
		return nil
	}
	return h
}
