// Package views holds the per-session view state behind each dashboard
// page: transient filter criteria, which entity is open in an editor,
// and fetch sequencing. Item lists for venue-scoped collections are
// derived from the shared store, never copied into the view.
package views

import "sync/atomic"

// Editor submit kinds.
const (
	KindAdd    = "add"
	KindUpdate = "update"
	KindDelete = "delete"
)

// fetchSeq numbers fetches so a superseded one can never overwrite the
// result of a newer one. A completion is applied only while its number
// is still current.
type fetchSeq struct {
	n atomic.Uint64
}

func (f *fetchSeq) begin() uint64 {
	return f.n.Add(1)
}

func (f *fetchSeq) current(seq uint64) bool {
	return f.n.Load() == seq
}
