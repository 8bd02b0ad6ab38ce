package types

import "github.com/snapcore/snapd/snap"

// SnapInfo is the subset of snap store metadata the sync needs.
type SnapInfo struct {
	Name   string
	SnapID string
	Type   snap.Type
}

// SnapVerdict is the exclusion decision for one snap name. Info is nil when
// the store does not know the snap.
type SnapVerdict struct {
	Name     string
	Excluded bool
	Info     *SnapInfo
}
