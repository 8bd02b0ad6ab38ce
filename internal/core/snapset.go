package core

import (
	"sort"

	"snap-seed-sync/internal/types"
)

// SnapSet holds identities keyed by their seed format rendering.
type SnapSet map[string]types.SnapIdentity

func NewSnapSet(snaps ...types.SnapIdentity) SnapSet {
	set := SnapSet{}
	for _, snap := range snaps {
		set.Add(snap)
	}
	return set
}

func (s SnapSet) Add(snap types.SnapIdentity) {
	s[snap.SeedFormat()] = snap
}

func (s SnapSet) Contains(snap types.SnapIdentity) bool {
	_, ok := s[snap.SeedFormat()]
	return ok
}

// Difference returns the identities of s that are not in other.
func (s SnapSet) Difference(other SnapSet) SnapSet {
	out := SnapSet{}
	for key, snap := range s {
		if !other.Contains(snap) {
			out[key] = snap
		}
	}
	return out
}

// Sorted returns the identities ordered by seed format.
func (s SnapSet) Sorted() []types.SnapIdentity {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	snaps := make([]types.SnapIdentity, 0, len(keys))
	for _, key := range keys {
		snaps = append(snaps, s[key])
	}
	return snaps
}

// Names returns the distinct snap names, sorted.
func (s SnapSet) Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, snap := range s {
		if _, ok := seen[snap.Name]; ok {
			continue
		}
		seen[snap.Name] = struct{}{}
		names = append(names, snap.Name)
	}
	sort.Strings(names)
	return names
}
