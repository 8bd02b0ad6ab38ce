package types

// SnapDiff is the raw whole-identity difference between seeds and model.
type SnapDiff struct {
	Added   []SnapIdentity
	Removed []SnapIdentity
}

// SyncPlan is a SnapDiff after the exclusion policy has been applied.
// Unknown names seeded snaps the store could not resolve.
type SyncPlan struct {
	Added    []SnapIdentity
	Removed  []SnapIdentity
	Excluded []string
	Unknown  []string
	Verdicts map[string]SnapVerdict
}

func (p SyncPlan) Empty() bool {
	return len(p.Added) == 0 && len(p.Removed) == 0
}

type SyncReport struct {
	Release  string   `yaml:"release"`
	Arch     string   `yaml:"arch"`
	Series   string   `yaml:"series"`
	Added    []string `yaml:"added,omitempty"`
	Removed  []string `yaml:"removed,omitempty"`
	Excluded []string `yaml:"excluded,omitempty"`
	Unknown  []string `yaml:"unknown,omitempty"`
	Changed  bool     `yaml:"changed"`
	DryRun   bool     `yaml:"dry_run"`
	Written  []string `yaml:"written,omitempty"`
	Commit   string   `yaml:"commit,omitempty"`
}
