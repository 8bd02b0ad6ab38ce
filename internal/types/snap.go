package types

import "fmt"

const (
	DefaultTrack   = "latest"
	DefaultChannel = "stable"
)

// SnapSpec is a snap reference as it was written in a seed or a model,
// before any defaults are applied. Empty Track and Channel mean "not given";
// Branch is only meaningful when BranchSet is true, since an explicitly empty
// branch differs from an omitted one.
type SnapSpec struct {
	Name      string
	Track     string
	Channel   string
	Branch    string
	BranchSet bool
	Classic   bool
}

// SnapIdentity is a fully defaulted snap reference. Two identities are the
// same entry when their SeedFormat renderings are equal.
type SnapIdentity struct {
	Name    string
	Track   string
	Channel string
	Branch  string
	Classic bool
}

// DefaultChannel renders track/channel[/branch].
func (s SnapIdentity) DefaultChannel() string {
	if s.Branch == "" {
		return fmt.Sprintf("%s/%s", s.Track, s.Channel)
	}
	return fmt.Sprintf("%s/%s/%s", s.Track, s.Channel, s.Branch)
}

// SeedFormat renders name[/classic]=track/channel[/branch].
func (s SnapIdentity) SeedFormat() string {
	classic := ""
	if s.Classic {
		classic = "/classic"
	}
	return fmt.Sprintf("%s%s=%s", s.Name, classic, s.DefaultChannel())
}

func (s SnapIdentity) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.DefaultChannel())
}
