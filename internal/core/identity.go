package core

import (
	"context"
	"regexp"

	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/types"
)

// seedLineRegex matches name[/classic][=track/channel[/branch]]. Only the
// start is anchored so trailing seed comments are ignored.
var seedLineRegex = regexp.MustCompile(
	`^\s*(?P<name>[a-zA-Z0-9_\-.]+)` +
		`(?:/(?P<classic>classic))?` +
		`(?:=(?P<track>[a-zA-Z0-9_\-.]+)` +
		`/(?P<channel>[a-zA-Z0-9_\-.]+)` +
		`(?:/(?P<branch>[a-zA-Z0-9_\-.]+))?)?`)

var branchlessBaseRegex = regexp.MustCompile(`^core(\d\d)?$`)

var branchlessSnaps = map[string]struct{}{
	"bare":  {},
	"snapd": {},
}

// NewSnapIdentity applies the defaulting rules to ref. The branch defaults
// to ubuntu-<series> unless it was given (even empty). Base snaps, bare and
// snapd carry no branch when neither track nor branch were given.
func NewSnapIdentity(series string, ref types.SnapSpec) types.SnapIdentity {
	identity := types.SnapIdentity{
		Name:    ref.Name,
		Track:   ref.Track,
		Channel: ref.Channel,
		Branch:  ref.Branch,
		Classic: ref.Classic,
	}
	if identity.Track == "" {
		identity.Track = types.DefaultTrack
	}
	if identity.Channel == "" {
		identity.Channel = types.DefaultChannel
	}
	if !ref.BranchSet {
		identity.Branch = "ubuntu-" + series
	}
	if ref.Track == "" && ref.Branch == "" && isBranchless(ref.Name) {
		identity.Branch = ""
	}
	return identity
}

func isBranchless(name string) bool {
	if branchlessBaseRegex.MatchString(name) {
		return true
	}
	_, ok := branchlessSnaps[name]
	return ok
}

// ParseSeedLine parses the part of a seed line that follows the snap marker.
func ParseSeedLine(ctx context.Context, series string, fragment string) (types.SnapIdentity, bool) {
	match := seedLineRegex.FindStringSubmatch(fragment)
	if match == nil {
		log.Ctx(ctx).Warn().Str("line", fragment).Msg("failed to extract snap data from seed line")
		return types.SnapIdentity{}, false
	}
	group := func(name string) string {
		return match[seedLineRegex.SubexpIndex(name)]
	}
	ref := types.SnapSpec{
		Name:    group("name"),
		Track:   group("track"),
		Channel: group("channel"),
		Branch:  group("branch"),
		Classic: group("classic") != "",
	}
	// A channel without a branch means "no branch", not "default branch".
	ref.BranchSet = ref.Branch != "" || ref.Channel != ""
	return NewSnapIdentity(series, ref), true
}
