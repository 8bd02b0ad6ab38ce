package adapters

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	debversion "github.com/knqyf263/go-deb-version"
	"github.com/rs/zerolog/log"

	"snap-seed-sync/internal/ports"
	"snap-seed-sync/internal/shared"
)

const DefaultDistroInfo = "distro-info"

// DistroInfoAdapter answers release questions by running distro-info.
type DistroInfoAdapter struct {
	Binary string
}

func NewDistroInfoAdapter(binary string) DistroInfoAdapter {
	if strings.TrimSpace(binary) == "" {
		binary = DefaultDistroInfo
	}
	return DistroInfoAdapter{Binary: binary}
}

func (a DistroInfoAdapter) AllReleases(ctx context.Context) ([]string, error) {
	output, err := a.run(ctx, "--all")
	if err != nil {
		return nil, err
	}
	return shared.OutputLines(output), nil
}

func (a DistroInfoAdapter) SupportedReleases(ctx context.Context) ([]string, error) {
	output, err := a.run(ctx, "--supported")
	if err != nil {
		return nil, err
	}
	return shared.OutputLines(output), nil
}

func (a DistroInfoAdapter) DevelRelease(ctx context.Context) (string, error) {
	output, err := a.run(ctx, "--devel")
	if err != nil {
		return "", err
	}
	lines := shared.OutputLines(output)
	if len(lines) == 0 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no development release reported by distro-info")
	}
	return strings.TrimSpace(lines[0]), nil
}

// SeriesVersion returns the numeric version of a release, e.g. "24.04" for
// noble.
func (a DistroInfoAdapter) SeriesVersion(ctx context.Context, release string) (string, error) {
	output, err := a.run(ctx, "--series", release, "-r")
	if err != nil {
		return "", err
	}
	version := strings.TrimSuffix(strings.TrimSpace(string(output)), " LTS")
	if fields := strings.Fields(version); len(fields) > 0 {
		version = fields[0]
	}
	if _, err := debversion.NewVersion(version); err != nil || version == "" {
		if err == nil {
			err = errors.New("empty version")
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unexpected series version for " + release + ": " + version).
			WithCause(err)
	}
	log.Debug().Str("release", release).Str("series", version).Msg("series version resolved")
	return version, nil
}

func (a DistroInfoAdapter) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, a.Binary, args...)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = shared.CommandError(exitErr.Stderr, err)
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("distro-info " + strings.Join(args, " ") + " failed").
			WithCause(err)
	}
	return output, nil
}

var _ ports.ReleaseInfoPort = DistroInfoAdapter{}
