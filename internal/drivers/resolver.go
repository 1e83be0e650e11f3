package drivers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/blue-build/bluebuild/internal/logger"
)

// CI indicator variables. Only presence matters, never the value.
const (
	gitlabCIEnv      = "GITLAB_CI"
	githubActionsEnv = "GITHUB_ACTIONS"
)

// NoDriverError reports that no backend in a category satisfied its
// condition. It is a configuration error: retrying cannot succeed until
// the operator installs one of the listed tools.
type NoDriverError struct {
	Category     string
	Requirements []string
}

func (e *NoDriverError) Error() string {
	return fmt.Sprintf("could not determine %s driver: need one of %s",
		e.Category, strings.Join(e.Requirements, ", "))
}

// Options seeds a Resolver with explicit selections. A zero value for a
// category means "detect". Explicit selections are accepted unconditionally
// and cached without probing: operator intent always wins.
type Options struct {
	Inspect InspectDriver
	Build   BuildDriver
	Signing SigningDriver
	Run     RunDriver
	CI      CIDriver

	// Sigstore adds the in-process sigstore signer to the signing
	// candidate set. Off by default: cosign is then always the choice.
	Sigstore bool

	// ProbeTimeout bounds each external version query. Zero uses
	// DefaultProbeTimeout.
	ProbeTimeout time.Duration
}

// Resolver picks one backend per category and memoizes the choice. Each
// category resolves at most once per Resolver, even under concurrent
// first use; repeated calls return the cached result without re-probing.
// Failed resolutions are cached the same way. Construct with NewResolver.
type Resolver struct {
	opts      Options
	prober    Prober
	lookupEnv func(key string) (string, bool)

	inspectOnce sync.Once
	inspect     InspectDriver
	inspectErr  error

	buildOnce sync.Once
	build     BuildDriver
	buildErr  error

	signingOnce sync.Once
	signing     SigningDriver

	runOnce sync.Once
	run     RunDriver
	runErr  error

	ciOnce sync.Once
	ci     CIDriver
}

// ResolverOption replaces a Resolver collaborator. Used by tests to
// inject fake probes and environments.
type ResolverOption func(*Resolver)

// WithProber replaces the host-PATH prober.
func WithProber(p Prober) ResolverOption {
	return func(r *Resolver) { r.prober = p }
}

// WithLookupEnv replaces the environment lookup used for CI detection.
func WithLookupEnv(fn func(key string) (string, bool)) ResolverOption {
	return func(r *Resolver) { r.lookupEnv = fn }
}

// NewResolver creates a Resolver for the given options.
func NewResolver(opts Options, resolverOpts ...ResolverOption) *Resolver {
	r := &Resolver{
		opts:      opts,
		prober:    NewProber(opts.ProbeTimeout),
		lookupEnv: os.LookupEnv,
	}
	for _, o := range resolverOpts {
		o(r)
	}
	return r
}

// candidate pairs a driver value with the condition that must hold for it
// to be chosen. Candidates are tried in order; the first whose condition
// holds wins and later conditions are never evaluated. Ties are broken by
// position alone.
type candidate[T ~string] struct {
	driver T
	usable func(ctx context.Context) bool
}

func firstUsable[T ~string](ctx context.Context, candidates []candidate[T]) (T, bool) {
	for _, c := range candidates {
		if c.usable(ctx) {
			return c.driver, true
		}
	}
	var zero T
	return zero, false
}

// Inspect resolves the image inspection backend: skopeo, then docker,
// then podman, whichever is first on PATH.
func (r *Resolver) Inspect(ctx context.Context) (InspectDriver, error) {
	r.inspectOnce.Do(func() {
		if d := r.opts.Inspect; d != "" {
			logger.Debug().Str("driver", string(d)).Msg("inspect driver set explicitly")
			r.inspect = d
			return
		}
		d, ok := firstUsable(ctx, []candidate[InspectDriver]{
			{InspectDriverSkopeo, func(context.Context) bool { return skopeoBackend.exists(r.prober) }},
			{InspectDriverDocker, func(context.Context) bool { return dockerBackend.exists(r.prober) }},
			{InspectDriverPodman, func(context.Context) bool { return podmanBackend.exists(r.prober) }},
		})
		if !ok {
			r.inspectErr = &NoDriverError{
				Category:     "inspect",
				Requirements: []string{"skopeo", "docker", "podman"},
			}
			return
		}
		logger.Debug().Str("driver", string(d)).Msg("inspect driver detected")
		r.inspect = d
	})
	return r.inspect, r.inspectErr
}

// Build resolves the image build backend: docker, then podman, then
// buildah, whichever is first both present and at a supported version.
func (r *Resolver) Build(ctx context.Context) (BuildDriver, error) {
	r.buildOnce.Do(func() {
		if d := r.opts.Build; d != "" {
			logger.Debug().Str("driver", string(d)).Msg("build driver set explicitly")
			r.build = d
			return
		}
		d, ok := firstUsable(ctx, []candidate[BuildDriver]{
			{BuildDriverDocker, func(ctx context.Context) bool { return dockerBackend.supported(ctx, r.prober) }},
			{BuildDriverPodman, func(ctx context.Context) bool { return podmanBackend.supported(ctx, r.prober) }},
			{BuildDriverBuildah, func(ctx context.Context) bool { return buildahBackend.supported(ctx, r.prober) }},
		})
		if !ok {
			r.buildErr = &NoDriverError{
				Category: "build",
				Requirements: []string{
					dockerBackend.requirement(),
					podmanBackend.requirement(),
					buildahBackend.requirement(),
				},
			}
			return
		}
		logger.Debug().Str("driver", string(d)).Msg("build driver detected")
		r.build = d
	})
	return r.build, r.buildErr
}

// Run resolves the container run backend: docker, then podman, whichever
// is first both present and at a supported version.
func (r *Resolver) Run(ctx context.Context) (RunDriver, error) {
	r.runOnce.Do(func() {
		if d := r.opts.Run; d != "" {
			logger.Debug().Str("driver", string(d)).Msg("run driver set explicitly")
			r.run = d
			return
		}
		d, ok := firstUsable(ctx, []candidate[RunDriver]{
			{RunDriverDocker, func(ctx context.Context) bool { return dockerBackend.supported(ctx, r.prober) }},
			{RunDriverPodman, func(ctx context.Context) bool { return podmanBackend.supported(ctx, r.prober) }},
		})
		if !ok {
			// Only the candidates Run actually considers are listed.
			r.runErr = &NoDriverError{
				Category: "run",
				Requirements: []string{
					dockerBackend.requirement(),
					podmanBackend.requirement(),
				},
			}
			return
		}
		logger.Debug().Str("driver", string(d)).Msg("run driver detected")
		r.run = d
	})
	return r.run, r.runErr
}

// Signing resolves the image signing backend. With the sigstore capability
// enabled, the in-process signer is chosen when no cosign binary is
// installed; cosign wins whenever present. Without the capability, cosign
// is chosen with no probe at all. Signing always resolves.
func (r *Resolver) Signing() SigningDriver {
	r.signingOnce.Do(func() {
		if d := r.opts.Signing; d != "" {
			logger.Debug().Str("driver", string(d)).Msg("signing driver set explicitly")
			r.signing = d
			return
		}
		if r.opts.Sigstore && !cosignBackend.exists(r.prober) {
			r.signing = SigningDriverSigstore
			return
		}
		r.signing = SigningDriverCosign
	})
	return r.signing
}

// CI resolves the CI context from indicator variables: gitlab when only
// GITLAB_CI is set, github when only GITHUB_ACTIONS is set, local
// otherwise (including when both are set). CI always resolves.
func (r *Resolver) CI() CIDriver {
	r.ciOnce.Do(func() {
		if d := r.opts.CI; d != "" {
			logger.Debug().Str("driver", string(d)).Msg("ci driver set explicitly")
			r.ci = d
			return
		}
		_, gitlab := r.lookupEnv(gitlabCIEnv)
		_, github := r.lookupEnv(githubActionsEnv)
		switch {
		case gitlab && !github:
			r.ci = CIDriverGitlab
		case github && !gitlab:
			r.ci = CIDriverGithub
		default:
			r.ci = CIDriverLocal
		}
		logger.Debug().Str("driver", string(r.ci)).Msg("ci driver detected")
	})
	return r.ci
}
