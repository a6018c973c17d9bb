package aggregate

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/nao1215/scanbench/internal/config"
	"github.com/nao1215/scanbench/internal/model"
	"github.com/nao1215/scanbench/internal/parser"
	"golang.org/x/sync/errgroup"
)

// ErrNoInput is returned when neither the manifest nor any artifact could be
// read. With no data source at all there is nothing to report, so this is
// the single hard failure of the aggregation stage.
var ErrNoInput = errors.New("no manifest and no readable artifacts")

// Aggregator collects parsed metrics for all configured test cases into one
// result set. It exclusively owns Result construction; downstream renderers
// only ever read.
type Aggregator struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets a custom logger for the aggregator.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = logger
	}
}

// New creates an Aggregator for the given configuration.
func New(cfg *config.Config, opts ...Option) *Aggregator {
	a := &Aggregator{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Run parses all configured artifacts and returns the merged result set.
//
// Artifacts are parsed concurrently up to Config.Parallelism; each triple
// writes into its own slot, so the fixed tool/scenario ordering of the
// result never depends on parse completion order.
func (a *Aggregator) Run(ctx context.Context) (*model.Result, error) {
	manifest := a.loadManifest()

	samples := make([]model.Sample, len(a.cfg.Targets))
	readable := make([]bool, len(a.cfg.Targets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Parallelism)
	for i, target := range a.cfg.Targets {
		i, target := i, target
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples[i], readable[i] = a.parseArtifact(target)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Only cancellation reaches here; per-artifact failures degrade to
		// empty samples inside parseArtifact.
		return nil, err
	}

	anyReadable := false
	for _, ok := range readable {
		if ok {
			anyReadable = true
			break
		}
	}
	if manifest == nil && !anyReadable {
		return nil, ErrNoInput
	}

	merged := make(map[model.PairKey]model.Sample, len(a.cfg.Targets))
	for i, target := range a.cfg.Targets {
		key := model.PairKey{Tool: target.Tool, Scenario: target.Scenario}
		merged[key] = mergeSample(samples[i], manifest, target.ManifestKey)
	}

	result := model.NewResult(a.cfg.Tools, a.cfg.Scenarios, merged)
	result.Baseline = a.cfg.Baseline
	if manifest != nil {
		result.Timestamp = manifest.Timestamp
		result.Target = manifest.Target
	} else {
		result.Degraded = true
	}
	return result, nil
}

// loadManifest reads the summary manifest. Absence or decode failure is not
// fatal: aggregation proceeds in degraded mode on raw artifacts alone.
func (a *Aggregator) loadManifest() *parser.Manifest {
	path := a.cfg.ManifestPath()
	manifest, err := parser.LoadManifest(path)
	if err != nil {
		if os.IsNotExist(err) {
			a.logger.Warn("manifest not found, continuing with raw artifacts only",
				"path", path,
			)
		} else {
			a.logger.Warn("manifest unreadable, continuing with raw artifacts only",
				"path", path,
				"error", err,
			)
		}
		return nil
	}
	return manifest
}

// parseArtifact reads and parses one target's artifact file.
// A missing or unreadable file yields an empty sample and a warning; the
// report continues with placeholders for that cell.
func (a *Aggregator) parseArtifact(target config.Target) (model.Sample, bool) {
	p, err := parser.ForFormat(target.Format)
	if err != nil {
		a.logger.Warn("skipping artifact with unknown format",
			"tool", target.Tool,
			"scenario", target.Scenario,
			"format", string(target.Format),
		)
		return model.Sample{}, false
	}

	path := a.cfg.ArtifactPath(target)
	data, err := os.ReadFile(path) //nolint:gosec // Artifact paths come from configuration
	if err != nil {
		a.logger.Warn("artifact not readable",
			"tool", target.Tool,
			"scenario", target.Scenario,
			"path", path,
			"error", err,
		)
		return model.Sample{}, false
	}

	return p.Parse(string(data)), true
}

// mergeSample applies the manifest's values over the raw-artifact sample.
// The manifest wins field by field, not record by record: it carries time and
// open-port counts, so those override; memory and CPU only ever come from the
// raw profiling artifact.
func mergeSample(raw model.Sample, manifest *parser.Manifest, key string) model.Sample {
	if manifest == nil {
		return raw
	}
	entry, ok := manifest.Entry(key)
	if !ok {
		return raw
	}
	if entry.TimeMS != nil {
		raw.ElapsedSeconds = model.SomeFloat(float64(*entry.TimeMS) / 1000.0)
	}
	if entry.OpenPorts != nil {
		raw.OpenPorts = model.SomeInt(*entry.OpenPorts)
	}
	return raw
}
