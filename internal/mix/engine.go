// Package mix wires the dataset, generator, storage, card renderer and
// advisor into one engine serving the CLI and the TUI. Construction
// loads the dataset and opens local state; every operation after that
// is a self-contained synchronous call.
package mix

import (
	"math/rand"
	"time"

	"mixmaster/internal/advisor"
	"mixmaster/internal/cards"
	"mixmaster/internal/config"
	"mixmaster/internal/dataset"
	"mixmaster/internal/generator"
	"mixmaster/internal/logging"
	"mixmaster/internal/output"
	"mixmaster/internal/paths"
	"mixmaster/internal/storage"
)

// Options adjust engine construction. Zero values defer to the config.
type Options struct {
	DataPath   string // overrides config dataset path
	StateDir   string // overrides the resolved state directory
	StylesPath string // optional style template override file
	Seed       int64  // fixed rand seed; 0 seeds from the clock
}

// Engine is the central coordinator for MixMaster operations.
type Engine struct {
	cfg    *config.Config
	logger *logging.Logger
	rng    *rand.Rand

	dataset   *dataset.Dataset
	db        *storage.DB
	favorites *storage.FavoriteRepository
	history   *storage.ExportHistoryRepository
	generator *generator.Generator
	advisor   *advisor.Advisor
	renderer  *cards.Renderer

	stateDir string
}

// NewEngine builds a ready engine: dataset loaded and validated, state
// database opened, generator and renderer constructed.
func NewEngine(cfg *config.Config, logger *logging.Logger, opts Options) (*Engine, error) {
	dataPath := opts.DataPath
	if dataPath == "" {
		dataPath = cfg.Dataset.Path
	}
	dataPath = paths.ExpandUser(dataPath)

	ds, err := dataset.Load(dataPath)
	if err != nil {
		return nil, err
	}

	stateDir := opts.StateDir
	if stateDir == "" {
		stateDir, err = paths.EnsureStateDir()
		if err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(stateDir, logger)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var gen *generator.Generator
	if opts.StylesPath != "" {
		gen, err = generator.NewFromFile(paths.ExpandUser(opts.StylesPath), rng)
	} else {
		gen, err = generator.New(rng)
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	renderer, err := cards.NewRenderer()
	if err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("Engine ready", map[string]interface{}{
		"dataset":  dataPath,
		"recipes":  ds.Count(),
		"stateDir": stateDir,
	})

	return &Engine{
		cfg:       cfg,
		logger:    logger,
		rng:       rng,
		dataset:   ds,
		db:        db,
		favorites: storage.NewFavoriteRepository(db),
		history:   storage.NewExportHistoryRepository(db),
		generator: gen,
		advisor:   advisor.New(rng),
		renderer:  renderer,
		stateDir:  stateDir,
	}, nil
}

// Close releases the state database.
func (e *Engine) Close() error {
	return e.db.Close()
}

// Dataset exposes the loaded collection for read-only use by the TUI.
func (e *Engine) Dataset() *dataset.Dataset { return e.dataset }

// StateDir returns the resolved state directory.
func (e *Engine) StateDir() string { return e.stateDir }

// meta stamps response provenance from the loaded dataset and the
// operation start time.
func (e *Engine) meta(start time.Time) output.Meta {
	return output.Meta{
		Dataset:     e.dataset.Path(),
		Recipes:     e.dataset.Count(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		ElapsedMs:   time.Since(start).Milliseconds(),
	}
}

// totalOz resolves a requested drink volume against the config default.
func (e *Engine) totalOz(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	if e.cfg.Generation.TotalOz > 0 {
		return e.cfg.Generation.TotalOz
	}
	return 0
}
