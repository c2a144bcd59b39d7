package library

import (
	"binary-play/constants"
	"binary-play/types"
	"context"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const defaultMaxDepth = constants.DefaultMaxDepth

// PlatformSource provides the configured platforms, each with no games.
type PlatformSource interface {
	ReadPlatforms() ([]*types.Platform, error)
}

// MetadataReader returns metadata for a platform's games, keyed by Game.Path.
// Games without a record are absent from the map.
type MetadataReader interface {
	ReadMetadata(platform *types.Platform) map[string]types.GameMetadata
}

// AssetFinder returns the media files of a single game.
type AssetFinder interface {
	FindAssets(platform *types.Platform, game *types.Game) (types.GameAssets, bool)
}

// ConfigProvider defines the configuration needed for discovery.
type ConfigProvider interface {
	GetWorkers() int
}

// UIProvider defines logging and event emission.
type UIProvider interface {
	LogInfof(format string, args ...interface{})
	LogErrorf(format string, args ...interface{})
	EventsEmit(eventName string, args ...interface{})
}

// ScanProgress is the payload of the scan-progress event.
type ScanProgress struct {
	Platform string
	Games    int
	State    DirState
}

// Service discovers the local game library.
type Service struct {
	config   ConfigProvider
	source   PlatformSource
	scanner  *Scanner
	metadata MetadataReader
	assets   AssetFinder
	ui       UIProvider
}

// New creates a new Library service. metadata and assets may be nil, which
// skips the corresponding enrichment pass.
func New(cfg ConfigProvider, source PlatformSource, scanner *Scanner, metadata MetadataReader, assets AssetFinder, ui UIProvider) *Service {
	if ui == nil {
		ui = nopUI{}
	}
	return &Service{
		config:   cfg,
		source:   source,
		scanner:  scanner,
		metadata: metadata,
		assets:   assets,
		ui:       ui,
	}
}

// Find fills lib with every platform that has at least one game, each game
// enriched with whatever metadata and assets could be found. Nothing is
// reported as an error: missing data is simply absent from the result.
//
// lib must be empty; Find panics otherwise.
func (s *Service) Find(ctx context.Context, lib *types.Library) {
	if lib == nil || len(lib.Platforms) != 0 {
		panic("library: Find requires an empty library")
	}

	platforms, err := s.source.ReadPlatforms()
	if err != nil {
		s.ui.LogErrorf("Find: failed to read platforms: %v", err)
		return
	}
	lib.Platforms = platforms

	states := make([]DirState, len(lib.Platforms))
	s.forEachPlatform(ctx, lib.Platforms, func(i int, p *types.Platform) {
		games, state := s.scanner.Scan(ctx, p)
		p.Games = games
		states[i] = state
		s.ui.EventsEmit(constants.EventScanProgress, ScanProgress{Platform: p.Name, Games: len(games), State: state})
	})

	lib.Platforms = s.removeEmptyPlatforms(lib.Platforms, states)

	s.forEachPlatform(ctx, lib.Platforms, func(_ int, p *types.Platform) {
		s.findGameMetadata(p)
		s.findGameAssets(ctx, p)
	})

	s.ui.LogInfof("Find: %d platforms, %d games", len(lib.Platforms), lib.GameCount())
	s.ui.EventsEmit(constants.EventLibraryReady, lib.GameCount())
}

func (s *Service) removeEmptyPlatforms(platforms []*types.Platform, states []DirState) []*types.Platform {
	kept := lo.Filter(platforms, func(p *types.Platform, i int) bool {
		switch states[i] {
		case DirMissing:
			s.ui.LogErrorf("Find: removing %s, ROM directory %s is missing or unreadable", p.Name, p.RomDirPath)
		case DirEmpty:
			s.ui.LogInfof("Find: removing %s, no games in %s", p.Name, p.RomDirPath)
		}
		return len(p.Games) > 0
	})
	return kept
}

func (s *Service) findGameMetadata(p *types.Platform) {
	if s.metadata == nil {
		return
	}
	found := s.metadata.ReadMetadata(p)
	for _, game := range p.Games {
		if md, ok := found[game.Path]; ok {
			game.Metadata = md
		}
	}
}

func (s *Service) findGameAssets(ctx context.Context, p *types.Platform) {
	if s.assets == nil {
		return
	}
	for _, game := range p.Games {
		if ctx.Err() != nil {
			return
		}
		if assets, ok := s.assets.FindAssets(p, game); ok {
			game.Assets = assets
		}
	}
}

// forEachPlatform runs fn once per platform, one worker per platform up to
// the configured limit, and returns when all calls are done.
func (s *Service) forEachPlatform(ctx context.Context, platforms []*types.Platform, fn func(int, *types.Platform)) {
	var g errgroup.Group
	g.SetLimit(s.workers())
	for i, p := range platforms {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			fn(i, p)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *Service) workers() int {
	if s.config != nil {
		if n := s.config.GetWorkers(); n > 0 {
			return n
		}
	}
	return runtime.NumCPU()
}

type nopUI struct{}

func (nopUI) LogInfof(string, ...interface{})   {}
func (nopUI) LogErrorf(string, ...interface{})  {}
func (nopUI) EventsEmit(string, ...interface{}) {}
