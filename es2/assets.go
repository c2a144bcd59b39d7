package es2

import (
	"binary-play/constants"
	"binary-play/types"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
)

var (
	imageExts = []string{".png", ".jpg", ".jpeg", ".webp", ".gif"}
	videoExts = []string{".mp4", ".webm", ".mkv", ".avi"}
	audioExts = []string{".mp3", ".ogg", ".wav", ".flac"}
)

// assetKind describes where one asset field is looked up. mediaNames are file
// stems inside <rom dir>/media/<game>/, suffixes follow "<game>-" inside
// <dataDir>/downloaded_images/<platform>/.
type assetKind struct {
	field      func(*types.GameAssets) *string
	mediaNames []string
	suffixes   []string
	exts       []string
}

var assetKinds = []assetKind{
	{func(a *types.GameAssets) *string { return &a.BoxFront }, []string{"boxFront", "box_front", "boxart", "box2dfront"}, []string{"image", "boxart"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.BoxBack }, []string{"boxBack", "box_back"}, []string{"back"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.BoxSpine }, []string{"boxSpine", "box_spine"}, nil, imageExts},
	{func(a *types.GameAssets) *string { return &a.Cartridge }, []string{"cartridge", "cart", "disc"}, nil, imageExts},
	{func(a *types.GameAssets) *string { return &a.Logo }, []string{"logo", "wheel"}, []string{"logo", "wheel"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.Marquee }, []string{"marquee"}, []string{"marquee"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.Screenshot }, []string{"screenshot", "screen"}, []string{"screenshot"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.TitleScreen }, []string{"titlescreen", "title"}, []string{"titlescreen"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.Background }, []string{"background", "fanart"}, []string{"fanart"}, imageExts},
	{func(a *types.GameAssets) *string { return &a.Video }, []string{"video"}, []string{"video"}, videoExts},
	{func(a *types.GameAssets) *string { return &a.Music }, []string{"music"}, nil, audioExts},
}

const listingCacheSize = 512

// AssetFinder locates scraped media for games.
type AssetFinder struct {
	fs       afero.Fs
	dataDir  string
	listings *lru.Cache[string, map[string]string]
	log      Logger
}

// NewAssetFinder creates an AssetFinder. Directory listings are cached for
// the finder's lifetime, so a finder should not outlive a discovery run.
func NewAssetFinder(fs afero.Fs, dataDir string, log Logger) *AssetFinder {
	f, err := newAssetFinder(fs, dataDir, log, listingCacheSize)
	if err != nil {
		panic("es2: " + err.Error())
	}
	return f
}

func newAssetFinder(fs afero.Fs, dataDir string, log Logger, cacheSize int) (*AssetFinder, error) {
	listings, err := lru.New[string, map[string]string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing cache: %w", err)
	}
	return &AssetFinder{
		fs:       fs,
		dataDir:  dataDir,
		listings: listings,
		log:      orNop(log),
	}, nil
}

// FindAssets looks up every asset kind for game, first in the per-game media
// directory next to the ROMs, then in the scraper's downloaded_images
// directory. File names are compared case-insensitively.
func (f *AssetFinder) FindAssets(platform *types.Platform, game *types.Game) (types.GameAssets, bool) {
	var assets types.GameAssets
	if game.Basename == "" {
		return assets, false
	}

	mediaDir := filepath.Join(platform.RomDirPath, constants.ESMediaDir, game.Basename)
	downloadDir := ""
	if f.dataDir != "" {
		downloadDir = filepath.Join(f.dataDir, constants.ESDownloadedImages, platform.Name)
	}

	found := false
	for _, kind := range assetKinds {
		path := f.lookup(mediaDir, kind.mediaNames, kind.exts)
		if path == "" && downloadDir != "" {
			stems := make([]string, len(kind.suffixes))
			for i, suffix := range kind.suffixes {
				stems[i] = game.Basename + "-" + suffix
			}
			path = f.lookup(downloadDir, stems, kind.exts)
		}
		if path != "" {
			*kind.field(&assets) = path
			found = true
		}
	}
	return assets, found
}

func (f *AssetFinder) lookup(dir string, stems, exts []string) string {
	if len(stems) == 0 {
		return ""
	}
	listing := f.listing(dir)
	if len(listing) == 0 {
		return ""
	}
	for _, stem := range stems {
		for _, ext := range exts {
			if name, ok := listing[strings.ToLower(stem+ext)]; ok {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}

// listing maps lower-cased file names in dir to their on-disk names. A
// missing directory is cached as an empty listing.
func (f *AssetFinder) listing(dir string) map[string]string {
	if cached, ok := f.listings.Get(dir); ok {
		return cached
	}

	files := map[string]string{}
	entries, err := afero.ReadDir(f.fs, dir)
	if err != nil && !os.IsNotExist(err) {
		f.log.LogErrorf("FindAssets: cannot read %s: %v", dir, err)
	}
	if err == nil {
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			files[strings.ToLower(e.Name())] = e.Name()
		}
	}
	f.listings.Add(dir, files)
	return files
}
