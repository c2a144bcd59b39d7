package es2

import (
	"path/filepath"
	"testing"

	"binary-play/types"

	"github.com/spf13/afero"
)

func TestFindAssets(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/roms/nes/media/mario/BoxFront.PNG", "img")
	writeFile(t, fs, "/roms/nes/media/mario/video.mp4", "vid")
	writeFile(t, fs, "/roms/nes/media/mario/video.png", "wrong kind")
	writeFile(t, fs, "/es/downloaded_images/nes/mario-image.jpg", "img")
	writeFile(t, fs, "/es/downloaded_images/nes/mario-marquee.png", "img")
	writeFile(t, fs, "/es/downloaded_images/nes/zelda-image.jpg", "img")

	platform := &types.Platform{Name: "nes", RomDirPath: "/roms/nes", RomFilters: []string{"*.nes"}}
	f := NewAssetFinder(fs, "/es", nil)

	mario := &types.Game{Path: "/roms/nes/mario.nes", Basename: "mario", PlatformName: "nes"}
	assets, ok := f.FindAssets(platform, mario)
	if !ok {
		t.Fatalf("Expected assets for mario")
	}
	if assets.BoxFront != filepath.Join("/roms/nes/media/mario", "BoxFront.PNG") {
		t.Errorf("Expected the media directory to win for box art, got %s", assets.BoxFront)
	}
	if assets.Video != filepath.Join("/roms/nes/media/mario", "video.mp4") {
		t.Errorf("Expected video.mp4, got %s", assets.Video)
	}
	if assets.Marquee != filepath.Join("/es/downloaded_images/nes", "mario-marquee.png") {
		t.Errorf("Expected the downloaded marquee, got %s", assets.Marquee)
	}
	if assets.Screenshot != "" || assets.Music != "" {
		t.Errorf("Expected absent assets to stay empty, got %+v", assets)
	}

	zelda := &types.Game{Path: "/roms/nes/zelda.nes", Basename: "zelda", PlatformName: "nes"}
	assets, ok = f.FindAssets(platform, zelda)
	if !ok || assets.BoxFront != filepath.Join("/es/downloaded_images/nes", "zelda-image.jpg") {
		t.Errorf("Expected downloaded box art for zelda, got %+v", assets)
	}

	unknown := &types.Game{Path: "/roms/nes/unknown.nes", Basename: "unknown", PlatformName: "nes"}
	if assets, ok := f.FindAssets(platform, unknown); ok || !assets.IsEmpty() {
		t.Errorf("Expected no assets for unknown, got %+v", assets)
	}
}

func TestFindAssetsWithoutDataDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/downloaded_images/nes/mario-image.jpg", "img")

	platform := &types.Platform{Name: "nes", RomDirPath: "/roms/nes", RomFilters: []string{"*.nes"}}
	game := &types.Game{Path: "/roms/nes/mario.nes", Basename: "mario", PlatformName: "nes"}

	if _, ok := NewAssetFinder(fs, "", nil).FindAssets(platform, game); ok {
		t.Errorf("Expected no lookup outside the media directory without a data dir")
	}
}

func TestAssetListingCache(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "/roms/nes/media/mario/logo.png", "img")
	f := NewAssetFinder(fs, "", nil)

	first := f.listing("/roms/nes/media/mario")
	writeFile(t, fs, "/roms/nes/media/mario/marquee.png", "img")
	second := f.listing("/roms/nes/media/mario")

	if len(first) != 1 || len(second) != 1 {
		t.Errorf("Expected the cached listing to be reused, got %d then %d entries", len(first), len(second))
	}
	if missing := f.listing("/roms/nes/media/nobody"); len(missing) != 0 {
		t.Errorf("Expected an empty listing for a missing directory")
	}
}

func TestNewAssetFinderCacheSize(t *testing.T) {
	if _, err := newAssetFinder(afero.NewMemMapFs(), "", nil, 0); err == nil {
		t.Errorf("Expected an error for a zero cache size")
	}
	if f, err := newAssetFinder(afero.NewMemMapFs(), "", nil, listingCacheSize); err != nil || f == nil {
		t.Errorf("Expected a finder, got %v", err)
	}
}
