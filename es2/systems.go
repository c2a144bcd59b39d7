package es2

import (
	"binary-play/constants"
	"binary-play/types"
	"binary-play/utils"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
)

type systemList struct {
	Systems []system `xml:"system"`
}

type system struct {
	Name      string `xml:"name"`
	FullName  string `xml:"fullname"`
	Path      string `xml:"path"`
	Extension string `xml:"extension"`
	Command   string `xml:"command"`
	Theme     string `xml:"theme"`
}

// Systems reads platform definitions from es_systems.cfg.
type Systems struct {
	fs    afero.Fs
	paths []string
	log   Logger
}

// NewSystems creates a Systems reader that uses the first existing file of
// <dataDir>/es_systems.cfg and the system-wide /etc/emulationstation copy.
func NewSystems(fs afero.Fs, dataDir string, log Logger) *Systems {
	return &Systems{
		fs: fs,
		paths: []string{
			filepath.Join(dataDir, constants.ESSystemsFile),
			constants.ESGlobalSystemsFile,
		},
		log: orNop(log),
	}
}

// ReadPlatforms returns the platforms in file order. Systems without a ROM
// path or without extensions are skipped.
func (s *Systems) ReadPlatforms() ([]*types.Platform, error) {
	path, ok := firstExisting(s.fs, s.paths...)
	if !ok {
		return nil, fmt.Errorf("no %s found in %s: %w", constants.ESSystemsFile, strings.Join(s.paths, ", "), os.ErrNotExist)
	}

	var list systemList
	if err := readXML(s.fs, path, &list); err != nil {
		return nil, err
	}
	s.log.LogInfof("ReadPlatforms: %d systems in %s", len(list.Systems), path)

	var platforms []*types.Platform
	seen := map[string]bool{}
	for _, sys := range list.Systems {
		name := strings.TrimSpace(sys.Name)
		romDir := strings.TrimSpace(sys.Path)
		filters := extensionFilters(sys.Extension)

		switch {
		case name == "":
			s.log.LogErrorf("ReadPlatforms: skipping system without a name in %s", path)
			continue
		case seen[name]:
			s.log.LogErrorf("ReadPlatforms: skipping duplicate system %s", name)
			continue
		case romDir == "":
			s.log.LogErrorf("ReadPlatforms: skipping %s, no ROM path", name)
			continue
		case len(filters) == 0:
			s.log.LogErrorf("ReadPlatforms: skipping %s, no extensions", name)
			continue
		}
		seen[name] = true

		absDir, err := filepath.Abs(utils.ExpandHome(romDir))
		if err != nil {
			s.log.LogErrorf("ReadPlatforms: skipping %s, bad ROM path %q: %v", name, romDir, err)
			continue
		}

		displayName := strings.TrimSpace(sys.FullName)
		if displayName == "" {
			displayName = name
		}

		platforms = append(platforms, &types.Platform{
			Name:          name,
			DisplayName:   displayName,
			RomDirPath:    absDir,
			RomFilters:    filters,
			LaunchCommand: strings.TrimSpace(sys.Command),
			Theme:         strings.TrimSpace(sys.Theme),
		})
	}
	return platforms, nil
}

// extensionFilters turns ".smc .sfc .SFC" into ["*.smc", "*.sfc"]. Matching
// ignores case, so extensions differing only in case collapse into one.
func extensionFilters(extensions string) []string {
	filters := lo.Map(strings.Fields(extensions), func(ext string, _ int) string {
		ext = strings.ToLower(ext)
		if strings.HasPrefix(ext, ".") {
			return "*" + ext
		}
		return ext
	})
	return lo.Uniq(filters)
}
