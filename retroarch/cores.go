package retroarch

import (
	"path/filepath"
	"strings"
)

// CoreMap maps a lower-case ROM extension to its default libretro core.
var CoreMap = map[string]string{
	// Nintendo
	".nes": "nestopia_libretro",         // NES
	".fds": "nestopia_libretro",         // Famicom Disk System
	".sfc": "snes9x_libretro",           // SNES
	".smc": "snes9x_libretro",           // SNES
	".z64": "mupen64plus_next_libretro", // N64
	".n64": "mupen64plus_next_libretro", // N64
	".v64": "mupen64plus_next_libretro", // N64
	".gb":  "gambatte_libretro",         // GameBoy
	".gbc": "gambatte_libretro",         // GameBoy Color
	".gba": "mgba_libretro",             // GameBoy Advance
	".nds": "melonds_libretro",          // Nintendo DS
	".vb":  "beetle_vb_libretro",        // Virtual Boy

	// Sega
	".md":  "genesis_plus_gx_libretro", // MegaDrive / Genesis
	".smd": "genesis_plus_gx_libretro", // MegaDrive / Genesis
	".gen": "genesis_plus_gx_libretro", // MegaDrive / Genesis
	".sms": "genesis_plus_gx_libretro", // Master System
	".gg":  "genesis_plus_gx_libretro", // Game Gear
	".32x": "picodrive_libretro",       // 32X
	".msu": "genesis_plus_gx_libretro", // Sega CD
	".cue": "genesis_plus_gx_libretro", // Sega CD / Saturn / PS1 (Shared extension, mapped to GenPlus by default)

	// Sony
	".iso": "pcsx_rearmed_libretro", // PS1 / PSP (Shared, handling as PS1 by default)
	".bin": "pcsx_rearmed_libretro", // PS1
	".chd": "pcsx_rearmed_libretro", // PS1
	".cso": "ppsspp_libretro",       // PSP

	// Atari
	".a26": "stella_libretro",        // 2600
	".a52": "a5200_libretro",         // 5200
	".a78": "prosystem_libretro",     // 7800
	".lnx": "handy_libretro",         // Lynx
	".jag": "virtualjaguar_libretro", // Jaguar

	// Computers
	".d64": "vice_x64sc_libretro", // C64
	".prg": "vice_x64sc_libretro", // C64
	".t64": "vice_x64sc_libretro", // C64
	".adf": "puae_libretro",       // Amiga
	".uae": "puae_libretro",       // Amiga

	// Others
	".pce": "mednafen_pce_fast_libretro", // PC Engine
	".sgx": "mednafen_pce_fast_libretro", // PC Engine SuperGrafx
	".ws":  "mednafen_wswan_libretro",    // WonderSwan
	".wsc": "mednafen_wswan_libretro",    // WonderSwan Color
	".ngp": "mednafen_ngp_libretro",      // Neo Geo Pocket
	".ngc": "mednafen_ngp_libretro",      // Neo Geo Pocket Color
}

// CoreFor returns the default core for the extension of name, or "".
func CoreFor(name string) string {
	return CoreMap[strings.ToLower(filepath.Ext(name))]
}

// IsRom reports whether name has an extension with a known core.
func IsRom(name string) bool {
	_, ok := CoreMap[strings.ToLower(filepath.Ext(name))]
	return ok
}
