// Package config provides board-preset management for hyperfour.
//
// The config package handles:
//   - Loading named board presets from JSON files
//   - Preset validation (dimension count and sizes)
//   - Built-in default presets
//   - Preset discovery and listing
//
// Preset Format:
//
// Presets are stored as JSON files in the configs directory. Each preset
// names a board shape:
//
//	{
//	  "name": "classic",
//	  "description": "The traditional 7x6 board",
//	  "dimensions": [7, 6]
//	}
//
// The last dimension is the drop axis.
//
// Usage:
//
//	manager := config.NewManager("configs")
//
//	preset, err := manager.Load("classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := engine.NewGame(preset.Dimensions)
package config
