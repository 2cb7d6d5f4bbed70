// Command hyperfour is a thin command-line caller around the game engine.
//
// It supports three subcommands:
//  1. "play" (default) – runs an interactive game on stdin
//  2. "presets" – lists available board presets
//  3. "directions" – prints the canonical direction-set size for a dimension count
//
// Flags control the board shape (by preset name or an explicit dimension
// vector), the preset directory, and debug logging.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"hyperfour/game/config"
	"hyperfour/game/engine"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "hyperfour"
)

// defaultConfigDir returns the default preset directory. It first honors
// the CONFIG_DIR environment variable, then falls back to "configs".
func defaultConfigDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cmd := rootCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// rootCommand builds the CLI command tree.
func rootCommand() *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "N-dimensional Connect Four",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				log.SetFlags(log.LstdFlags | log.Lshortfile)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			playCommand(),
			presetsCommand(),
			directionsCommand(),
		},
		DefaultCommand: "play",
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "Play an interactive game on stdin",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "preset", Value: "classic", Usage: "board preset name"},
			&cli.StringFlag{Name: "dims", Usage: "comma-separated dimension sizes (overrides --preset)"},
			&cli.StringFlag{Name: "config-dir", Value: defaultConfigDir(), Usage: "directory containing preset files"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dims, err := resolveDimensions(cmd)
			if err != nil {
				return err
			}

			game, err := engine.NewGame(dims)
			if err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}

			return runGame(game, os.Stdin)
		},
	}
}

func presetsCommand() *cli.Command {
	return &cli.Command{
		Name:  "presets",
		Usage: "List available board presets",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-dir", Value: defaultConfigDir(), Usage: "directory containing preset files"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			manager := config.NewManager(cmd.String("config-dir"))
			presets, err := manager.List()
			if err != nil {
				return err
			}
			for _, preset := range presets {
				fmt.Printf("%-12s %v  %s\n", preset.Name, preset.Dimensions, preset.Description)
			}
			return nil
		},
	}
}

func directionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "directions",
		Usage: "Print the canonical direction-set size for a dimension count",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "ndim", Aliases: []string{"n"}, Value: 2, Usage: "number of board dimensions"},
			&cli.BoolFlag{Name: "list", Usage: "print every direction vector"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ndim := int(cmd.Int("ndim"))
			if ndim < engine.MinDimensions {
				return fmt.Errorf("need at least %d dimensions, got %d", engine.MinDimensions, ndim)
			}
			directions := engine.CheckDirections(ndim)
			fmt.Printf("%d dimensions: %d check directions\n", ndim, len(directions))
			if cmd.Bool("list") {
				for _, dir := range directions {
					fmt.Printf("  %v\n", dir)
				}
			}
			return nil
		},
	}
}

// resolveDimensions picks the board shape from --dims if given, otherwise
// from the named preset.
func resolveDimensions(cmd *cli.Command) ([]int, error) {
	if spec := cmd.String("dims"); spec != "" {
		return parseDims(spec)
	}

	manager := config.NewManager(cmd.String("config-dir"))
	preset, err := manager.Load(cmd.String("preset"))
	if err != nil {
		return nil, err
	}
	return preset.Dimensions, nil
}

// parseDims parses a comma-separated dimension vector like "7,6" or
// "6,7,4,4".
func parseDims(spec string) ([]int, error) {
	parts := strings.Split(spec, ",")
	dims := make([]int, 0, len(parts))
	for _, part := range parts {
		size, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid dimension %q: %w", part, err)
		}
		dims = append(dims, size)
	}
	if len(dims) < engine.MinDimensions {
		return nil, fmt.Errorf("need at least %d dimensions, got %d", engine.MinDimensions, len(dims))
	}
	return dims, nil
}

// runGame drives one interactive game: red and yellow alternate, each move
// is a line of D-1 coordinates, and the loop ends on a win, a full board,
// or end of input.
func runGame(game *engine.Game, input io.Reader) error {
	dims := game.Board().Dimensions()
	ndim := len(dims)

	fmt.Printf("%s v%s — board %v, capacity %d\n", AppName, Version, dims, game.Capacity())
	fmt.Printf("Enter %d coordinates per move (all axes except the last); the disk drops along the last axis.\n", ndim-1)

	colors := []engine.Color{engine.Red, engine.Yellow}
	scanner := bufio.NewScanner(input)

	for {
		color := colors[game.DisksPlayed()%2]
		fmt.Printf("[round %d] %s> ", game.Round(), color)

		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		partial, err := parseMove(scanner.Text(), ndim-1)
		if err != nil {
			fmt.Printf("  %v\n", err)
			continue
		}
		if !inRange(partial, dims) {
			fmt.Printf("  coordinates out of range for board %v\n", dims)
			continue
		}

		won, err := game.PlayDisk(color, partial)
		switch {
		case errors.Is(err, engine.ErrAxisFull):
			fmt.Println("  that column is full, pick another position")
			continue
		case errors.Is(err, engine.ErrBoardFull):
			fmt.Printf("Board full after %d disks — draw.\n", game.DisksPlayed())
			return nil
		case err != nil:
			return err
		}

		if won {
			fmt.Printf("%s wins in round %d!\n", color, game.Round())
			return nil
		}
	}
}

// parseMove parses a move line of want coordinates, separated by spaces or
// commas.
func parseMove(line string, want int) ([]int, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) != want {
		return nil, fmt.Errorf("need %d coordinates, got %d", want, len(fields))
	}
	move := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q", field)
		}
		move[i] = v
	}
	return move, nil
}

// inRange checks a partial position against every axis except the drop
// axis, so the engine's insert contract is never violated by user input.
func inRange(partial []int, dims []int) bool {
	for i, v := range partial {
		if v < 0 || v >= dims[i] {
			return false
		}
	}
	return true
}
