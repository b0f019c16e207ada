package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadLevel parses a TMX file. Wall rectangles come from the Walls object
// group in file order, which is also the order wall contact is resolved in.
// It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load %s: %w", tmxPath, err)
	}

	data := &LevelData{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Solid tiles become ground
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != SolidTileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				data.Ground = append(data.Ground, Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case WallGroup:
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroundGroup:
			for _, o := range og.Objects {
				data.Ground = append(data.Ground, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case SpawnGroup:
			if len(og.Objects) > 0 {
				data.Spawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	if len(data.Walls) == 0 {
		return data, fmt.Errorf("leveldata: %s: %w", tmxPath, ErrNoWalls)
	}
	return data, nil
}

// Overlapping reports pairs of wall indexes whose rectangles overlap. Wall
// contact picks the first match in order, so valid levels return none.
func (d *LevelData) Overlapping() [][2]int {
	var out [][2]int
	for i := 0; i < len(d.Walls); i++ {
		for j := i + 1; j < len(d.Walls); j++ {
			a, b := d.Walls[i], d.Walls[j]
			if a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Sandbox returns the built-in level: a floor, both outer walls and a
// free-standing pillar to wall-run up.
func Sandbox(width, height int) *LevelData {
	w, h := float64(width), float64(height)
	const thick = 16
	return &LevelData{
		Ground: []Rect{{X: 0, Y: h - 2*thick, W: w, H: 2 * thick}},
		Walls: []Rect{
			{X: 0, Y: 0, W: thick, H: h - 2*thick},
			{X: w - thick, Y: 0, W: thick, H: h - 2*thick},
			{X: w/2 - thick/2, Y: h / 3, W: thick, H: h - h/3 - 2*thick},
		},
		Spawn:     SpawnPoint{X: 4 * thick, Y: h - 6*thick},
		MapWidth:  width,
		MapHeight: height,
	}
}
