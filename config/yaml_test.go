package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gifmaker/tileset"

	"github.com/alecthomas/kong"
)

type testCLI struct {
	Workers int `default:"1"`
	Tileset struct {
		Path         string           `arg:""`
		Duration     float64          `name:"duration" default:"1.0"`
		PreviewWidth int              `name:"preview_width" default:"-1"`
		Gridsize     tileset.GridFlag `name:"gridsize" default:"2,2"`
		BgColor      string           `name:"bg_color" default:"MAGENTA"`
	} `cmd:""`
}

func parse(t *testing.T, data string, args ...string) *testCLI {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gifmaker.yml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var cli testCLI
	parser, err := kong.New(&cli, kong.Configuration(YAML, path))
	if err != nil {
		t.Fatalf("kong.New error: %v", err)
	}
	if _, err := parser.Parse(args); err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	return &cli
}

func TestYAMLTopLevel(t *testing.T) {
	cli := parse(t, `
workers: 4
duration: 2.5
preview-width: 200
`, "tileset", "sheet.png")

	if cli.Workers != 4 {
		t.Errorf("workers = %d, want 4", cli.Workers)
	}
	if cli.Tileset.Duration != 2.5 {
		t.Errorf("duration = %g, want 2.5", cli.Tileset.Duration)
	}
	if cli.Tileset.PreviewWidth != 200 {
		t.Errorf("preview_width = %d, want 200", cli.Tileset.PreviewWidth)
	}
}

func TestYAMLCommandSection(t *testing.T) {
	cli := parse(t, `
bg_color: BLUE
tileset:
  bg_color: white
  gridsize: [3, 2]
`, "tileset", "sheet.png")

	if cli.Tileset.BgColor != "white" {
		t.Errorf("bg_color = %q, want the tileset section value", cli.Tileset.BgColor)
	}
	if cli.Tileset.Gridsize != (tileset.GridFlag{Columns: 3, Rows: 2}) {
		t.Errorf("gridsize = %+v, want 3x2", cli.Tileset.Gridsize)
	}
}

func TestYAMLFlagsWin(t *testing.T) {
	cli := parse(t, "duration: 3\n", "tileset", "sheet.png", "--duration", "0.5")
	if cli.Tileset.Duration != 0.5 {
		t.Errorf("duration = %g, want command line value 0.5", cli.Tileset.Duration)
	}
}

func TestYAMLEmptyFile(t *testing.T) {
	cli := parse(t, "", "tileset", "sheet.png")
	if cli.Tileset.BgColor != "MAGENTA" {
		t.Errorf("bg_color = %q, want default", cli.Tileset.BgColor)
	}
}

func TestYAMLInvalid(t *testing.T) {
	if _, err := YAML(strings.NewReader("duration: [1, 2")); err == nil {
		t.Fatal("expected decode error")
	}
}
