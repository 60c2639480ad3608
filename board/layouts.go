package board

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crossplay/bestword/config"
)

const (
	// ClassicLayout is the standard premium-square pattern with a plain
	// center square.
	ClassicLayout = "classic"
	// StandardLayout also makes the center a double-word square.
	StandardLayout = "standard"
)

var (
	// CrosswordGameBoard is a board for a fun Crossword Game, featuring lots
	// of wingos and blonks.
	CrosswordGameBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '   -   '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
	// ClassicBoard is CrosswordGameBoard without the center star.
	ClassicBoard = []string{
		`=  '   =   '  =`,
		` -   "   "   - `,
		`  -   ' '   -  `,
		`'  -   '   -  '`,
		`    -     -    `,
		` "   "   "   " `,
		`  '   ' '   '  `,
		`=  '       '  =`,
		`  '   ' '   '  `,
		` "   "   "   " `,
		`    -     -    `,
		`'  -   '   -  '`,
		`  -   ' '   -  `,
		` -   "   "   - `,
		`=  '   =   '  =`,
	}
)

var ErrUnknownLayout = errors.New("unknown board layout")

// MakeBonusMap builds a bonus map from layout rows, one character per
// square.
func MakeBonusMap(desc []string) (BonusMap, error) {
	if len(desc) != Dim {
		return nil, fmt.Errorf("layout has %d rows, expected %d", len(desc), Dim)
	}
	bm := BonusMap{}
	for y, row := range desc {
		runes := []rune(row)
		if len(runes) != Dim {
			return nil, fmt.Errorf("layout row %d has %d squares, expected %d", y+1, len(runes), Dim)
		}
		for x, c := range runes {
			switch b := BonusSquare(c); b {
			case NoBonus:
			case Bonus3WS, Bonus3LS, Bonus2LS, Bonus2WS:
				bm[Linear(x, y)] = b
			default:
				return nil, fmt.Errorf("layout row %d has unknown bonus %q", y+1, c)
			}
		}
	}
	return bm, nil
}

// NamedBonusMap returns one of the built-in layouts.
func NamedBonusMap(name string) (BonusMap, error) {
	switch name {
	case ClassicLayout, "":
		return MakeBonusMap(ClassicBoard)
	case StandardLayout:
		return MakeBonusMap(CrosswordGameBoard)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownLayout, name)
}

type layoutFile struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// LoadLayout reads a YAML file with a name and fifteen layout rows.
func LoadLayout(path string) (BonusMap, error) {
	bts, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lf layoutFile
	if err := yaml.Unmarshal(bts, &lf); err != nil {
		return nil, fmt.Errorf("parsing layout %v: %w", path, err)
	}
	return MakeBonusMap(lf.Rows)
}

// WriteLayout saves a bonus map in the format LoadLayout reads.
func WriteLayout(path, name string, bm BonusMap) error {
	lf := layoutFile{Name: name, Rows: bm.Rows()}
	bts, err := yaml.Marshal(lf)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bts, 0o644)
}

// Rows renders the bonus map back into layout rows.
func (bm BonusMap) Rows() []string {
	rows := make([]string, Dim)
	for y := 0; y < Dim; y++ {
		var sb strings.Builder
		for x := 0; x < Dim; x++ {
			sb.WriteRune(rune(bm.At(x, y)))
		}
		rows[y] = sb.String()
	}
	return rows
}

// BonusMapLoadFunc loads a layout for the object cache. The key is
// "layout:<name or yaml path>".
func BonusMapLoadFunc(cfg *config.Config, key string) (BonusMap, error) {
	name, ok := strings.CutPrefix(key, "layout:")
	if !ok {
		return nil, errors.New("layout load func - bad cache key: " + key)
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return LoadLayout(name)
	}
	return NamedBonusMap(name)
}
