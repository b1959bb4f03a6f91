package maze

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

var builtins = map[string]string{
	"one": "####S#....," +
		"...#.##.#.," +
		"##.#.##.#.," +
		"##.#.##.#.," +
		"##......#.," +
		"#######.#.," +
		"E.#####.##," +
		"#.........," +
		"########.#," +
		"####.....#",

	"two": "..........," +
		".####.###.," +
		".#..#.###.," +
		"...##S###.," +
		"###.#####.," +
		"..........," +
		"#.#######.," +
		"#.##E#....," +
		"#.##.####.," +
		"...#......",
}

// Names lists the built-in mazes, sorted
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builtin parses a named built-in maze
func Builtin(name string) (Layout, error) {
	text, ok := builtins[strings.ToLower(name)]
	if !ok {
		return Layout{}, fmt.Errorf("unknown maze %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return Parse(text, DefaultSeparator)
}

// Load reads a maze file; rows may be separated by newlines or sep
func Load(path string, sep rune) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read maze %s: %w", path, err)
	}
	l, err := Parse(string(data), sep)
	if err != nil {
		return Layout{}, fmt.Errorf("parse maze %s: %w", path, err)
	}
	return l, nil
}
