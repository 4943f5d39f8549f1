package gif

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseColormap reads a text colormap: one "R G B" line per entry, decimal
// components 0-255. Blank lines and lines starting with '#' are skipped.
// This is the format external color-transformation commands produce.
func ParseColormap(r io.Reader) (*Colormap, error) {
	cm := &Colormap{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var red, green, blue int
		if _, err := fmt.Sscanf(text, "%d %d %d", &red, &green, &blue); err != nil {
			return nil, fmt.Errorf("colormap line %d: %q is not an R G B triple", line, text)
		}
		if red < 0 || red > 255 || green < 0 || green > 255 || blue < 0 || blue > 255 {
			return nil, fmt.Errorf("colormap line %d: component out of range 0-255", line)
		}
		cm.Colors = append(cm.Colors, RGB(uint8(red), uint8(green), uint8(blue)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read colormap: %w", err)
	}
	return cm, nil
}
