package gif

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseColormap(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Color
		wantErr bool
	}{
		{
			"simple triples",
			"255 0 0\n0 255 0\n0 0 255\n",
			[]Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)},
			false,
		},
		{
			"blank lines and comments skipped",
			"# palette\n\n10 20 30\n\n# trailing\n40 50 60\n",
			[]Color{RGB(10, 20, 30), RGB(40, 50, 60)},
			false,
		},
		{
			"no trailing newline",
			"1 2 3",
			[]Color{RGB(1, 2, 3)},
			false,
		},
		{
			"empty input",
			"",
			nil,
			false,
		},
		{"not numbers", "red green blue\n", nil, true},
		{"too few fields", "1 2\n", nil, true},
		{"component too large", "0 0 256\n", nil, true},
		{"negative component", "-1 0 0\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm, err := ParseColormap(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("want error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColormap: %v", err)
			}
			if !reflect.DeepEqual(cm.Colors, tt.want) {
				t.Errorf("colors: got %v, want %v", cm.Colors, tt.want)
			}
		})
	}
}
