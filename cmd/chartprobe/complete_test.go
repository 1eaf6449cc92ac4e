package main

import (
	"fmt"
	"testing"
)

func TestComplete(t *testing.T) {
	c := newCompleter("size", "section", "series", "speed", "zoom")
	tests := []struct {
		line string
		want string
		n    int
	}{
		{"se", "[ction  ries ]", 2},
		{"z", "[oom ]", 1},
		{"", "[section  series  size  speed  zoom ]", 0},
		{"size 1", "[]", 0},
	}
	for _, tt := range tests {
		line := []rune(tt.line)
		have, n := c.Do(line, len(line))
		var ss []string
		for _, r := range have {
			ss = append(ss, string(r))
		}
		if fmt.Sprint(ss) != tt.want || n != tt.n {
			t.Errorf("%q: have %q %v, want %v %v", tt.line, fmt.Sprint(ss), n, tt.want, tt.n)
		}
	}
}

func TestMatch(t *testing.T) {
	c := newCompleter("size", "section", "series", "speed", "zoom")
	if have := c.Match("sise", 0.33); len(have) == 0 || have[0] != "size" {
		t.Fatalf("have %v, want size first", have)
	}
	if have := c.Match("qwerty", 0.33); len(have) != 0 {
		t.Fatalf("have %v, want none", have)
	}
}
