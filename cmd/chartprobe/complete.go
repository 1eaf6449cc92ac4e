package main

import (
	"strings"

	"golang.org/x/exp/slices"
)

// completer completes command names at the start of a line and suggests
// names for misspelled ones by trigram similarity.
type completer struct {
	names []string
	grams map[string][]string
}

func newCompleter(names ...string) *completer {
	c := &completer{names: slices.Clone(names), grams: make(map[string][]string)}
	slices.Sort(c.names)
	for _, name := range c.names {
		for _, g := range trigrams(name) {
			c.grams[g] = append(c.grams[g], name)
		}
	}
	return c
}

// trigrams returns the sorted, distinct trigrams of s padded so that
// prefixes weigh more.
func trigrams(s string) []string {
	s = "\x00\x00" + strings.ToLower(s) + "\x00"
	var gs []string
	for i := 0; i+3 <= len(s); i++ {
		gs = append(gs, s[i:i+3])
	}
	slices.Sort(gs)
	return slices.Compact(gs)
}

// Match returns names sharing at least min of the trigrams of word, best
// first.
func (c *completer) Match(word string, min float64) []string {
	q := trigrams(word)
	score := make(map[string]float64)
	for _, g := range q {
		for _, name := range c.grams[g] {
			score[name]++
		}
	}
	var xs []string
	for name, n := range score {
		if n/float64(len(q)) >= min {
			xs = append(xs, name)
		}
	}
	slices.SortFunc(xs, func(a, b string) bool {
		if score[a] != score[b] {
			return score[a] > score[b]
		}
		return a < b
	})
	return xs
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) (newLine [][]rune, length int) {
	word := string(line[:pos])
	if strings.ContainsAny(word, " \t") {
		return nil, 0
	}
	for _, name := range c.names {
		if strings.HasPrefix(name, word) {
			newLine = append(newLine, []rune(name[len(word):]+" "))
		}
	}
	return newLine, len(line[:pos])
}
