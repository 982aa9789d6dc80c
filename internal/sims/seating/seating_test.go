package seating

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/geostanley/advent-for-code/internal/core"
	rng "github.com/geostanley/advent-for-code/pkg/core"
)

var canonical = []string{
	"L.LL.LL.LL",
	"LLLLLLL.LL",
	"L.L.L..L..",
	"LLLL.LL.LL",
	"L.LL.LL.LL",
	"L.LLLLL.LL",
	"..L.L.....",
	"LLLLLLLLLL",
	"L.LLLLLL.L",
	"L.LLLLL.LL",
}

func mustParse(t *testing.T, rows []string) Lattice {
	t.Helper()
	l, err := ParseLayout(rows)
	if err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	return l
}

func randomLayout(r *rng.RNG, w, h int) []string {
	seats := []byte{'.', 'L', 'L', '#'}
	rows := make([]string, h)
	for y := range rows {
		row := make([]byte, w)
		for x := range row {
			row[x] = rng.Pick(r, seats)
		}
		rows[y] = string(row)
	}
	return rows
}

func TestParseLayoutBorder(t *testing.T) {
	l := mustParse(t, []string{"L.", "#L"})
	if l.Rows() != 4 || l.Cols() != 4 {
		t.Fatalf("expected 4x4 bordered lattice, got %dx%d", l.Rows(), l.Cols())
	}
	for row := 0; row < l.Rows(); row++ {
		for col := 0; col < l.Cols(); col++ {
			border := row == 0 || col == 0 || row == l.Rows()-1 || col == l.Cols()-1
			if border && l.At(row, col) != Floor {
				t.Fatalf("border cell (%d,%d) is %v", row, col, l.At(row, col))
			}
		}
	}
	if l.At(1, 1) != Empty || l.At(1, 2) != Floor || l.At(2, 1) != Occupied {
		t.Fatalf("interior parsed wrong:\n%s", l)
	}
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want error
	}{
		{"empty", nil, core.ErrMalformedInput},
		{"bad char", []string{"L.L", "LxL"}, core.ErrMalformedInput},
		{"ragged", []string{"L.L", "LL"}, core.ErrDimensionMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLayout(tc.rows)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestReadLayoutSkipsBlankLines(t *testing.T) {
	l, err := ReadLayout(strings.NewReader("L.L\n\nLLL\n\n\n"))
	if err != nil {
		t.Fatalf("read layout: %v", err)
	}
	if got := l.String(); got != "L.L\nLLL\n" {
		t.Fatalf("unexpected layout %q", got)
	}
}

func TestStepAdjacentFirstGenerations(t *testing.T) {
	l := mustParse(t, canonical)

	first := StepAdjacent(l)
	if want := strings.ReplaceAll(strings.Join(canonical, "\n")+"\n", "L", "#"); first.Lattice.String() != want {
		t.Fatalf("first generation should fill every seat, got\n%s", first.Lattice)
	}
	if first.Signature != 781 {
		t.Fatalf("first signature %d, expected 781", first.Signature)
	}

	second := StepAdjacent(first.Lattice)
	want := strings.Join([]string{
		"#.LL.L#.##",
		"#LLLLLL.L#",
		"L.L.L..L..",
		"#LLL.LL.L#",
		"#.LL.LL.LL",
		"#.LLLL#.##",
		"..L.L.....",
		"#LLLLLLLL#",
		"#.LLLLLL.L",
		"#.#LLLL.##",
	}, "\n") + "\n"
	if got := second.Lattice.String(); got != want {
		t.Fatalf("second generation:\n%s\nexpected\n%s", got, want)
	}
	if l.String() != strings.Join(canonical, "\n")+"\n" {
		t.Fatal("step mutated its input lattice")
	}
}

func TestStepVisibilitySecondGeneration(t *testing.T) {
	l := StepVisibility(StepVisibility(mustParse(t, canonical)).Lattice).Lattice
	want := strings.Join([]string{
		"#.LL.LL.L#",
		"#LLLLLL.LL",
		"L.L.L..L..",
		"LLLL.LL.LL",
		"L.LL.LL.LL",
		"L.LLLLL.LL",
		"..L.L.....",
		"LLLLLLLLL#",
		"#.LLLLLL.L",
		"#.LLLLL.L#",
	}, "\n") + "\n"
	if got := l.String(); got != want {
		t.Fatalf("second generation:\n%s\nexpected\n%s", got, want)
	}
}

func TestSimulateAdjacentCanonical(t *testing.T) {
	final, sigs, err := Simulate(mustParse(t, canonical), Adjacent, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if got := CountOccupied(final); got != 37 {
		t.Fatalf("expected 37 occupied seats, got %d", got)
	}
	if want := []int{781, 559, 331, 218, 65, 0, 0}; !slices.Equal(sigs, want) {
		t.Fatalf("signatures %v, expected %v", sigs, want)
	}
}

func TestSimulateVisibilityCanonical(t *testing.T) {
	final, sigs, err := Simulate(mustParse(t, canonical), Visibility, DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if got := CountOccupied(final); got != 26 {
		t.Fatalf("expected 26 occupied seats, got %d", got)
	}
	if want := []int{781, 706, 500, 381, 145, 56, 0, 0}; !slices.Equal(sigs, want) {
		t.Fatalf("signatures %v, expected %v", sigs, want)
	}
}

func TestSimulateStrictMatchesSignatureWitness(t *testing.T) {
	for _, rule := range []Rule{Adjacent, Visibility} {
		loose, _, err := Simulate(mustParse(t, canonical), rule, DefaultConfig(), nil)
		if err != nil {
			t.Fatalf("%s: %v", rule, err)
		}
		strict, sigs, err := Simulate(mustParse(t, canonical), rule, Config{Strict: true}, nil)
		if err != nil {
			t.Fatalf("%s strict: %v", rule, err)
		}
		if !loose.Equal(strict) {
			t.Fatalf("%s: strict and signature runs disagree", rule)
		}
		if sigs[len(sigs)-1] != 0 {
			t.Fatalf("%s: strict run should end on an unchanged generation", rule)
		}
	}
}

func TestSimulateGenerationLimit(t *testing.T) {
	_, _, err := Simulate(mustParse(t, canonical), Adjacent, Config{MaxGenerations: 2}, nil)
	if !errors.Is(err, core.ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence, got %v", err)
	}
}

func TestFixedPointIdempotent(t *testing.T) {
	for _, rule := range []Rule{Adjacent, Visibility} {
		final, _, err := Simulate(mustParse(t, canonical), rule, Config{Strict: true}, nil)
		if err != nil {
			t.Fatalf("%s: %v", rule, err)
		}
		again := rule.Step()(final)
		if len(again.Changed) != 0 || !again.Lattice.Equal(final) {
			t.Fatalf("%s: fixed point moved on reapplication", rule)
		}
	}
}

func TestStepsDeterministicAndKeepBorder(t *testing.T) {
	r := rng.NewRNG(2020)
	for trial := 0; trial < 20; trial++ {
		l := mustParse(t, randomLayout(r, 1+r.IntN(12), 1+r.IntN(12)))
		for _, rule := range []Rule{Adjacent, Visibility} {
			cur := l
			for gen := 0; gen < 6; gen++ {
				a := rule.Step()(cur)
				b := rule.Step()(cur)
				if !a.Lattice.Equal(b.Lattice) || a.Signature != b.Signature || !slices.Equal(a.Changed, b.Changed) {
					t.Fatalf("%s step not deterministic on\n%s", rule, cur)
				}
				cur = a.Lattice
				for row := 0; row < cur.Rows(); row++ {
					for col := 0; col < cur.Cols(); col++ {
						border := row == 0 || col == 0 || row == cur.Rows()-1 || col == cur.Cols()-1
						if border && cur.At(row, col) != Floor {
							t.Fatalf("%s: border (%d,%d) became %v", rule, row, col, cur.At(row, col))
						}
					}
				}
			}
		}
	}
}

func TestVisibilityScanStopsAtEdge(t *testing.T) {
	// A lone seat sees nothing in any direction.
	l := mustParse(t, []string{"...", ".#.", "..."})
	if got := visibleOccupied(l, 2, 2); got != 0 {
		t.Fatalf("expected no visible seats, got %d", got)
	}
	// Scanning from the border outward leaves the lattice immediately.
	if got := firstSeen(l, 0, 0, -1, -1); got != Floor {
		t.Fatalf("scan off the lattice should see Floor, got %v", got)
	}
	// Empty seats block the view of occupied seats behind them.
	l = mustParse(t, []string{"#L.#"})
	if got := visibleOccupied(l, 1, 1); got != 0 {
		t.Fatalf("empty seat should block the view, got %d", got)
	}
	// Floor does not block: the seat at col 2 sees both ends.
	if got := visibleOccupied(l, 1, 2); got != 2 {
		t.Fatalf("expected two visible occupied seats, got %d", got)
	}
}

func TestCountOccupiedAndFrame(t *testing.T) {
	l := mustParse(t, []string{"#L#", ".#."})
	if got := CountOccupied(l); got != 3 {
		t.Fatalf("expected 3 occupied, got %d", got)
	}
	f := l.Frame()
	if f.W != 5 || f.H != 4 {
		t.Fatalf("frame %dx%d, expected 5x4", f.W, f.H)
	}
	if f.Count(uint8(Occupied)) != 3 || f.Count(uint8(Floor)) != 20-4 {
		t.Fatalf("frame counts wrong: %v", f.Cells)
	}
}

type memSink struct {
	gens   []int
	closed bool
}

func (m *memSink) Frame(gen int, _ core.Frame) error {
	m.gens = append(m.gens, gen)
	return nil
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}

func TestRunReportsBothRules(t *testing.T) {
	sinks := map[string]*memSink{}
	open := func(run string) (core.Sink, error) {
		s := &memSink{}
		sinks[run] = s
		return s, nil
	}
	input := strings.Join(canonical, "\n") + "\n\n"
	out, err := Run(strings.NewReader(input), map[string]string{"strict": "false"}, open)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []core.Answer{
		{Label: "adjacent", Value: 37},
		{Label: "adjacent_generations", Value: 7},
		{Label: "visibility", Value: 26},
		{Label: "visibility_generations", Value: 8},
	}
	if !slices.Equal(out.Answers, want) {
		t.Fatalf("answers %+v, expected %+v", out.Answers, want)
	}
	if s := sinks["adjacent"]; s == nil || !s.closed || !slices.Equal(s.gens, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("adjacent sink saw %+v", s)
	}
	if len(out.Series["visibility_signatures"]) != 8 {
		t.Fatalf("missing visibility series: %v", out.Series)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	_, err := Run(strings.NewReader("L.L\nL?L\n"), nil, nil)
	if !errors.Is(err, core.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"strict": "true", "max_generations": "50"})
	if !c.Strict || c.MaxGenerations != 50 {
		t.Fatalf("unexpected config %+v", c)
	}
	c = FromMap(map[string]string{"strict": "nope", "max_generations": "-3"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
}
