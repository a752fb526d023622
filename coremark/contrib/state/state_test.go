package state

import (
	"bytes"
	"testing"
)

func TestTransitionFinalState(t *testing.T) {
	tests := []struct {
		input   string
		want    State
		wantPos int
	}{
		{"1234", Int, 4},
		{"-874", Int, 4},
		{"35.544", Float, 6},
		{".1234500", Float, 8},
		{"5.5e+3", Scientific, 6},
		{"+0.6e-12", Scientific, 8},
		{"T0.3e-1F", Invalid, 1},
		{"1T3.4e4z", Invalid, 2},
		{"5012,1234", Int, 5},
		{"", Start, 0},
		{",", Start, 1},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var counts Counts
			got, pos := Transition([]byte(tt.input), 0, &counts)
			if got != tt.want {
				t.Errorf("Transition(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if pos != tt.wantPos {
				t.Errorf("Transition(%q) pos = %d, want %d", tt.input, pos, tt.wantPos)
			}
		})
	}
}

func TestTransitionCounts(t *testing.T) {
	var counts Counts
	Transition([]byte("5.5e+3"), 0, &counts)
	want := Counts{
		Start:    1, // -> Int
		Int:      1, // -> Float
		Float:    1, // -> Sign2
		Sign2:    1, // -> Exponent
		Exponent: 1, // -> Scientific
	}
	if counts != want {
		t.Errorf("counts = %v, want %v", counts, want)
	}

	counts = Counts{}
	Transition([]byte("T0"), 0, &counts)
	want = Counts{Start: 1, Invalid: 1}
	if counts != want {
		t.Errorf("counts = %v, want %v", counts, want)
	}
}

func TestTransitionStopsAtTerminator(t *testing.T) {
	buf := []byte{'1', '2', 0, '3'}
	var counts Counts
	s, pos := Transition(buf, 0, &counts)
	if s != Int || pos != 2 {
		t.Errorf("Transition = (%v, %d), want (int, 2)", s, pos)
	}
}

func TestInitLayout(t *testing.T) {
	buf := make([]byte, 20)
	for i := range buf {
		buf[i] = 0xff
	}
	if err := Init(buf, 0); err != nil {
		t.Fatalf("Init: %v", err)
	}
	want := append([]byte("5012,5012,"), make([]byte, 10)...)
	if !bytes.Equal(buf, want) {
		t.Errorf("Init = %q, want %q", buf, want)
	}
}

func TestInitPatternsAndPadding(t *testing.T) {
	buf := make([]byte, 666)
	if err := Init(buf, 0x3415); err != nil {
		t.Fatalf("Init: %v", err)
	}
	end := bytes.IndexByte(buf, 0)
	if end <= 0 {
		t.Fatalf("no tokens generated")
	}
	for i, b := range buf[end:] {
		if b != 0 {
			t.Fatalf("padding byte %d = %#02x, want 0", end+i, b)
		}
	}
	known := map[string]bool{}
	for _, set := range [][4]string{intPatterns, floatPatterns, sciPatterns, errPatterns} {
		for _, p := range set {
			known[p] = true
		}
	}
	body := buf[:end]
	if body[len(body)-1] != ',' {
		t.Errorf("last token not comma-terminated: %q", body)
	}
	for _, tok := range bytes.Split(body[:len(body)-1], []byte(",")) {
		if !known[string(tok)] {
			t.Errorf("unexpected token %q", tok)
		}
	}
}

func TestInitEmptyBuffer(t *testing.T) {
	if err := Init(nil, 0); err == nil {
		t.Error("Init(nil) should fail")
	}
}

func TestBenchRestoresWhenSeedsEqual(t *testing.T) {
	buf := make([]byte, 400)
	if err := Init(buf, 8); err != nil {
		t.Fatalf("Init: %v", err)
	}
	orig := bytes.Clone(buf)
	Bench(buf, 8, 8, MinStep, 0)
	if !bytes.Equal(buf, orig) {
		t.Error("buffer changed although seed1 == seed2")
	}
}

func TestBenchDivergesWhenSeedsDiffer(t *testing.T) {
	buf := make([]byte, 400)
	if err := Init(buf, 1); err != nil {
		t.Fatalf("Init: %v", err)
	}
	orig := bytes.Clone(buf)
	Bench(buf, 1, 2, MinStep, 0)
	if bytes.Equal(buf, orig) {
		t.Error("buffer unchanged although seed1 != seed2")
	}
}

func TestBenchDeterministic(t *testing.T) {
	a := make([]byte, 666)
	b := make([]byte, 666)
	if err := Init(a, 0); err != nil {
		t.Fatal(err)
	}
	if err := Init(b, 0); err != nil {
		t.Fatal(err)
	}
	for step := int16(MinStep); step < 0x100; step += 0x11 {
		ca := Bench(a, 0, 0, step, 0x1234)
		cb := Bench(b, 0, 0, step, 0x1234)
		if ca != cb {
			t.Fatalf("step %#x: %#04x != %#04x", step, ca, cb)
		}
	}
}

func BenchmarkBench(b *testing.B) {
	buf := make([]byte, 666)
	if err := Init(buf, 0); err != nil {
		b.Fatal(err)
	}
	var crc uint16
	b.SetBytes(int64(len(buf)))
	for i := 0; i < b.N; i++ {
		crc = Bench(buf, 0, 0, MinStep, crc)
	}
}
