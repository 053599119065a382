package sound

import (
	"math"
	"testing"
	"time"
)

func TestToneLengthAndRange(t *testing.T) {
	s := Tone(SampleRate, 440, 100*time.Millisecond, 0.5, 3)

	total := 0
	buf := make([][2]float64, 300)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			if math.Abs(frame[0]) > 0.5 || frame[0] != frame[1] {
				t.Fatalf("sample %v out of range or not mono", frame)
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := SampleRate.N(100 * time.Millisecond); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestToneDecays(t *testing.T) {
	s := Tone(SampleRate, 100, time.Second, 1, 5)
	buf := make([][2]float64, SampleRate.N(time.Second))
	s.Stream(buf)

	peak := func(from, to int) float64 {
		var p float64
		for _, f := range buf[from:to] {
			p = math.Max(p, math.Abs(f[0]))
		}
		return p
	}
	early, late := peak(0, 4410), peak(len(buf)-4410, len(buf))
	if late >= early {
		t.Errorf("late peak %f not below early peak %f", late, early)
	}
}

func TestPCMSize(t *testing.T) {
	got := len(PCM(Eat()))
	if want := SampleRate.N(100*time.Millisecond) * 4; got != want {
		t.Errorf("PCM length = %d bytes, want %d", got, want)
	}

	got = len(PCM(Melody()))
	if want := SampleRate.N(250*time.Millisecond) * 4 * len(melody); got != want {
		t.Errorf("melody PCM length = %d bytes, want %d", got, want)
	}
}

func TestQuieterScales(t *testing.T) {
	loud := PCM(Crash())
	quiet := PCM(Quieter(Crash(), 1))
	if len(loud) != len(quiet) {
		t.Fatalf("lengths differ: %d vs %d", len(loud), len(quiet))
	}

	sample := func(b []byte, i int) int16 { return int16(uint16(b[i]) | uint16(b[i+1])<<8) }
	i := 4 * 10
	if l, q := sample(loud, i), sample(quiet, i); math.Abs(float64(q)) > math.Abs(float64(l)) {
		t.Errorf("quieter sample %d louder than original %d", q, l)
	}
}
