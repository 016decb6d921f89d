package ndraytrace

import "testing"

func TestSampleLogCounts(t *testing.T) {
	old := Debug
	Debug = true
	defer func() { Debug = old }()
	sampleLog.Reset()

	s := NewScene(3)
	s.AddSphere(Sphere{Position: Vector{5, 0, 0}, Radius: 1, Color: InnerColor})
	Trace(s, Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 0, 0})
	Trace(s, Vector{0, 0, 0}, Vector{-1, 0, 0}, Vector{0, 0, 0})
	Trace(s, Vector{0, 0, 0}, Vector{0, 1, 0}, Vector{0, 0, 0})
	if sampleLog.Count(Hit) != 1 || sampleLog.Count(Miss) != 2 {
		t.Fatalf("hit=%d miss=%d", sampleLog.Count(Hit), sampleLog.Count(Miss))
	}

	fb := NewFramebuffer(7, 7, ChannelTruncate)
	NewAdaptiveSampler().Render(fb, SamplerFunc(checker))
	if sampleLog.Count(Flat) != 2 || sampleLog.Count(Retrace) != 6 {
		t.Fatalf("flat=%d retrace=%d", sampleLog.Count(Flat), sampleLog.Count(Retrace))
	}
	sampleLog.Reset()
	if sampleLog.Count(Hit) != 0 {
		t.Fatal("Reset kept counts")
	}
}
