package ndraytrace

import (
	"fmt"
	"sync/atomic"
)

type Category uint8

const (
	Hit     Category = iota // ray hit a sphere
	Miss                    // ray hit the background
	Flat                    // block filled with its corner average
	Retrace                 // block refined with fresh samples
	numCategories
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Flat:
		return "flat"
	case Retrace:
		return "retrace"
	}
	return fmt.Sprintf("category_%d", uint8(c))
}

// SampleLog counts sampling events; safe for concurrent use.
type SampleLog struct {
	counts [numCategories]atomic.Int64
}

var sampleLog = &SampleLog{}

func logSample(c Category) {
	sampleLog.counts[c].Add(1)
}

func (l *SampleLog) Count(c Category) int64 { return l.counts[c].Load() }

func (l *SampleLog) Reset() {
	for i := range l.counts {
		l.counts[i].Store(0)
	}
}

func sampleStats() {
	for c := Category(0); c < numCategories; c++ {
		fmt.Printf("Sample type %s: %d events\n", c, sampleLog.Count(c))
	}
}
