// Package observ carries the lightweight timing instrumentation behind the
// CLI's --timings flag.
package observ

import "time"

// Phase records one finished pipeline phase (load, compile, execute).
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer collects pipeline phases in completion order.
type Timer struct {
	phases []Phase
}

func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 4)} }

// Phase starts timing a phase and returns the function that finishes it.
// The note lands in the report next to the duration.
func (t *Timer) Phase(name string) func(note string) {
	start := time.Now()
	return func(note string) {
		t.phases = append(t.phases, Phase{
			Name: name,
			Dur:  time.Since(start),
			Note: note,
		})
	}
}

// PhaseReport представляет сжатую информацию о фазе таймера для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report формирует срез фаз и общую длительность в миллисекундах.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	report := Report{
		Phases: make([]PhaseReport, len(t.phases)),
	}
	var total time.Duration
	for i, phase := range t.phases {
		total += phase.Dur
		report.Phases[i] = PhaseReport{
			Name:       phase.Name,
			DurationMS: durationToMillis(phase.Dur),
			Note:       phase.Note,
		}
	}
	report.TotalMS = durationToMillis(total)
	return report
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
