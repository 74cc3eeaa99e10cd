package temporal

// Peak is a local maximum in an amplitude envelope: its index into the
// envelope sequence and the amplitude value there.
type Peak struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// PeakDetector finds local maxima in a smoothed amplitude envelope.
// Used to count breath cycles from a per-frame RMS envelope.
type PeakDetector struct {
	threshold float64
}

// NewPeakDetector creates a peak detector with the given amplitude
// threshold. Candidates at or below the threshold are ignored.
func NewPeakDetector(threshold float64) *PeakDetector {
	return &PeakDetector{threshold: threshold}
}

// Detect scans the envelope left to right and returns accepted peaks in
// index order. A sample at index i (1 <= i < len-1) is a candidate iff it
// is strictly greater than both neighbors and exceeds the threshold. A
// candidate is accepted only if no already-accepted peak lies within
// floor(len/20) positions before it; ties resolve first-found, not tallest.
func (pd *PeakDetector) Detect(envelope []float64) []Peak {
	if len(envelope) < 3 {
		return []Peak{}
	}

	minDistance := len(envelope) / 20
	peaks := []Peak{}

	for i := 1; i < len(envelope)-1; i++ {
		if envelope[i] <= envelope[i-1] || envelope[i] <= envelope[i+1] {
			continue
		}
		if envelope[i] <= pd.threshold {
			continue
		}
		if len(peaks) > 0 && i-peaks[len(peaks)-1].Index <= minDistance {
			continue
		}
		peaks = append(peaks, Peak{Index: i, Value: envelope[i]})
	}

	return peaks
}
