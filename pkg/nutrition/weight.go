package nutrition

import "strconv"

// WeightSample is one point of the weight chart.
type WeightSample struct {
	Label string  `json:"day"`
	Value float64 `json:"weight"`
}

// SampleWeightSeries is the two-week demo trend shown until real history exists.
func SampleWeightSeries() []WeightSample {
	out := make([]WeightSample, 14)
	for i := range out {
		out[i] = WeightSample{
			Label: "D" + strconv.Itoa(i+1),
			Value: roundHalfUp((150-float64(i)*0.3)*10) / 10,
		}
	}
	return out
}
