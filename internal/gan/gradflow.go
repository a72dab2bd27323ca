package gan

import (
	"math"

	"github.com/born-ml/gantools/internal/diag"
	"github.com/born-ml/gantools/internal/nn"
	"github.com/born-ml/gantools/internal/tensor"
)

// GradStats summarizes the gradient of one parameter.
type GradStats struct {
	Name    string
	MeanAbs float64
	MaxAbs  float64
}

// GradFlow returns gradient statistics for every parameter that has a gradient.
func GradFlow[B tensor.Backend](params []*nn.Parameter[B]) []GradStats {
	stats := make([]GradStats, 0, len(params))
	for _, p := range params {
		g := p.Grad()
		if g == nil {
			continue
		}
		s := GradStats{Name: p.Name()}
		data := g.Data()
		for _, v := range data {
			a := math.Abs(float64(v))
			s.MeanAbs += a
			s.MaxAbs = math.Max(s.MaxAbs, a)
		}
		if len(data) > 0 {
			s.MeanAbs /= float64(len(data))
		}
		stats = append(stats, s)
	}
	return stats
}

func logGradFlow[B tensor.Backend](log diag.Logger, player string, params []*nn.Parameter[B]) {
	for _, s := range GradFlow(params) {
		log.Debugf("%s grad %-40s mean|g|=%.3e max|g|=%.3e", player, s.Name, s.MeanAbs, s.MaxAbs)
	}
}
