// Package model defines the linear attachment model and its on-disk store.
package model

import (
	"discern/internal/features"
)

// Model scores EDU pairs as a linear function over vocabulary features: the
// sum of each present feature's weight (times its magnitude for continuous
// features) plus a bias. A positive score predicts attachment.
type Model struct {
	Name    string             `yaml:"name,omitempty"`
	Bias    float64            `yaml:"bias"`
	Weights map[string]float64 `yaml:"weights"`
}

// Score returns the model's score for one extracted pair.
func (m *Model) Score(vec features.PairVector) float64 {
	score := m.Bias
	for _, v := range vec.Values {
		if w, ok := m.Weights[v.VocabName()]; ok {
			score += w * v.Magnitude()
		}
	}
	return score
}

// Attached reports whether the model predicts an attachment for vec.
func (m *Model) Attached(vec features.PairVector) bool {
	return m.Score(vec) > 0
}
