package product

import (
	"math"
	"strconv"
	"strings"
)

const (
	unitFloor   = 1
	weightStep  = 0.25
	weightFloor = 0.25
	// Weight-based cards start at half a kilo
	weightStart = 0.5
)

// Stepper is the quantity selector state for one product card. Unit-based
// products step by whole units with a floor of one; weight-based products
// step by 250g with a floor of 250g and an unbounded ceiling.
type Stepper struct {
	weightBased bool
	quantity    int
	weight      float64
}

// NewStepper creates a stepper in the mode the view's unit demands
func NewStepper(weightBased bool) *Stepper {
	return &Stepper{
		weightBased: weightBased,
		quantity:    unitFloor,
		weight:      weightStart,
	}
}

// Increase steps the amount up; there is no upper bound
func (s *Stepper) Increase() {
	if s.weightBased {
		s.weight = round2(s.weight + weightStep)
		return
	}
	s.quantity++
}

// Decrease steps the amount down, stopping at the floor
func (s *Stepper) Decrease() {
	if s.weightBased {
		if s.weight > weightFloor {
			s.weight = round2(s.weight - weightStep)
		}
		return
	}
	if s.quantity > unitFloor {
		s.quantity--
	}
}

// CanDecrease reports whether Decrease would change the amount; the
// decrement control is disabled when it returns false.
func (s *Stepper) CanDecrease() bool {
	if s.weightBased {
		return s.weight > weightFloor
	}
	return s.quantity > unitFloor
}

// Amount is the current quantity or weight as a multiplier
func (s *Stepper) Amount() float64 {
	if s.weightBased {
		return s.weight
	}
	return float64(s.quantity)
}

// Display formats the amount for the card: plain count for units, two
// decimals with a comma separator and a kg suffix for weight.
func (s *Stepper) Display() string {
	if s.weightBased {
		return strings.Replace(strconv.FormatFloat(s.weight, 'f', 2, 64), ".", ",", 1) + " kg"
	}
	return strconv.Itoa(s.quantity)
}

// Total is the amount times the card's display price, in cents precision
func (s *Stepper) Total(v View) float64 {
	return round2(v.DisplayPrice() * s.Amount())
}

// Reset returns the stepper to its starting amount
func (s *Stepper) Reset() {
	s.quantity = unitFloor
	s.weight = weightStart
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
