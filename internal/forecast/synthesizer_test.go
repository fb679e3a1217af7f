package forecast

import (
	"errors"
	"math"
	"testing"

	"MarketLens/internal/domain/models"
)

func TestSynthesizeCount(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}
	for _, horizon := range []int{1, 5, 10} {
		points, err := Synthesize(p, horizon)
		if err != nil {
			t.Fatalf("Synthesize(horizon=%d) error: %v", horizon, err)
		}
		if len(points) != horizon {
			t.Errorf("horizon %d: got %d points", horizon, len(points))
		}
	}
}

func TestSynthesizeDefaultHorizon(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}
	points, err := Synthesize(p, 0)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if len(points) != 5 {
		t.Errorf("default horizon produced %d points, want 5", len(points))
	}
}

func TestSynthesizeBands(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 250, LogReturnT1: 0.02, LogReturnT5: -0.03}
	points, err := Synthesize(p, 7)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	prevWidth := 0.0
	for i, pt := range points {
		if pt.Lower > pt.Predicted || pt.Predicted > pt.Upper {
			t.Errorf("day %d: band [%v, %v] does not contain %v", i+1, pt.Lower, pt.Upper, pt.Predicted)
		}
		width := (pt.Upper - pt.Lower) / pt.Predicted
		if width <= prevWidth {
			t.Errorf("day %d: relative band width %v did not grow from %v", i+1, width, prevWidth)
		}
		prevWidth = width
	}
}

func TestSynthesizeAnchors(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}
	points, err := Synthesize(p, 5)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}

	wantP1 := math.Round(100*math.Exp(0.01)*100) / 100
	wantP5 := math.Round(100*math.Exp(0.05)*100) / 100
	if points[0].Predicted != wantP1 {
		t.Errorf("day 1 predicted = %v, want %v", points[0].Predicted, wantP1)
	}
	if points[4].Predicted != wantP5 {
		t.Errorf("day 5 predicted = %v, want %v", points[4].Predicted, wantP5)
	}
}

func TestSynthesizeAnchorsAnyHorizon(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}
	wantP1 := math.Round(100*math.Exp(0.01)*100) / 100
	wantEnd := math.Round(100*math.Exp(0.05)*100) / 100

	for _, horizon := range []int{2, 3, 7, 10} {
		points, err := Synthesize(p, horizon)
		if err != nil {
			t.Fatalf("Synthesize(horizon=%d) error: %v", horizon, err)
		}
		if points[0].Predicted != wantP1 {
			t.Errorf("horizon %d: day 1 predicted = %v, want %v", horizon, points[0].Predicted, wantP1)
		}
		if last := points[horizon-1].Predicted; last != wantEnd {
			t.Errorf("horizon %d: last predicted = %v, want %v", horizon, last, wantEnd)
		}
	}
}

func TestSynthesizePrefersBackendDayOnePrice(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, PriceT1: 102.5, LogReturnT1: 0.01, LogReturnT5: 0.05}
	points, err := Synthesize(p, 5)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	if points[0].Predicted != 102.5 {
		t.Errorf("day 1 predicted = %v, want backend price 102.5", points[0].Predicted)
	}
}

func TestSynthesizeBandConstants(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0, LogReturnT5: 0}
	points, err := Synthesize(p, 2)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	// Flat 100 series: day i half-width is 0.02 + i*0.01 of the price.
	if points[0].Lower != 97 || points[0].Upper != 103 {
		t.Errorf("day 1 band = [%v, %v], want [97, 103]", points[0].Lower, points[0].Upper)
	}
	if points[1].Lower != 96 || points[1].Upper != 104 {
		t.Errorf("day 2 band = [%v, %v], want [96, 104]", points[1].Lower, points[1].Upper)
	}
}

func TestSynthesizeFlat(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0, LogReturnT5: 0}
	points, err := Synthesize(p, 5)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	for i, pt := range points {
		if pt.Predicted != 100 {
			t.Errorf("day %d: predicted %v, want flat 100", i+1, pt.Predicted)
		}
	}
}

func TestSynthesizeRejectsBadInput(t *testing.T) {
	cases := []models.ForecastPrediction{
		{CurrentPrice: 0, LogReturnT1: 0.01, LogReturnT5: 0.05},
		{CurrentPrice: -5, LogReturnT1: 0.01, LogReturnT5: 0.05},
		{CurrentPrice: 100, LogReturnT1: math.NaN(), LogReturnT5: 0.05},
		{CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: math.Inf(1)},
	}
	for _, p := range cases {
		if _, err := Synthesize(p, 5); !errors.Is(err, ErrInvalidPrediction) {
			t.Errorf("Synthesize(%+v) error = %v, want ErrInvalidPrediction", p, err)
		}
	}
}

func TestSynthesizeDatesStrictlyIncreasing(t *testing.T) {
	p := models.ForecastPrediction{CurrentPrice: 100, LogReturnT1: 0.01, LogReturnT5: 0.05}
	points, err := Synthesize(p, 10)
	if err != nil {
		t.Fatalf("Synthesize error: %v", err)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Date <= points[i-1].Date {
			t.Errorf("dates not increasing: %s then %s", points[i-1].Date, points[i].Date)
		}
	}
}
