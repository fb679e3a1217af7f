package synthetic

import (
	"math"
	"reflect"
	"testing"

	"MarketLens/internal/domain/models"
)

func TestHistoryShape(t *testing.T) {
	g := New(42)
	bars := g.History("TT", 90)
	if len(bars) != 91 {
		t.Fatalf("got %d bars, want 91", len(bars))
	}
	for i, b := range bars {
		if b.Low > math.Min(b.Open, b.Close) {
			t.Errorf("bar %d: low %v above min(open, close)", i, b.Low)
		}
		if b.High < math.Max(b.Open, b.Close) {
			t.Errorf("bar %d: high %v below max(open, close)", i, b.High)
		}
		if b.Volume < 50000 || b.Volume >= 200000 {
			t.Errorf("bar %d: volume %d out of range", i, b.Volume)
		}
		if i > 0 && bars[i-1].Close != b.Open {
			t.Errorf("bar %d: open %v != prior close %v", i, b.Open, bars[i-1].Close)
		}
	}
}

func TestHistoryDeterministic(t *testing.T) {
	a := New(7).History("SFBT", 30)
	b := New(7).History("SFBT", 30)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different history")
	}
	c := New(8).History("SFBT", 30)
	if reflect.DeepEqual(a, c) {
		t.Error("different seed produced identical history")
	}
}

func TestHistoryPerSymbolStreams(t *testing.T) {
	g := New(7)
	a := g.History("TT", 30)
	b := g.History("BIAT", 30)
	if reflect.DeepEqual(a, b) {
		t.Error("different symbols share a walk")
	}
}

func TestForecastShape(t *testing.T) {
	g := New(42)
	points := g.Forecast("TT", 5)
	if len(points) != 5 {
		t.Fatalf("got %d points, want 5", len(points))
	}
	for i, p := range points {
		if p.Lower > p.Predicted || p.Predicted > p.Upper {
			t.Errorf("point %d: band [%v, %v] does not contain %v", i, p.Lower, p.Upper, p.Predicted)
		}
	}
	if got := g.Forecast("TT", 0); len(got) != 5 {
		t.Errorf("zero horizon produced %d points, want default 5", len(got))
	}
}

func TestSentimentSeries(t *testing.T) {
	g := New(42)
	points := g.SentimentSeries("TT", 30)
	if len(points) != 31 {
		t.Fatalf("got %d points, want 31", len(points))
	}
	for i, p := range points {
		if p.Score < -1 || p.Score > 1 {
			t.Errorf("point %d: score %v out of [-1, 1]", i, p.Score)
		}
		if p.ArticleCount < 1 {
			t.Errorf("point %d: article count %d", i, p.ArticleCount)
		}
		switch {
		case p.Score > 0.2 && p.Label != "positive":
			t.Errorf("point %d: score %v labelled %q", i, p.Score, p.Label)
		case p.Score < -0.2 && p.Label != "negative":
			t.Errorf("point %d: score %v labelled %q", i, p.Score, p.Label)
		}
	}
}

func TestSignalDeterministic(t *testing.T) {
	a := New(42).Signal("TT")
	b := New(42).Signal("TT")
	if a != b {
		t.Errorf("same seed produced different signals: %+v vs %+v", a, b)
	}
	if a.Symbol != "TT" {
		t.Errorf("Symbol = %q", a.Symbol)
	}
	if a.Score < -1 || a.Score > 1 {
		t.Errorf("score %v out of [-1, 1]", a.Score)
	}
	if a.Confidence < 0.5 || a.Confidence > 1 {
		t.Errorf("confidence %v out of [0.5, 1]", a.Confidence)
	}
	if a.Label == "" || a.Date == "" {
		t.Errorf("incomplete signal: %+v", a)
	}
}

func TestRecommendationLookup(t *testing.T) {
	g := New(42)

	got := g.Recommendation("TT")
	if got.Action != models.ActionBuy || got.Name != "Tunisie Telecom" {
		t.Errorf("covered symbol: %+v, want the universe entry", got)
	}

	got = g.Recommendation("ZZZ")
	if got.Symbol != "ZZZ" || got.Action != models.ActionHold {
		t.Errorf("uncovered symbol: %+v, want seeded HOLD", got)
	}
	if got.Confidence < 0.4 || got.Confidence > 0.7 {
		t.Errorf("uncovered symbol confidence %v out of [0.4, 0.7]", got.Confidence)
	}
}

func TestUniverseCopies(t *testing.T) {
	g := New(1)
	stocks := g.Stocks()
	if len(stocks) == 0 {
		t.Fatal("empty universe")
	}
	stocks[0].Symbol = "MUTATED"
	if g.Stocks()[0].Symbol == "MUTATED" {
		t.Error("universe mutated through returned slice")
	}

	p := g.Portfolio()
	p.Positions[0].Symbol = "MUTATED"
	if g.Portfolio().Positions[0].Symbol == "MUTATED" {
		t.Error("portfolio mutated through returned copy")
	}
}
