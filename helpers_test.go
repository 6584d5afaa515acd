package main

import (
	"testing"

	"github.com/go-drift/drift/pkg/layout"
	drifttest "github.com/go-drift/drift/pkg/testing"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/hooksdemo/internal/config"
)

func TestCard_RoundedPanel(t *testing.T) {
	w := card(config.CardText{Title: "1. State", Hint: "hint"}, bodyText("body"))

	box, ok := w.(widgets.DecoratedBox)
	if !ok {
		t.Fatalf("Expected widgets.DecoratedBox, got %T", w)
	}
	if box.BorderRadius != 10 {
		t.Errorf("Expected border radius 10, got %v", box.BorderRadius)
	}
	if box.Color != cardColor {
		t.Errorf("Expected card color %v, got %v", cardColor, box.Color)
	}
	if box.Shadow == nil {
		t.Error("Card should cast a shadow")
	}

	padding, ok := box.ChildWidget.(widgets.Padding)
	if !ok {
		t.Fatalf("Expected widgets.Padding inside the panel, got %T", box.ChildWidget)
	}
	if padding.Padding != layout.EdgeInsetsAll(20) {
		t.Errorf("Expected 20pt insets, got %+v", padding.Padding)
	}
	if padding.ChildWidget == nil {
		t.Error("Padding should wrap the card column")
	}
}

func TestHomePage_RendersCardPanels(t *testing.T) {
	demo := config.DefaultDemo()
	demo.Memo.Multiplier = 10

	tester := drifttest.NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(HomePage{Demo: demo}); err != nil {
		t.Fatal(err)
	}

	// Buttons draw their own boxes, so count at least one panel per card.
	if got := tester.Find(drifttest.ByType[widgets.DecoratedBox]()).Count(); got < 5 {
		t.Errorf("Expected at least 5 card panels, got %d", got)
	}
	if !tester.Find(drifttest.ByType[widgets.Container]()).Exists() {
		t.Error("Page should be wrapped in a colored container")
	}
}
