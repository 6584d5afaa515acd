package main

import (
	"testing"

	drifttest "github.com/go-drift/drift/pkg/testing"

	"github.com/go-drift/hooksdemo/internal/config"
)

func TestHomePage_ShowsEveryCard(t *testing.T) {
	demo := config.DefaultDemo()
	demo.Memo.Multiplier = 10

	tester := drifttest.NewWidgetTesterWithT(t)
	if err := tester.PumpWidget(HomePage{Demo: demo}); err != nil {
		t.Fatal(err)
	}

	headings := []string{
		demo.Title,
		demo.Cards.State.Title,
		demo.Cards.Effect.Title,
		demo.Cards.Ref.Title,
		demo.Cards.Memo.Title,
		demo.Cards.Callback.Title,
	}
	for _, h := range headings {
		if !tester.Find(drifttest.ByText(h)).Exists() {
			t.Errorf("Expected heading %q", h)
		}
	}

	if !tester.Find(drifttest.ByText("Result: 1225")).Exists() {
		t.Error("Memo card should show the sum of 5 x 10 terms")
	}
	if got := tester.Find(drifttest.ByText("Toggle: OFF")).Count(); got != 2 {
		t.Errorf("Expected 2 toggle buttons, got %d", got)
	}
}
