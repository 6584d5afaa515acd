package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/hooksdemo/internal/config"
)

// HomePage stacks the title and the five cards in a scroll view.
type HomePage struct {
	core.StatelessBase
	Demo config.DemoConfig
}

func (p HomePage) Build(ctx core.BuildContext) core.Widget {
	demo := p.Demo
	cards := []core.Widget{
		StateCard{Heading: demo.Cards.State},
		EffectCard{Heading: demo.Cards.Effect, Period: demo.Timer.Period},
		RefCard{Heading: demo.Cards.Ref},
		MemoCard{Heading: demo.Cards.Memo, Initial: demo.Memo.Initial, Multiplier: demo.Memo.Multiplier},
		CallbackCard{Heading: demo.Cards.Callback},
	}

	children := []core.Widget{
		widgets.Text{
			Content: demo.Title,
			Wrap:    true,
			Style: rendering.TextStyle{
				Color:      headingColor,
				FontSize:   24,
				FontWeight: rendering.FontWeightBold,
			},
		},
	}
	for _, c := range cards {
		children = append(children, widgets.VSpace(20), c)
	}

	// Content scrolls behind the status bar but starts below it.
	return widgets.Container{
		Color:       pageColor,
		ChildWidget: widgets.ScrollView{
			ScrollDirection: widgets.AxisVertical,
			Physics:         widgets.BouncingScrollPhysics{},
			Padding:         widgets.SafeAreaPadding(ctx).Add(20),
			Child: widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentStretch,
				widgets.MainAxisSizeMin,
				children...,
			),
		},
	}
}
