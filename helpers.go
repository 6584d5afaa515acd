package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/overlay"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/rendering"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/hooksdemo/internal/config"
)

// Palette shared by every card.
const (
	pageColor    = rendering.Color(0xFFF0F0F0)
	cardColor    = rendering.ColorWhite
	accentColor  = rendering.Color(0xFF007AFF)
	startColor   = rendering.Color(0xFF34C759)
	stopColor    = rendering.Color(0xFFFF3B30)
	toggleOn     = rendering.Color(0xFFFF9500)
	headingColor = rendering.Color(0xFF333333)
	mutedColor   = rendering.Color(0xFF666666)
	hintColor    = rendering.Color(0xFF888888)
	borderColor  = rendering.Color(0xFFCCCCCC)
)

// notifyFunc shows a blocking message. Cards take one so tests can observe
// notifications without an overlay.
type notifyFunc func(ctx core.BuildContext, title, message string)

// showAlert opens a modal alert with a single OK button.
func showAlert(ctx core.BuildContext, title, message string) {
	overlay.ShowAlertDialog(ctx, overlay.AlertDialogOptions{
		Title:        title,
		Content:      message,
		ConfirmLabel: "OK",
	})
}

// card wraps a demo section in a rounded white panel under its heading.
func card(heading config.CardText, children ...core.Widget) core.Widget {
	items := []core.Widget{
		widgets.Text{
			Content: heading.Title,
			Style: rendering.TextStyle{
				Color:      accentColor,
				FontSize:   18,
				FontWeight: rendering.FontWeightBold,
			},
		},
		widgets.VSpace(5),
		widgets.Text{
			Content: heading.Description,
			Wrap:    true,
			Style:   rendering.TextStyle{Color: mutedColor, FontSize: 14},
		},
		widgets.VSpace(15),
	}
	items = append(items, children...)
	if heading.Hint != "" {
		items = append(items,
			widgets.VSpace(10),
			widgets.Text{
				Content: heading.Hint,
				Wrap:    true,
				Style: rendering.TextStyle{
					Color:     hintColor,
					FontSize:  12,
					FontStyle: rendering.FontStyleItalic,
				},
			},
		)
	}

	return widgets.DecoratedBox{
		Color:        cardColor,
		BorderRadius: 10,
		Shadow: &rendering.BoxShadow{
			Color:      rendering.ColorBlack.WithAlpha(26),
			Offset:     rendering.Offset{X: 0, Y: 2},
			BlurRadius: 4,
		},
		ChildWidget: widgets.Padding{
			Padding: layout.EdgeInsetsAll(20),
			ChildWidget: widgets.ColumnOf(
				widgets.MainAxisAlignmentStart,
				widgets.CrossAxisAlignmentCenter,
				widgets.MainAxisSizeMin,
				items...,
			),
		},
	}
}

// valueText renders the prominent number line of a card.
func valueText(content string) core.Widget {
	return widgets.Text{
		Content: content,
		Style: rendering.TextStyle{
			Color:      headingColor,
			FontSize:   18,
			FontWeight: rendering.FontWeightSemibold,
		},
	}
}

// bodyText renders a plain line of card content.
func bodyText(content string) core.Widget {
	return widgets.Text{
		Content: content,
		Wrap:    true,
		Style:   rendering.TextStyle{Color: headingColor, FontSize: 14},
	}
}

// actionButton is the filled button used across cards.
func actionButton(ctx core.BuildContext, label string, color rendering.Color, onTap func()) core.Widget {
	return theme.ButtonOf(ctx, label, onTap).
		WithColor(color, rendering.ColorWhite).
		WithPadding(layout.EdgeInsetsAll(15)).
		WithBorderRadius(8)
}

// buttonRow lays buttons out side by side with a small gap.
func buttonRow(buttons ...core.Widget) core.Widget {
	children := make([]core.Widget, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			children = append(children, widgets.HSpace(10))
		}
		children = append(children, b)
	}
	return widgets.RowOf(
		widgets.MainAxisAlignmentCenter,
		widgets.CrossAxisAlignmentCenter,
		widgets.MainAxisSizeMin,
		children...,
	)
}

// inputField is the bordered text field used by the state and ref cards.
func inputField(ctx core.BuildContext, controller *platform.TextEditingController, placeholder string) widgets.TextField {
	field := theme.TextFieldOf(ctx, controller).
		WithPlaceholder(placeholder).
		WithBorderColor(graphics.Color(borderColor)).
		WithBorderRadius(8).
		WithPadding(layout.EdgeInsetsAll(12))
	field.Width = 200
	return field
}

// toggleButton shows the ON/OFF state of an unrelated boolean.
func toggleButton(ctx core.BuildContext, on bool, onTap func()) core.Widget {
	label := "Toggle: OFF"
	color := accentColor
	if on {
		label = "Toggle: ON"
		color = toggleOn
	}
	return actionButton(ctx, label, color, onTap)
}
