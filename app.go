package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/engine"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/theme"

	"github.com/go-drift/hooksdemo/internal/config"
)

// App returns the root widget for the hooks demo.
func App(cfg *config.Resolved) core.Widget {
	return HooksApp{Config: cfg}
}

// HooksApp sets up the light Material theme and a navigator whose overlay
// hosts the cards' alert dialogs.
type HooksApp struct {
	core.StatefulBase
	Config *config.Resolved
}

func (a HooksApp) CreateState() core.State {
	return &hooksAppState{demo: a.Config.Demo}
}

type hooksAppState struct {
	core.StateBase
	demo      config.DemoConfig
	themeData *theme.AppThemeData
}

func (s *hooksAppState) InitState() {
	s.themeData = theme.NewAppThemeData(theme.TargetPlatformMaterial, theme.BrightnessLight)
	engine.SetBackgroundColor(graphics.Color(pageColor))
	s.applySystemUI()
}

func (s *hooksAppState) Build(ctx core.BuildContext) core.Widget {
	navigator := navigation.Navigator{
		InitialRoute: "/",
		OnGenerateRoute: func(settings navigation.RouteSettings) navigation.Route {
			if settings.Name != "/" {
				return nil
			}
			return navigation.NewMaterialPageRoute(
				func(ctx core.BuildContext) core.Widget {
					return HomePage{Demo: s.demo}
				},
				settings,
			)
		},
	}

	return theme.AppTheme{
		Data:        s.themeData,
		ChildWidget: navigator,
	}
}

func (s *hooksAppState) applySystemUI() {
	background := graphics.Color(pageColor)
	_ = platform.SetSystemUI(platform.SystemUIStyle{
		StatusBarHidden: false,
		StatusBarStyle:  platform.StatusBarStyleDark,
		TitleBarHidden:  false,
		BackgroundColor: &background,
		Transparent:     true,
	})
}
