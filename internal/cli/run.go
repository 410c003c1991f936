package cli

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/comfort-hq/digital-catalogue/internal/catalog"
	"github.com/comfort-hq/digital-catalogue/internal/config"
	"github.com/comfort-hq/digital-catalogue/internal/flows"
	"github.com/comfort-hq/digital-catalogue/internal/nav"
	"github.com/comfort-hq/digital-catalogue/internal/settings"
	"github.com/comfort-hq/digital-catalogue/internal/ui"
)

// AppID is the Fyne application id; preferences are stored under it
const AppID = "com.comfort-hq.digital-catalogue"

// NewRunCommand creates the run command. It is also what the bare root
// command does.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the catalogue window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd.Context(), rootOpts)
		},
	}
}

func runApp(ctx context.Context, opts *RootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting", zap.String("version", Version), zap.String("endpoint", opts.Config.Endpoint))

	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.AppIcon)

	prefs := config.NewPreferences(myApp)
	window := myApp.NewWindow("")
	window.SetIcon(ui.AppIcon)
	window.Resize(prefs.GetWindowSize())

	client := opts.client()
	controller := nav.NewController(fyne.Do, logger)

	root := ui.NewRootUI(myApp, window, controller, ui.Services{
		Settings: settings.NewStore(client, logger),
		Catalog:  catalog.NewService(client, logger),
		Flows:    flows.NewService(client, logger),
		Images:   ui.NewImageLoader(nil, logger),
		Logger:   logger,
	}, fyne.Do)

	window.SetCloseIntercept(func() {
		size := window.Canvas().Size()
		prefs.SetWindowSize(int(size.Width), int(size.Height))
		cancel()
		controller.Close()
		window.Close()
	})

	root.Start(ctx)
	window.ShowAndRun()

	logger.Info("Stopped")
	return nil
}
