package components

import (
	"io"
	"os"

	"offer-console/internal/handler/cli"

	"go.uber.org/fx"
)

var ConsoleModule = fx.Module("console",
	fx.Provide(
		func() io.Writer { return os.Stdout },
		cli.NewConsole,
	),
)
