package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/LuizaMunis/HealthCare-sub000/api"
)

// Run executes a given function with dependencies supplied by the service DI
// graph. `f` must return an error or nothing.
func Run(f interface{}, opts ...fx.Option) error {
	options := append(opts, api.Dependencies()...)
	options = append(options, fx.NopLogger, fx.Invoke(f))

	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return err
	}
	return app.Stop(ctx)
}

var rootCmd = &cobra.Command{
	Use:   "healthctl",
	Short: "Helper tool to manage health records",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
