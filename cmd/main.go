package main

import (
	"context"
	"os"

	"nextcare-api/cmd/bootstrap"
	"nextcare-api/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "nextcare-api",
		Short:         "NextCare patient portal API",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		serveCommand(),
		migrateCommand(),
		createAdminCommand(),
		seedCommand(),
	)
	return root
}

// withApp initializes the application, runs fn and releases connections afterwards.
func withApp(fn func(app *bootstrap.App) error) error {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Errorf("Failed to initialize application: %v", err)
		return err
	}
	defer app.Close()

	return fn(app)
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New()
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}

			app.Serve()
			return nil
		},
	}
}

func migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *bootstrap.App) error {
				if err := app.Migrate(); err != nil {
					app.Log.Errorf("Migration failed: %v", err)
					return err
				}
				app.Log.Info("Migration completed")
				return nil
			})
		},
	}
}

func createAdminCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create the initial admin account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *bootstrap.App) error {
				created, err := app.SeedUsecase().CreateAdmin(context.Background(), email, password)
				if err != nil {
					app.Log.Errorf("Failed to create admin: %v", err)
					return err
				}
				if !created {
					app.Log.Infof("Admin user already exists: %s", email)
					return nil
				}
				app.Log.Infof("Admin user created: %s", email)
				app.Log.Warn("Change the admin password after first login")
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", usecase.DefaultAdminEmail, "admin email")
	cmd.Flags().StringVar(&password, "password", usecase.DefaultAdminPassword, "admin password")
	return cmd
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace doctors and health resources with the sample catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(func(app *bootstrap.App) error {
				result, err := app.SeedUsecase().SeedCatalog(context.Background())
				if err != nil {
					app.Log.Errorf("Seeding failed: %v", err)
					return err
				}
				app.Log.WithFields(logrus.Fields{
					"health_resources": result.HealthResources,
					"doctors":          result.Doctors,
				}).Info("Catalog seeded")
				return nil
			})
		},
	}
}
