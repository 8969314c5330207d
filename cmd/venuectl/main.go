package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-site/internal/config"
	dbpkg "github.com/BruksfildServices01/venue-site/internal/db"
	infraRepo "github.com/BruksfildServices01/venue-site/internal/infra/repository"
	"github.com/BruksfildServices01/venue-site/internal/logging"
	ucAuth "github.com/BruksfildServices01/venue-site/internal/usecase/auth"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:  "venuectl",
		Usage: "venue site administration",
		Commands: []*cli.Command{
			migrateCommand(cfg),
			bootstrapCommand(cfg),
			createUserCommand(cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := dbpkg.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := dbpkg.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func migrateCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "create or update the database tables",
		Action: func(c *cli.Context) error {
			if _, err := openDB(cfg); err != nil {
				return err
			}
			fmt.Println("Migrations applied")
			return nil
		},
	}
}

func bootstrapCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "bootstrap",
		Usage: "seed the default admin when no user exists",
		Action: func(c *cli.Context) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			users := infraRepo.NewUserGormRepository(db)
			created, err := ucAuth.NewBootstrap(users, logging.New(cfg)).Execute(c.Context)
			if err != nil {
				return err
			}
			if created {
				fmt.Println("Default admin created, change its password")
			} else {
				fmt.Println("Users already exist, nothing to do")
			}
			return nil
		},
	}
}

func createUserCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "create-user",
		Usage: "add an admin account",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "username", Aliases: []string{"u"}, Required: true},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Required: true, EnvVars: []string{"VENUE_PASSWORD"}},
		},
		Action: func(c *cli.Context) error {
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			users := infraRepo.NewUserGormRepository(db)
			u, err := ucAuth.NewCreateUser(users).Execute(c.Context, c.String("username"), c.String("password"))
			if err != nil {
				return err
			}
			fmt.Printf("Created user %s\n", u.Username)
			return nil
		},
	}
}
