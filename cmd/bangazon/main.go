package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/app/config"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/app/console"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/app/menu"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/domain/service"
	"github.com/Chewieez/Bangazon-Command-Line-Application/pkg/infrastructure/storage"
)

func main() {
	app := &cli.App{
		Name:  "bangazon",
		Usage: "command line storefront ordering system",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "override the database file path",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "create or update the database schema and exit",
				Action: runMigrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("bangazon exited with error")
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if path := c.String("db"); path != "" {
		cfg.DBPath = path
	}

	setupLogging(cfg)

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := storage.Migrate(db); err != nil {
		return err
	}

	customerRepo := storage.NewCustomerRepository(db)
	productRepo := storage.NewProductRepository(db)
	paymentRepo := storage.NewPaymentTypeRepository(db)
	orderRepo := storage.NewOrderRepository(db)

	inventory := service.NewInventoryService(orderRepo)

	m := menu.New(console.New(os.Stdin, os.Stdout), menu.Services{
		Customers:   service.NewCustomerService(customerRepo),
		Products:    service.NewProductService(productRepo, inventory),
		Payments:    service.NewPaymentTypeService(paymentRepo),
		Orders:      service.NewOrderService(orderRepo),
		Inventory:   inventory,
		Reports:     service.NewReportService(orderRepo),
		PaymentRepo: paymentRepo,
	})

	log.WithField("db", cfg.DBPath).Info("bangazon started")
	return m.Run()
}

func runMigrate(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if path := c.String("db"); path != "" {
		cfg.DBPath = path
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	return storage.Migrate(db)
}

// setupLogging sends structured logs to a file so the interactive menus
// stay readable.
func setupLogging(cfg *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	file, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(file)
	}
}
