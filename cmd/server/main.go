package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"

	"github.com/cyclepoint/rentalshop-backend/analytics"
	"github.com/cyclepoint/rentalshop-backend/api"
	"github.com/cyclepoint/rentalshop-backend/booking"
	"github.com/cyclepoint/rentalshop-backend/costs"
	"github.com/cyclepoint/rentalshop-backend/garage"
	"github.com/cyclepoint/rentalshop-backend/internal/o11y"
	"github.com/cyclepoint/rentalshop-backend/internal/sqlitedb"
	"github.com/cyclepoint/rentalshop-backend/pricing"
)

var cli = struct {
	DatabasePath string `name:"database-path" env:"DATABASE_PATH" default:"rentalshop.db"`
	Port         int    `name:"port" env:"PORT" default:"8080"`
	LogFile      string `name:"log-file" env:"LOG_FILE" help:"Write JSON logs to a rotated file instead of stdout."`
}{}

func main() {
	if err := run(); err != nil {
		log.Fatalf("unexpected error: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	kong.Parse(&cli)

	db, err := sqlitedb.Open(ctx, cli.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	obs, cleanup, err := o11y.Setup(ctx, cli.LogFile)
	defer cleanup()
	if err != nil {
		return err
	}

	gr := garage.NewRepository(db)
	bkr := booking.NewRepository(db)
	pr := pricing.NewRepository(db)
	cr := costs.NewRepository(db)
	ar := analytics.NewRepository(db)

	a := api.New(obs, gr, bkr, pr, cr, ar)

	serv := http.Server{
		Addr:    fmt.Sprintf(":%d", cli.Port),
		Handler: a.Router(),
	}

	go func() {
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = serv.Shutdown(ctx)
	if err != nil {
		return err
	}
	return nil
}
