package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/color-game/colorimetry/api"
	"github.com/color-game/colorimetry/config"
	"github.com/color-game/colorimetry/converter"
	"github.com/color-game/colorimetry/datastore"
	"github.com/color-game/colorimetry/migrations"
	"github.com/color-game/colorimetry/models"
	"github.com/color-game/colorimetry/scheduler"
)

func main() {
	convertInput := flag.String("convert", "", "convert a color string and exit")
	target := flag.String("to", "", "target format for -convert (hex, rgb, hsl, hsv, cmyk, lab); empty prints all")
	hashPassword := flag.String("hash-password", "", "print a bcrypt hash for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := models.GenerateHash(*hashPassword)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	svc := converter.NewService(converter.WithMode(cfg.Mode()))

	if *convertInput != "" {
		if err := runConvert(svc, *convertInput, *target); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	opts := []converter.Option{converter.WithMode(cfg.Mode())}
	if cfg.DevMode {
		opts = append(opts, converter.WithLogger(log.Default()))
	}
	app := &api.Application{
		Config:    *cfg,
		Converter: converter.NewService(opts...),
	}

	if cfg.HistoryEnabled {
		repo, closeRepo := openHistory(cfg)
		defer closeRepo()

		app.ConversionRepo = repo
		app.Pruner = scheduler.NewPruner(repo, cfg.HistoryRetention, cfg.PruneInterval)
		app.Pruner.Start()
	}

	mux := http.NewServeMux()

	log.Println("Colorimetry API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// openHistory returns the configured conversion store. DB_TYPE=memory keeps
// history in process; anything else is handed to database/sql.
func openHistory(cfg *config.Config) (datastore.ConversionRepository, func()) {
	if cfg.DatabaseType == "memory" {
		log.Println("Keeping conversion history in memory")
		return datastore.NewMemoryConversionStore(), func() {}
	}

	connStr := datastore.BuildDBConnStr(
		cfg.DatabaseHost,
		cfg.DatabasePassword,
		cfg.DatabaseUser,
		cfg.DatabaseName,
		cfg.SSLMode,
	)

	dbConn, dbErr := datastore.NewDB(cfg.DatabaseType, connStr)
	if dbErr != nil {
		log.Fatalf("Failed to connect to database: %v", dbErr)
	}

	if err := migrations.RunMigrations(dbConn, migrations.Source(cfg.MigrationsDir)); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	repo, repoErr := datastore.NewConversionDatabase(dbConn)
	if repoErr != nil {
		log.Fatalf("Failed to create conversion repository: %v", repoErr)
	}

	return repo, func() { dbConn.Close() }
}

func runConvert(svc *converter.Service, input, target string) error {
	if target == "" {
		rep, err := svc.Represent(input)
		if err != nil {
			return err
		}
		for _, f := range models.Formats {
			fmt.Printf("%-5s %s\n", f, rep.String(f))
		}
		return nil
	}

	f, err := models.ParseFormat(target)
	if err != nil {
		return err
	}
	out, err := svc.Convert(input, f)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
