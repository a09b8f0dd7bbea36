package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/dataset"
	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/db"
	"github.com/YouCanCallMeDustin/synthetic-ecommerce-dataset/pkg/export"
)

func main() {
	cfg := dataset.FromEnv()

	flag.IntVar(&cfg.Users, "users", cfg.Users, "number of users to generate")
	flag.IntVar(&cfg.Products, "products", cfg.Products, "number of products to generate")
	flag.IntVar(&cfg.Orders, "orders", cfg.Orders, "number of orders to generate")
	flag.IntVar(&cfg.Reviews, "reviews", cfg.Reviews, "number of reviews to generate")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "output directory")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: csv, json, sql or sqlite")
	now := flag.String("now", "", "reference date for temporal sampling (e.g. 2026-08-30); defaults to the current time")
	flag.Parse()

	if *now != "" {
		t, err := dataset.ParseDate(*now)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Now = t
	}

	gen, err := dataset.New(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("generating dataset: users=%d products=%d orders=%d reviews=%d seed=%d",
		cfg.Users, cfg.Products, cfg.Orders, cfg.Reviews, cfg.Seed)

	start := time.Now()
	tables, err := gen.Generate()
	if err != nil {
		log.Fatal(err)
	}
	for _, note := range tables.Notes {
		log.Printf("note: %s", note)
	}
	log.Printf("generated %d users, %d products, %d orders, %d order items, %d reviews in %s",
		len(tables.Users), len(tables.Products), len(tables.Orders),
		len(tables.OrderItems), len(tables.Reviews), time.Since(start).Round(time.Millisecond))

	if cfg.Format == "sqlite" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			log.Fatal(err)
		}
		path := filepath.Join(cfg.OutputDir, "dataset.db")
		gdb, err := db.Init(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := db.Load(gdb, tables); err != nil {
			log.Fatal(err)
		}
		log.Printf("dataset loaded into %s", path)
		return
	}

	if err := export.Write(cfg, tables); err != nil {
		log.Fatal(err)
	}
	log.Printf("dataset written to %s/ as %s", cfg.OutputDir, cfg.Format)
}
