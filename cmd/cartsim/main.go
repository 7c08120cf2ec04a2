package main

import (
	"fmt"
	"os"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/catalog"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/config"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/coupon"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/orders"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/service"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/shipping"
	"github.com/rs/zerolog"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	cfgPath := getEnv("CARTSIM_CONFIG", "cartsim.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := zerolog.New(logFile).With().Timestamp().Str("service", "cartsim").Logger()

	logger.Info().Str("config", cfgPath).Msg("cartsim started")

	catalogStore, err := catalog.Open(cfg.ProductsFile(), cfg.MaxNameLen)
	if err != nil {
		logger.Fatal().Err(err).Msg("open catalog")
	}
	if err := catalogStore.Seed(defaultProducts()); err != nil {
		logger.Fatal().Err(err).Msg("seed catalog")
	}

	couponStore, err := coupon.Open(cfg.CouponsFile())
	if err != nil {
		logger.Fatal().Err(err).Msg("open coupon store")
	}
	if err := couponStore.Seed(defaultCoupons()); err != nil {
		logger.Fatal().Err(err).Msg("seed coupons")
	}

	orderRepo, err := orders.Open(cfg.OrdersFile())
	if err != nil {
		logger.Fatal().Err(err).Msg("open order history")
	}

	carts := service.NewCartService(catalogStore, couponStore)
	checkout := service.NewCheckoutService(carts, catalogStore, orderRepo)
	estimator := shipping.NewEstimator(cfg.ShippingRates)

	userID := getEnv("CARTSIM_USER", "guest")
	app := newApp(cfg, logger, catalogStore, couponStore, orderRepo, carts, checkout, estimator, userID)
	app.run(os.Stdin, os.Stdout)

	logger.Info().Msg("cartsim finished")
}
