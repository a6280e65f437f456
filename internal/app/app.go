package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/SIRETECH254/sire-payment-tracker/config"
	"github.com/SIRETECH254/sire-payment-tracker/internal/cache"
	"github.com/SIRETECH254/sire-payment-tracker/internal/handlers"
	"github.com/SIRETECH254/sire-payment-tracker/internal/models"
	"github.com/SIRETECH254/sire-payment-tracker/internal/paymentsapi"
	"github.com/SIRETECH254/sire-payment-tracker/internal/publisher"
	"github.com/SIRETECH254/sire-payment-tracker/internal/realtime"
	"github.com/SIRETECH254/sire-payment-tracker/internal/repository/posgrest"
	"github.com/SIRETECH254/sire-payment-tracker/internal/tracker"
)

type App struct {
	config  *config.Config
	Router  *gin.Engine
	tracker *tracker.Tracker
	channel *realtime.KafkaChannel
	cancel  context.CancelFunc
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.TrackingRecord{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	historyRepo := posgrest.New[models.TrackingRecord](db)

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	resolvedPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	statusCache := cache.New(redisClient, cfg.Redis.Prefix, cfg.Redis.StatusTTL)

	queryClient := paymentsapi.NewClient(cfg.PaymentsAPI.BaseURL, cfg.PaymentsAPI.Timeout)

	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	channelTopics := strings.Split(cfg.Kafka.ChannelTopics, ",")
	a.channel = realtime.NewKafkaChannel(brokers, channelTopics, cfg.Kafka.TrackerConsumerGroup)

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.channel.Listen(ctx)

	a.tracker = tracker.NewTracker(queryClient, a.channel, resolvedPublisher, historyRepo, statusCache, tracker.Options{
		FallbackTimeout:      cfg.Tracker.FallbackTimeout,
		FallbackQueryTimeout: cfg.Tracker.FallbackQueryTimeout,
	})

	trackingHandler := handlers.NewTrackingHandler(a.tracker, historyRepo, statusCache)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(trackingHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

// Shutdown tears down all live sessions and the realtime channel.
func (a *App) Shutdown() {
	logrus.Info("shutting down payment tracker")
	if a.tracker != nil {
		a.tracker.StopAll()
	}
	if a.cancel != nil {
		a.cancel()
	}
	if a.channel != nil {
		a.channel.Close()
	}
}
