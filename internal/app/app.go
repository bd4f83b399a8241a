package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hasinhayder/tutor-sslcommerz/config"
	"github.com/hasinhayder/tutor-sslcommerz/internal/handlers"
	"github.com/hasinhayder/tutor-sslcommerz/internal/models"
	"github.com/hasinhayder/tutor-sslcommerz/internal/publisher"
	"github.com/hasinhayder/tutor-sslcommerz/internal/repository/postgres"
	"github.com/hasinhayder/tutor-sslcommerz/internal/service"
	"github.com/hasinhayder/tutor-sslcommerz/internal/sslcommerz"
	"github.com/hasinhayder/tutor-sslcommerz/internal/subscriber"
	"github.com/sirupsen/logrus"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Order{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	orderRepo := postgres.New[models.Order](db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	publisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, a.config.GetRetryConfig())

	gatewayClient := sslcommerz.NewClient(sslcommerz.Environment(cfg.SSLCommerz.Environment))
	reconciler := service.NewOrderReconciler(orderRepo)
	callbackService := service.NewCallbackService(cfg.SSLCommerz, gatewayClient, reconciler, publisher)
	checkoutService := service.NewCheckoutService(orderRepo, gatewayClient, cfg.SSLCommerz)
	paymentHandler := handlers.NewPaymentHandler(checkoutService, callbackService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(paymentHandler)

	a.initSubscribers(paymentHandler, publisher, a.config.GetRetryConfig())
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(paymentHandler *handlers.PaymentHandler, publisher *publisher.KafkaPublisher, config config.RetryConfig) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.GatewayConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, publisher, config)

	ctx := context.Background()
	go consumer.Listen(ctx, func(topic string, value []byte) error {
		err := paymentHandler.HandleEvents(context.Background(), topic, value)
		if err != nil {
			logrus.Error(err.Error())
		}
		return err
	})
}
