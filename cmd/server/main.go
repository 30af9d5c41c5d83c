package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sws10436/Smart-E-Buggy/config"
	"github.com/Sws10436/Smart-E-Buggy/module/core"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := config.EnsureSchema(db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("rabbitmq: %v", err)
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		log.Fatalf("mqtt: %v", err)
	}
	defer mqttClient.Disconnect(250)

	coreModule, err := core.Build(db, amqpConn, mqttClient, core.Options{
		Geofences:             cfg.Geofences,
		APIKey:                cfg.APIKey,
		MinTripTime:           time.Duration(cfg.MinTripTimeS) * time.Second,
		MinTripDistanceM:      cfg.MinTripDistanceM,
		EmissionFactorKgPerKm: cfg.EmissionFactorKgPerKm,
	})
	if err != nil {
		log.Fatalf("core module: %v", err)
	}

	if err := coreModule.StartSubscribers(); err != nil {
		log.Fatalf("start subscribers: %v", err)
	}

	r := gin.Default()

	health := config.NewHealthChecker(db, amqpConn, mqttClient)
	health.Register(r)

	coreModule.RegisterRoutes(&r.RouterGroup)

	log.Printf("listening on :%s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatalf("server: %v", err)
	}
}
