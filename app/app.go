package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/libris-works/library-service/config"
	"github.com/libris-works/library-service/internal/handler"
	"github.com/libris-works/library-service/internal/repository"
	"github.com/libris-works/library-service/internal/server"
	"github.com/libris-works/library-service/internal/service"
	"github.com/libris-works/library-service/internal/stats"
	"github.com/libris-works/library-service/migrations"
	"github.com/libris-works/library-service/pkg/kafka"
	"github.com/libris-works/library-service/pkg/logger"
	"github.com/libris-works/library-service/pkg/postgres"
	"go.uber.org/zap"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "library")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo %v", err)
	}
	svc := service.NewService(repo, log)

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Warn("kafka producer unavailable, events disabled", zap.Error(err))
		producer = nil
	}

	consumeCtx, stopConsume := context.WithCancel(context.Background())
	defer stopConsume()
	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
	if err != nil {
		log.Warn("kafka consumer unavailable, stats disabled", zap.Error(err))
	} else {
		go kafka.Consume(consumeCtx, consumer, stats.NewConsumer(repo.ApplyEvent, log), kafka.ReservationEventsTopic)
	}

	h := handler.New(svc, producer, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	stopConsume()
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
