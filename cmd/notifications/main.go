package main

import (
	"flag"
	"log"

	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/token"

	"github.com/hushsocial/hush/pkg/conf"
	"github.com/hushsocial/hush/pkg/devices"
	"github.com/hushsocial/hush/pkg/feed"
	"github.com/hushsocial/hush/pkg/notifications"
	"github.com/hushsocial/hush/pkg/pubsub"
	"github.com/hushsocial/hush/pkg/redis"
	"github.com/hushsocial/hush/pkg/sql"
)

type Conf struct {
	APNS  conf.APNSConf     `mapstructure:"apns"`
	Redis conf.RedisConf    `mapstructure:"redis"`
	DB    conf.PostgresConf `mapstructure:"db"`
}

func parse() (*Conf, error) {
	var file string
	flag.StringVar(&file, "c", "config.toml", "config file")
	flag.Parse()

	config := &Conf{}
	err := conf.Load(file, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

func main() {
	config, err := parse()
	if err != nil {
		log.Fatal("failed to parse config")
	}

	db, err := sql.Open(config.DB)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	authKey, err := token.AuthKeyFromFile(config.APNS.Path)
	if err != nil {
		log.Fatalf("failed to load apns key: %v", err)
	}

	client := apns2.NewTokenClient(&token.Token{
		AuthKey: authKey,
		KeyID:   config.APNS.KeyID,
		TeamID:  config.APNS.Team,
	}).Production()

	rdb := redis.NewRedis(config.Redis)
	queue := pubsub.NewQueue(rdb)

	service := notifications.NewService(
		notifications.NewAPNS(config.APNS.Topic, client),
		devices.NewBackend(db),
		feed.NewBackend(db),
		notifications.NewThrottle(rdb),
	)

	service.Run(queue.Subscribe(pubsub.ReactionTopic))
}
