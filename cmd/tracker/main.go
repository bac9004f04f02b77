package main

import (
	"flag"
	"log"

	"github.com/dukex/mixpanel"

	"github.com/hushsocial/hush/pkg/conf"
	"github.com/hushsocial/hush/pkg/pubsub"
	"github.com/hushsocial/hush/pkg/redis"
	"github.com/hushsocial/hush/pkg/tracking"
)

type Conf struct {
	Mixpanel struct {
		Token string `mapstructure:"token"`
		URL   string `mapstructure:"url"`
	} `mapstructure:"mixpanel"`
	Redis conf.RedisConf `mapstructure:"redis"`
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

	client := mixpanel.New(config.Mixpanel.Token, config.Mixpanel.URL)
	tracker := tracking.NewMixpanelTracker(client)

	rdb := redis.NewRedis(config.Redis)
	queue := pubsub.NewQueue(rdb)

	events := queue.Subscribe(pubsub.PostTopic, pubsub.ReactionTopic)

	for evt := range events {
		event, ok := tracking.FromPubsub(evt)
		if !ok {
			continue
		}

		err := tracker.Track(event)
		if err != nil {
			log.Printf("tracker.Track err %v", err)
		}
	}
}
