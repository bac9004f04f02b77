package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hushsocial/hush/pkg/conf"
	"github.com/hushsocial/hush/pkg/devices"
	"github.com/hushsocial/hush/pkg/feed"
	httputil "github.com/hushsocial/hush/pkg/http"
	"github.com/hushsocial/hush/pkg/http/middlewares"
	"github.com/hushsocial/hush/pkg/live"
	"github.com/hushsocial/hush/pkg/progress"
	"github.com/hushsocial/hush/pkg/pubsub"
	"github.com/hushsocial/hush/pkg/reactions"
	"github.com/hushsocial/hush/pkg/redis"
	"github.com/hushsocial/hush/pkg/sessions"
	"github.com/hushsocial/hush/pkg/sql"
)

type Conf struct {
	Redis conf.RedisConf    `mapstructure:"redis"`
	DB    conf.PostgresConf `mapstructure:"db"`
	API   conf.AddrConf     `mapstructure:"api"`
}

var server = &cobra.Command{
	Use:   "server",
	Short: "runs the feed server",
	RunE:  runServer,
}

var file string

func init() {
	server.Flags().StringVarP(&file, "config", "c", "config.toml", "config file")
}

func runServer(*cobra.Command, []string) error {
	config := &Conf{}
	err := conf.Load(file, config)
	if err != nil {
		return errors.Wrap(err, "failed to parse config")
	}

	rdb := redis.NewRedis(config.Redis)

	db, err := sql.Open(config.DB)
	if err != nil {
		return errors.Wrap(err, "failed to open db")
	}

	queue := pubsub.NewQueue(rdb)

	reactionsBackend := reactions.NewBackend(db)
	cache := reactions.NewCache(rdb)

	engine := reactions.NewEngine(reactionsBackend)
	engine.OnSettle(func(post string, viewer int, emoji string, reacted bool) {
		cache.Invalidate(post)

		event := pubsub.NewReactionRemovedEvent(post, viewer, emoji)
		if reacted {
			event = pubsub.NewReactionAddedEvent(post, viewer, emoji)
		}

		err := queue.Publish(pubsub.ReactionTopic, event)
		if err != nil {
			log.Printf("queue.Publish err: %v", err)
		}
	})

	shelf := progress.NewBackend(db)

	hub := live.NewHub()
	go hub.Run(queue.Subscribe(pubsub.ReactionTopic))

	router := mux.NewRouter()

	feed.NewEndpoint(feed.NewBackend(db), shelf, reactionsBackend, cache, engine, queue).Mount(router)
	progress.NewEndpoint(shelf).Mount(router)
	reactions.NewEndpoint(engine, reactionsBackend).Mount(router)
	devices.NewEndpoint(devices.NewBackend(db)).Mount(router)

	router.Path("/v1/live").HandlerFunc(hub.ServeWS)

	sm := sessions.NewSessionManager(rdb)
	amw := middlewares.NewAuthenticationMiddleware(sm)
	router.Use(amw.Middleware)

	return http.ListenAndServe(fmt.Sprintf(":%d", config.API.Port), httputil.CORS(router))
}
