package main

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/push-protocol/push-showrunners-framework-sub000/internal/channels/gas"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/channels/governance"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/channels/news"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/checkpoint"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/config"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/blockchain/evm"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/feed"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/push"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/storage/postgres"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/infra/storage/redis"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/notify"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/logger"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/resilience/retry"
	httptransport "github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/transport/http"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/pkg/transport/jsonrpc"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/retryqueue"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/scheduler"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/showrunner"
	"github.com/push-protocol/push-showrunners-framework-sub000/internal/wallet"
)

// storage is what every backend provides.
type storage interface {
	checkpoint.Store
	retryqueue.Store
	showrunner.NotifiedGuard
	Close() error
}

func openStorage(ctx context.Context, cfg config.Storage) (storage, error) {
	switch cfg.Backend {
	case "redis":
		client, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return client, nil
	case "postgres":
		client, err := postgres.Connect(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}

		if err := client.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("%w (closing: %v)", err, client.Close())
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

type application struct {
	registry *showrunner.Registry
	sender   notify.Sender
	jobs     []scheduler.Job
}

func build(ctx context.Context, cfg config.Config, store storage) application {
	pool, err := wallet.LoadPool(ctx, cfg.KeysDir)
	if err != nil {
		logger.Error(ctx, "wallet configuration has errors, affected channels are disabled",
			"wallet.dir", cfg.KeysDir,
			"error", err,
		)
	}
	keys := wallet.NewResolver(pool, nil)

	httpClient := httptransport.NewClient(httptransport.WithTimeout(cfg.IOTimeout))
	sender := push.NewClient(httpClient, cfg.Push.Endpoint)
	chain := evm.NewClient(jsonrpc.NewClient(httpClient, cfg.Chain.RPCURL))

	app := application{
		registry: showrunner.NewRegistry(),
		sender:   sender,
	}

	headRetry := showrunner.WithRetry(retry.New(
		retry.WithAttempts(3),
		retry.WithDelay(time.Second),
		retry.WithLastErrorOnly(true),
	))

	channel := func(name, address string) *showrunner.ChannelContext {
		identity := notify.Identity{Name: name, Address: address, ChainID: cfg.Chain.ChainID}
		dispatcher := notify.New(identity, keys, sender,
			notify.WithRetryStore(store),
			notify.WithOffChain(cfg.Push.OffChain),
			notify.WithEnv(cfg.Push.Env),
		)

		return showrunner.NewChannelContext(ctx, identity, keys, dispatcher, store,
			showrunner.WithNotifiedGuard(store, cfg.Storage.GuardTTL),
		)
	}

	register := func(cc *showrunner.ChannelContext, task showrunner.Task, interval time.Duration) {
		if err := app.registry.Register(cc, task); err != nil {
			logger.Fatal(ctx, "could not register task", "error", err)
		}
		app.jobs = append(app.jobs, scheduler.TaskJob(task, interval, cfg.JobTimeout))
	}

	if cfg.Gas.Enabled {
		cc := channel("gas", cfg.Gas.Address)
		threshold := new(big.Int).Mul(big.NewInt(cfg.Gas.ThresholdGwei), big.NewInt(1_000_000_000))
		register(cc, gas.NewTask(cc, chain, threshold, headRetry), cfg.Gas.Interval)
	}

	if cfg.Governance.Enabled {
		cc := channel("governance", cfg.Governance.Address)
		task := governance.NewTask(cc, chain, governance.Config{
			Contract:    cfg.Governance.Contract,
			Topic:       cfg.Governance.Topic,
			ExplorerURL: cfg.Governance.ExplorerURL,
			MaxRange:    cfg.Governance.MaxRange,
		}, headRetry)
		register(cc, task, cfg.Governance.Interval)
	}

	if cfg.News.Enabled {
		cc := channel("news", cfg.News.Address)
		f := feed.NewClient(httpClient, cfg.News.FeedURL, cfg.News.PageSize)
		register(cc, news.NewTask(cc, f), cfg.News.Interval)
	}

	return app
}
