package deps

import (
	"context"
	"net/url"
	"sync"
	"time"

	"billmind/internal/config"
	dl "billmind/internal/core/domain/logging"
	drl "billmind/internal/core/domain/rate_limiter"
	"billmind/internal/core/domain/reminder"
	"billmind/internal/core/domain/spending"
	"billmind/internal/core/domain/user"
	dbreminder "billmind/internal/db/reminder"
	dbspending "billmind/internal/db/spending"
	"billmind/internal/implementations/identity"
	"billmind/internal/implementations/logging"
	ratelimiter "billmind/internal/implementations/rate_limiter"
	reminderevents "billmind/internal/implementations/reminder_events"
	textextractor "billmind/internal/implementations/text_extractor"
	"billmind/internal/rabbitmq"
	rabbitmqevents "billmind/internal/rabbitmq/publishers/reminder_events"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/r3labs/sse/v2"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB        *pgxpool.Pool
	Redis     *redis.Client
	Rabbitmq  *rabbitmq.Connection
	SseServer *sse.Server

	Now func() time.Time

	ReminderRepository    reminder.Repository
	TransactionRepository spending.Repository

	RateLimiter drl.RateLimiter

	TextExtractor      reminder.TextExtractor
	ReminderNormalizer *reminder.Normalizer
	IdentityResolver   user.IdentityResolver

	ReminderEventPublisher reminder.EventPublisher
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()
	closeSseServer := deps.initSseServer()

	deps.Now = func() time.Time { return time.Now().UTC() }

	deps.ReminderRepository = dbreminder.NewPgxReminderRepository(deps.DB)
	deps.TransactionRepository = dbspending.NewPgxTransactionRepository(deps.DB)

	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)

	deps.TextExtractor = deps.initTextExtractor()
	deps.ReminderNormalizer = reminder.NewNormalizer(deps.Config.ReminderTimeZone)
	deps.IdentityResolver = identity.NewStaticResolver()

	closeEventPublisher := deps.initReminderEventPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeSseServer,
			closeEventPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initSseServer() func() {
	deps.SseServer = sse.New()
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down SSE server.")
		deps.SseServer.Close()
		deps.Logger.Info(context.Background(), "SSE server shut down.")
	}
}

func (deps *Deps) initTextExtractor() reminder.TextExtractor {
	baseURL, err := url.Parse(deps.Config.OpenRouterBaseURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Invalid OpenRouter base URL.", dl.Entry("err", err))
		panic(err)
	}
	return textextractor.NewOpenRouterExtractor(
		deps.Logger,
		*baseURL,
		deps.Config.OpenRouterAPIKey,
		deps.Config.OpenRouterModel,
		deps.Config.OpenRouterTimeout,
	)
}

func (deps *Deps) initReminderEventPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmqChannel.ExchangeDeclare(
		deps.Config.RabbitmqReminderEventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
		panic(err)
	}

	deps.ReminderEventPublisher = reminderevents.NewComposite(
		rabbitmqevents.NewRabbitMQ(
			deps.Logger,
			rabbitmqChannel,
			deps.Config.RabbitmqReminderEventsExchange,
		),
		reminderevents.NewSSE(deps.SseServer),
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reminder event publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Reminder event publisher shut down.")
	}
}
