package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yogajuristen/api/config"
	"github.com/yogajuristen/api/pkg/mailer"
)

// app-level container to share constructed components across packages.
// Router can auto-wire modules from these singletons. All of them are
// built once in main with explicit shutdown; nothing here owns a
// lifecycle of its own.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	mongoDB     *mongo.Database
	redisClient *redis.Client

	mailgunClient *mailer.Mailgun
)

func SetConfig(c *config.Config)        { cfg = c }
func GetConfig() *config.Config         { return cfg }
func SetLogger(l *logrus.Logger)        { logger = l }
func GetLogger() *logrus.Logger         { return logger }
func SetMongoDB(db *mongo.Database)     { mongoDB = db }
func GetMongoDB() *mongo.Database       { return mongoDB }
func SetRedis(r *redis.Client)          { redisClient = r }
func GetRedis() *redis.Client           { return redisClient }
func SetMailgun(m *mailer.Mailgun)      { mailgunClient = m }
func GetMailgun() *mailer.Mailgun       { return mailgunClient }
