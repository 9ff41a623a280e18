package router

import (
	"github.com/yogajuristen/api/internal/application"
	"github.com/yogajuristen/api/internal/container"
	"github.com/yogajuristen/api/internal/infrastructure/mongodb"
	handlers "github.com/yogajuristen/api/internal/interface/http"
	"github.com/yogajuristen/api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(reg *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongoDB()

	users := mongodb.NewUserRepository(db)
	reviews := mongodb.NewReviewRepository(db)

	userSvc := application.NewUserService(users, logger)
	reviewSvc := application.NewReviewService(reviews, container.GetRedis(), cfg.ReviewCacheTTL, logger)
	contactSvc := application.NewContactService(container.GetMailgun(), cfg.ContactRecipient, cfg.MailSendEnabled, logger)

	reg.Add(modules.NewSiteModule())
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), users))
	reg.Add(modules.NewReviewModule(handlers.NewReviewHandler(reviewSvc, cfg, logger), users, cfg))
	reg.Add(modules.NewContactModule(handlers.NewContactHandler(contactSvc, logger)))
}
