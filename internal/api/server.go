package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/oportuna/oportuna-api/docs"
	v1 "github.com/oportuna/oportuna-api/internal/api/handler/v1"
	"github.com/oportuna/oportuna-api/internal/api/middleware"
	"github.com/oportuna/oportuna-api/internal/config"
	"github.com/oportuna/oportuna-api/internal/repository"
	"github.com/oportuna/oportuna-api/internal/repository/dao"
	"github.com/oportuna/oportuna-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	userHandler := s.initUserHandler(db)
	opportunityHandler := s.initOpportunityHandler(db)
	reservationHandler := s.initReservationHandler(db)
	reviewHandler := s.initReviewHandler(db)
	favoriteHandler := s.initFavoriteHandler(db)
	impulseHandler := s.initImpulseHandler(db)
	s.MountHandlers(authHandler, userHandler, opportunityHandler, reservationHandler, reviewHandler, favoriteHandler, impulseHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	mailer := service.NewEmailSender(s.Config.SMTP)
	svc := service.NewAuthService(repo, mailer)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initOpportunityHandler(db *gorm.DB) *v1.OpportunityHandler {
	repo := repository.NewOpportunityRepository(dao.NewOpportunityDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	svc := service.NewOpportunityService(repo, userRepo)
	handler := v1.NewOpportunityHandler(svc)

	return handler
}

func (s *Server) initReservationHandler(db *gorm.DB) *v1.ReservationHandler {
	repo := repository.NewReservationRepository(dao.NewReservationDAO(db))
	oppRepo := repository.NewOpportunityRepository(dao.NewOpportunityDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	mailer := service.NewEmailSender(s.Config.SMTP)
	svc := service.NewReservationService(repo, oppRepo, userRepo, mailer)
	handler := v1.NewReservationHandler(svc)

	return handler
}

func (s *Server) initReviewHandler(db *gorm.DB) *v1.ReviewHandler {
	repo := repository.NewReviewRepository(dao.NewReviewDAO(db))
	reservationRepo := repository.NewReservationRepository(dao.NewReservationDAO(db))
	svc := service.NewReviewService(repo, reservationRepo)
	handler := v1.NewReviewHandler(svc)

	return handler
}

func (s *Server) initFavoriteHandler(db *gorm.DB) *v1.FavoriteHandler {
	repo := repository.NewFavoriteRepository(dao.NewFavoriteDAO(db))
	oppRepo := repository.NewOpportunityRepository(dao.NewOpportunityDAO(db))
	svc := service.NewFavoriteService(repo, oppRepo)
	handler := v1.NewFavoriteHandler(svc)

	return handler
}

func (s *Server) initImpulseHandler(db *gorm.DB) *v1.ImpulseHandler {
	repo := repository.NewImpulseRepository(dao.NewImpulseDAO(db))
	oppRepo := repository.NewOpportunityRepository(dao.NewOpportunityDAO(db))
	userRepo := repository.NewUserRepository(dao.NewUserDAO(db))
	payments := service.NewStripeProvider(s.Config.Stripe)
	svc := service.NewImpulseService(repo, oppRepo, userRepo, payments)
	handler := v1.NewImpulseHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
	opportunityHandler *v1.OpportunityHandler,
	reservationHandler *v1.ReservationHandler,
	reviewHandler *v1.ReviewHandler,
	favoriteHandler *v1.FavoriteHandler,
	impulseHandler *v1.ImpulseHandler,
) {
	const basePath = "/api"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	open := s.Router.Group(basePath)
	{
		open.POST("/User", authHandler.HandleSignup)
		open.POST("/User/Login", authHandler.HandleLogin)
		open.GET("/User/Activate/:token", authHandler.HandleActivate)
		open.GET("/Opportunity", opportunityHandler.HandleGetAllOpportunities)
		open.GET("/Opportunity/:id", opportunityHandler.HandleGetOpportunity)
	}

	users := s.Router.Group(basePath, verifyJWT)
	{
		users.GET("/User/:id", userHandler.HandleGetUser)
		users.PUT("/User/:id", userHandler.HandleUpdateUser)
	}

	opportunities := s.Router.Group(basePath, verifyJWT)
	{
		opportunities.POST("/Opportunity", opportunityHandler.HandleCreateOpportunity)
		opportunities.PUT("/Opportunity/:id", opportunityHandler.HandleUpdateOpportunity)
		opportunities.DELETE("/Opportunity/:id", opportunityHandler.HandleDeleteOpportunity)
		opportunities.GET("/Opportunity/:id/AllOpportunities", opportunityHandler.HandleGetOpportunitiesByUser)
	}

	reservations := s.Router.Group(basePath, verifyJWT)
	{
		reservations.POST("/Reservation", reservationHandler.HandleCreateReservation)
		reservations.GET("/Reservation/:id", reservationHandler.HandleGetReservation)
		reservations.PUT("/Reservation/:id", reservationHandler.HandleUpdateReservation)
		reservations.DELETE("/Reservation/:id", reservationHandler.HandleDeleteReservation)
		reservations.GET("/Reservation/:id/AllReservations", reservationHandler.HandleGetAllReservations)
		reservations.GET("/Reservation/:id/AllActiveReservations",
			reservationHandler.HandleGetAllActiveReservations)
	}

	reviews := s.Router.Group(basePath, verifyJWT)
	{
		reviews.POST("/Review", reviewHandler.HandleCreateReview)
		reviews.GET("/Review/:id", reviewHandler.HandleGetReview)
	}

	favorites := s.Router.Group(basePath, verifyJWT)
	{
		favorites.POST("/Favorite", favoriteHandler.HandleAddFavorite)
		favorites.GET("/Favorite/:id", favoriteHandler.HandleGetFavorites)
		favorites.DELETE("/Favorite/:id/:opportunityID", favoriteHandler.HandleRemoveFavorite)
	}

	impulses := s.Router.Group(basePath, verifyJWT)
	{
		impulses.POST("/Impulse", impulseHandler.HandlePurchaseImpulse)
		impulses.GET("/Impulse/:id", impulseHandler.HandleGetImpulses)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Oportuna API"
	docs.SwaggerInfo.Description = "A marketplace for bookable activities."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
