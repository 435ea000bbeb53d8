package main

import (
	"fmt"
	"net/http"
	"time"

	"aspcranes/agent"
	"aspcranes/config"
	"aspcranes/db"
	"aspcranes/db/mongo"
	"aspcranes/db/postgres"
	"aspcranes/handlers"
	"aspcranes/repository"
	"aspcranes/routes"

	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load config from .env or config file
	cfg := config.LoadConfig()

	var (
		userRepo      repository.UserRepository
		customerRepo  repository.CustomerRepository
		leadRepo      repository.LeadRepository
		dealRepo      repository.DealRepository
		equipmentRepo repository.EquipmentRepository
		quotationRepo repository.QuotationRepository
		jobRepo       repository.JobRepository
		chatRepo      repository.ChatRepository
		profileRepo   repository.ProfileRepository
	)

	switch cfg.DBType {
	case "postgres":
		// Migrations only matter for the SQL backend
		db.RunMigrations(cfg.PostgresURL)

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		customerRepo = repository.NewPostgresCustomerRepo(pg.Conn)
		leadRepo = repository.NewPostgresLeadRepo(pg.Conn)
		dealRepo = repository.NewPostgresDealRepo(pg.Conn)
		equipmentRepo = repository.NewPostgresEquipmentRepo(pg.Conn)
		quotationRepo = repository.NewPostgresQuotationRepo(pg.Conn)
		jobRepo = repository.NewPostgresJobRepo(pg.Conn)
		chatRepo = repository.NewPostgresChatRepo(pg.Conn)
		profileRepo = repository.NewPostgresProfileRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		userRepo = repository.NewMongoUserRepo(mg.Client)
		customerRepo = repository.NewMongoCustomerRepo(mg.Client)
		leadRepo = repository.NewMongoLeadRepo(mg.Client)
		dealRepo = repository.NewMongoDealRepo(mg.Client)
		equipmentRepo = repository.NewMongoEquipmentRepo(mg.Client)
		quotationRepo = repository.NewMongoQuotationRepo(mg.Client)
		jobRepo = repository.NewMongoJobRepo(mg.Client)
		chatRepo = repository.NewMongoChatRepo(mg.Client)
		profileRepo = repository.NewMongoProfileRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Assistant client and the session map it shares across restarts
	agentClient := agent.NewClient(cfg.AgentURL, time.Duration(cfg.AgentTimeout)*time.Second)
	sessions, err := agent.NewSessionStore(&agent.FileStore{Path: cfg.SessionFile})
	if err != nil {
		panic(err)
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	customerHandler := &handlers.CustomerHandler{Repo: customerRepo}
	leadHandler := &handlers.LeadHandler{Repo: leadRepo}
	dealHandler := &handlers.DealHandler{Repo: dealRepo}
	equipmentHandler := &handlers.EquipmentHandler{Repo: equipmentRepo}
	quotationHandler := &handlers.QuotationHandler{Repo: quotationRepo, DealRepo: dealRepo, Logger: logger}
	jobHandler := &handlers.JobHandler{Repo: jobRepo}
	chatHandler := &handlers.ChatHandler{Agent: agentClient, Sessions: sessions, Repo: chatRepo, Logger: logger}
	profileHandler := &handlers.ProfileHandler{Repo: profileRepo}

	// PDF handler with combined repository
	pdfRepo := repository.NewPDFRepository(quotationRepo, profileRepo)
	pdfHandler := &handlers.PDFHandler{Repo: pdfRepo, SavePath: cfg.PDFSavePath, Logger: logger}

	// Setup routes including PDF
	routes.SetupRoutes(logger, userHandler, customerHandler, leadHandler, dealHandler,
		equipmentHandler, quotationHandler, jobHandler, chatHandler, profileHandler, pdfHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
