package main

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/kelly670/ROLLEROSE/internal/config"
	"github.com/kelly670/ROLLEROSE/internal/handlers"
	"github.com/kelly670/ROLLEROSE/internal/repositories"
	"github.com/kelly670/ROLLEROSE/internal/services"
	"github.com/kelly670/ROLLEROSE/internal/storage"
	"github.com/kelly670/ROLLEROSE/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger

	tokens      *utils.Manager
	userService *services.UserService

	itemHandler        *handlers.ItemHandler
	userHandler        *handlers.UserHandler
	testimonialHandler *handlers.TestimonialHandler
	contactHandler     *handlers.ContactHandler
	categoryHandler    *handlers.CategoryHandler

	uploadDir string
	db        *sql.DB
}

func initializeApp(cfg config.Config, db *sql.DB, errorLog, infoLog *log.Logger) (*application, error) {
	// Repositories
	itemRepo := repositories.ItemRepository{DB: db}
	userRepo := repositories.UserRepository{DB: db}
	testimonialRepo := repositories.TestimonialRepository{DB: db}
	contactRepo := repositories.ContactRepository{DB: db}

	// Collaborators
	fileStorage, err := newFileStorage(cfg)
	if err != nil {
		return nil, err
	}
	tokens, err := utils.NewManager(cfg.Auth.SigningKey)
	if err != nil {
		return nil, err
	}

	// Services
	itemService := &services.ItemService{ItemRepo: &itemRepo}
	userService := &services.UserService{UserRepo: &userRepo, Tokens: tokens}
	testimonialService := &services.TestimonialService{TestimonialRepo: &testimonialRepo}
	contactService := &services.ContactService{ContactRepo: &contactRepo}
	categoryService, err := services.NewCategoryService(cfg.CategoriesFile)
	if err != nil {
		return nil, err
	}

	// Handlers
	itemHandler := &handlers.ItemHandler{Service: itemService, Storage: fileStorage}
	userHandler := &handlers.UserHandler{Service: userService}
	testimonialHandler := &handlers.TestimonialHandler{Service: testimonialService}
	contactHandler := &handlers.ContactHandler{Service: contactService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}

	return &application{
		errorLog:           errorLog,
		infoLog:            infoLog,
		tokens:             tokens,
		userService:        userService,
		itemHandler:        itemHandler,
		userHandler:        userHandler,
		testimonialHandler: testimonialHandler,
		contactHandler:     contactHandler,
		categoryHandler:    categoryHandler,
		uploadDir:          cfg.Storage.UploadDir,
		db:                 db,
	}, nil
}

func newFileStorage(cfg config.Config) (storage.FileStorage, error) {
	switch cfg.Storage.Driver {
	case "", "local":
		return &storage.LocalStorage{
			Dir:        cfg.Storage.UploadDir,
			PublicPath: cfg.Storage.PublicPath,
		}, nil
	case "s3":
		return storage.NewS3Storage(
			cfg.Storage.S3.Region,
			cfg.Storage.S3.Endpoint,
			cfg.Storage.S3.AccessKey,
			cfg.Storage.S3.SecretKey,
			cfg.Storage.S3.Bucket,
			cfg.Storage.S3.Folder,
			cfg.Storage.S3.PublicURL,
		)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
