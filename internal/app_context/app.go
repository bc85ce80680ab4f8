package appcontext

import (
	"github.com/minio/minio-go/v7"
	"github.com/techbuddyspace/certify/internal/config"
	filestorage "github.com/techbuddyspace/certify/internal/file_storage"
	"github.com/techbuddyspace/certify/internal/mailer"
	"github.com/techbuddyspace/certify/internal/repository"
	"github.com/techbuddyspace/certify/pkg/certify"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// Storage is the blob backend holding template images and rendered certificates.
	Storage filestorage.Provider

	// Compositor renders certificate images from templates.
	Compositor *certify.Compositor

	S3 *minio.Client
}
