// Package platform assembles the three backend collaborators into one
// bundle that is built once at startup and handed to every service, so
// nothing reaches for a package-level client.
package platform

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/config"
	"github.com/Karthick-Office/ecom/identity"
	"github.com/Karthick-Office/ecom/store"
	"github.com/Karthick-Office/ecom/utils"
)

type Bundle struct {
	Identity identity.Identity
	Store    store.Store
	Blobs    blob.Storage
}

// Connect builds the production bundle: MongoDB for accounts, sessions
// and documents, MinIO for blobs. The concrete identity client is
// returned alongside the bundle for the maintenance job.
func Connect(ctx context.Context, cfg *config.Config) (*Bundle, *identity.Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	db := client.Database(cfg.Database)
	log.Println("Connected to MongoDB")

	s3, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	mailer := &utils.Mailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
	}

	idp := identity.NewMongo(db, []byte(cfg.APIKey), mailer)
	bundle := &Bundle{
		Identity: idp,
		Store:    store.NewMongo(db),
		Blobs:    blob.NewMinio(s3, cfg.StorageBucket, cfg.PublicHost),
	}
	return bundle, idp, nil
}
