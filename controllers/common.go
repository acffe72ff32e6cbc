package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Karthick-Office/ecom/identity"
	"github.com/Karthick-Office/ecom/services"
	"github.com/Karthick-Office/ecom/store"
)

const requestTimeout = 10 * time.Second

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, identity.ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, identity.ErrInvalidCredentials),
		errors.Is(err, identity.ErrAccountNotFound),
		errors.Is(err, identity.ErrInvalidCode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrRecordNotFound), errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func readPhoto(file *multipart.FileHeader) (services.Photo, error) {
	f, err := file.Open()
	if err != nil {
		return services.Photo{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return services.Photo{}, err
	}
	return services.Photo{
		Name:        file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
