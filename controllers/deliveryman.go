package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/services"
)

type DeliveryManController struct {
	deliveryMen *services.DeliveryManService
}

func NewDeliveryManController(deliveryMen *services.DeliveryManService) *DeliveryManController {
	return &DeliveryManController{deliveryMen: deliveryMen}
}

// Register expects multipart form data: a "deliveryman" JSON field and
// a "photo" file.
func (ctl *DeliveryManController) Register(c *gin.Context) {
	var deliveryMan models.DeliveryMan
	if err := json.Unmarshal([]byte(c.PostForm("deliveryman")), &deliveryMan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery man payload"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Profile photo is required"})
		return
	}
	photo, err := readPhoto(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	userID, err := ctl.deliveryMen.Register(ctx, deliveryMan, photo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"userId": userID})
}

func (ctl *DeliveryManController) Update(c *gin.Context) {
	ctl.merge(c, ctl.deliveryMen.Update, "Delivery man updated successfully")
}

func (ctl *DeliveryManController) UpdateCustomFields(c *gin.Context) {
	ctl.merge(c, ctl.deliveryMen.UpdateCustomFields, "Custom fields updated successfully")
}

func (ctl *DeliveryManController) merge(c *gin.Context, update func(context.Context, string, bson.M) error, message string) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := update(ctx, c.Param("id"), fields); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (ctl *DeliveryManController) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctl.deliveryMen.Delete(ctx, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery man deleted successfully"})
}

func (ctl *DeliveryManController) AssignOrder(c *gin.Context) {
	var input struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctl.deliveryMen.AssignOrder(ctx, c.Param("id"), input.OrderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order assigned successfully"})
}

func (ctl *DeliveryManController) CompleteOrder(c *gin.Context) {
	var input struct {
		DeliveryStatus string `json:"deliveryStatus" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := ctl.deliveryMen.CompleteOrder(ctx, c.Param("id"), c.Param("orderId"), input.DeliveryStatus); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order completed successfully"})
}

func (ctl *DeliveryManController) GetAssignedOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	orders, err := ctl.deliveryMen.GetAssignedOrders(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *DeliveryManController) GetCompletedOrders(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	orders, err := ctl.deliveryMen.GetCompletedOrders(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctl *DeliveryManController) GetDeliveryHistory(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	history, err := ctl.deliveryMen.GetDeliveryHistory(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
