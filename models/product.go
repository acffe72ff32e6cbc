package models

import "go.mongodb.org/mongo-driver/bson"

type Product struct {
	ProductID      string   `bson:"productid,omitempty" json:"productId,omitempty"`
	Name           string   `bson:"name" json:"name" binding:"required"`
	Category       string   `bson:"category" json:"category" binding:"required"`
	FoodType       string   `bson:"foodtype,omitempty" json:"foodtype,omitempty"`
	Brand          string   `bson:"brand" json:"brand"`
	Description    string   `bson:"description" json:"description"`
	MRP            float64  `bson:"mrp" json:"mrp"`
	Price          float64  `bson:"price" json:"price" binding:"required"`
	Offers         string   `bson:"offers,omitempty" json:"offers,omitempty"`
	Discount       float64  `bson:"discount,omitempty" json:"discount,omitempty"`
	Images         []string `bson:"images,omitempty" json:"images,omitempty"`
	Video          string   `bson:"video,omitempty" json:"video,omitempty"`
	Quantity       int      `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Stock          int      `bson:"stock,omitempty" json:"stock,omitempty"`
	Specifications bson.M   `bson:"specifications,omitempty" json:"specifications,omitempty"`
	Reviews        bson.M   `bson:"reviews,omitempty" json:"reviews,omitempty"`
	Ratings        bson.M   `bson:"ratings,omitempty" json:"ratings,omitempty"`
	CustomFields   bson.M   `bson:"customfields,omitempty" json:"customFields,omitempty"`
}
