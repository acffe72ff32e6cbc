package models

import "go.mongodb.org/mongo-driver/bson"

type DeliveryHistoryItem struct {
	OrderID        string `bson:"orderid" json:"orderId"`
	DeliveryDate   string `bson:"deliverydate" json:"deliveryDate"`
	DeliveryStatus string `bson:"deliverystatus" json:"deliveryStatus"`
}

// DeliveryManData extends UserData with the order-lifecycle fields the
// delivery workflow mutates. The catch-all for caller-defined fields
// must be declared here, not inherited: the driver only fills an inline
// map that sits directly on the struct it decodes.
type DeliveryManData struct {
	UserData        `bson:",inline"`
	Availability    bool                  `bson:"availability" json:"availability"`
	AssignedOrders  []string              `bson:"assignedorders,omitempty" json:"assignedOrders,omitempty"`
	CompletedOrders []string              `bson:"completedorders,omitempty" json:"completedOrders,omitempty"`
	DeliveryHistory []DeliveryHistoryItem `bson:"deliveryhistory,omitempty" json:"deliveryHistory,omitempty"`
	Extra           bson.M                `bson:",inline" json:"extra,omitempty"`
}

type DeliveryMan struct {
	UserID   string          `bson:"userid" json:"userId"`
	UserType string          `bson:"usertype" json:"userType"`
	UserData DeliveryManData `bson:"userdata" json:"userData"`
}
