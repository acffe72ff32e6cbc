package models

import "go.mongodb.org/mongo-driver/bson"

type Address struct {
	Type    string `bson:"type,omitempty" json:"type,omitempty"`
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	ZipCode string `bson:"zipcode" json:"zipCode"`
	Country string `bson:"country" json:"country"`
}

type DeliveryAddress struct {
	Address       `bson:",inline"`
	DeliveryNotes string `bson:"deliverynotes,omitempty" json:"deliveryNotes,omitempty"`
	DeliveryManID string `bson:"deliverymanid" json:"deliveryManId"`
}

type Preferences struct {
	Language string `bson:"language" json:"language"`
	Currency string `bson:"currency" json:"currency"`
}

type Delivery struct {
	Status          string          `bson:"status" json:"status"`
	DeliveryDate    string          `bson:"deliverydate" json:"deliveryDate"`
	DeliveryAddress DeliveryAddress `bson:"deliveryaddress" json:"deliveryAddress"`
	LiveLocation    string          `bson:"livelocation,omitempty" json:"livelocation,omitempty"`
}

// UserData carries the identity and profile fields shared by customers
// and delivery men. Extra holds caller-defined fields the schema does
// not name; it is stored inline so the document keeps its flat shape.
type UserData struct {
	FirstName     string       `bson:"firstname" json:"firstName"`
	LastName      string       `bson:"lastname,omitempty" json:"lastName,omitempty"`
	Email         string       `bson:"email" json:"email"`
	Password      string       `bson:"password" json:"password"`
	Phone         string       `bson:"phone" json:"phone"`
	PhotoURL      string       `bson:"photourl,omitempty" json:"photoURL,omitempty"`
	Gender        string       `bson:"gender,omitempty" json:"gender,omitempty"`
	Birthdate     string       `bson:"birthdate,omitempty" json:"birthdate,omitempty"`
	Address       *Address     `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt     string       `bson:"createdat,omitempty" json:"createdAt,omitempty"`
	Wishlist      []string     `bson:"wishlist,omitempty" json:"wishlist,omitempty"`
	LoyaltyPoints int          `bson:"loyaltypoints,omitempty" json:"loyaltyPoints,omitempty"`
	Preferences   *Preferences `bson:"preferences,omitempty" json:"preferences,omitempty"`
	Delivery      *Delivery    `bson:"delivery,omitempty" json:"delivery,omitempty"`
	Extra         bson.M       `bson:",inline" json:"extra,omitempty"`
}

type ProductCart struct {
	ProductID   string `bson:"productid" json:"productId"`
	Quantity    int    `bson:"quantity" json:"quantity"`
	AddedToCart string `bson:"addedtocart" json:"addedToCart"`
}

type Payment struct {
	PaymentID     string  `bson:"paymentid" json:"paymentId"`
	Amount        float64 `bson:"amount" json:"amount"`
	PaymentDate   string  `bson:"paymentdate" json:"paymentDate"`
	PaymentMethod string  `bson:"paymentmethod" json:"paymentMethod"`
	Status        string  `bson:"status" json:"status"`
}

type Order struct {
	OrderID     string        `bson:"orderid" json:"orderId"`
	OrderDate   string        `bson:"orderdate,omitempty" json:"orderDate,omitempty"`
	CancelDate  string        `bson:"canceldate,omitempty" json:"cancelDate,omitempty"`
	ConfirmDate string        `bson:"confirmdate,omitempty" json:"confirmDate,omitempty"`
	Products    []ProductCart `bson:"products" json:"products"`
	Status      string        `bson:"status" json:"status"`
	Payment     *Payment      `bson:"payment,omitempty" json:"payment,omitempty"`
	Delivery    *Delivery     `bson:"delivery,omitempty" json:"delivery,omitempty"`
}

type Customer struct {
	UserID      string        `bson:"userid" json:"userId"`
	UserData    UserData      `bson:"userdata" json:"userData"`
	ProductCart []ProductCart `bson:"productcart,omitempty" json:"productCart,omitempty"`
	Orders      []Order       `bson:"orders,omitempty" json:"orders,omitempty"`
}
