package models

import "go.mongodb.org/mongo-driver/bson"

type NotificationSettings struct {
	Email bool `bson:"email" json:"email"`
	SMS   bool `bson:"sms" json:"sms"`
}

type AdminSettings struct {
	Theme         string               `bson:"theme" json:"theme"`
	Notifications NotificationSettings `bson:"notifications" json:"notifications"`
}

type AdminData struct {
	FirstName   string         `bson:"firstname" json:"firstName"`
	LastName    string         `bson:"lastname" json:"lastName"`
	Email       string         `bson:"email" json:"email"`
	Password    string         `bson:"password" json:"password"`
	Role        string         `bson:"role" json:"role"`
	Permissions []string       `bson:"permissions" json:"permissions"`
	CreatedAt   string         `bson:"createdat,omitempty" json:"createdAt,omitempty"`
	LastLogin   string         `bson:"lastlogin,omitempty" json:"lastLogin,omitempty"`
	Settings    *AdminSettings `bson:"settings,omitempty" json:"settings,omitempty"`
	PhotoURL    string         `bson:"photourl,omitempty" json:"photoURL,omitempty"`
	Extra       bson.M         `bson:",inline" json:"extra,omitempty"`
}
