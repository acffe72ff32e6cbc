package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDeliveryManKeepsExtraFields(t *testing.T) {
	doc := bson.M{
		"userid":   "uid-1",
		"usertype": "deliveryman",
		"userdata": bson.M{
			"firstname": "Ravi",
			"email":     "ravi@example.com",
			"vehicle":   "bike",
		},
	}
	data, err := bson.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var dm DeliveryMan
	if err := bson.Unmarshal(data, &dm); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if dm.UserData.FirstName != "Ravi" {
		t.Errorf("FirstName = %q", dm.UserData.FirstName)
	}
	if dm.UserData.Extra["vehicle"] != "bike" {
		t.Errorf("Extra = %v, caller-defined field lost on decode", dm.UserData.Extra)
	}

	// The field survives re-encoding too.
	out, err := bson.Marshal(dm)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var round bson.M
	if err := bson.Unmarshal(out, &round); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	userdata, ok := round["userdata"].(bson.M)
	if !ok {
		t.Fatalf("userdata = %#v", round["userdata"])
	}
	if userdata["vehicle"] != "bike" {
		t.Errorf("re-encoded userdata = %v, caller-defined field lost", userdata)
	}
}
