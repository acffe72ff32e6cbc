package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Karthick-Office/ecom/blob"
	"github.com/Karthick-Office/ecom/identity"
	"github.com/Karthick-Office/ecom/models"
	"github.com/Karthick-Office/ecom/store"
)

type DeliveryManService struct {
	auth  identity.Identity
	store store.Store
	blobs blob.Storage
}

func NewDeliveryManService(auth identity.Identity, st store.Store, blobs blob.Storage) *DeliveryManService {
	return &DeliveryManService{auth: auth, store: st, blobs: blobs}
}

func deliveryManPath(userID string) string {
	return "users/deliveryman/" + userID
}

func (s *DeliveryManService) Register(ctx context.Context, deliveryMan models.DeliveryMan, photo Photo) (string, error) {
	userID, err := s.auth.CreateAccount(ctx, deliveryMan.UserData.Email, deliveryMan.UserData.Password, "deliveryman")
	if err != nil {
		log.Printf("Error registering delivery man: %v", err)
		return "", err
	}

	photoURL, err := uploadPhoto(ctx, s.blobs, "deliveryman_photos/"+userID, photo)
	if err != nil {
		log.Printf("Error registering delivery man: %v", err)
		return "", err
	}

	deliveryMan.UserID = userID
	deliveryMan.UserData.PhotoURL = photoURL
	if err := s.store.Set(ctx, deliveryManPath(userID), deliveryMan); err != nil {
		log.Printf("Error registering delivery man: %v", err)
		return "", err
	}
	return userID, nil
}

func (s *DeliveryManService) Update(ctx context.Context, userID string, fields bson.M) error {
	return s.store.Merge(ctx, deliveryManPath(userID), fields)
}

// UpdateCustomFields merge-writes caller-defined fields; same merge
// semantics as Update, kept as its own operation.
func (s *DeliveryManService) UpdateCustomFields(ctx context.Context, userID string, fields bson.M) error {
	return s.store.Merge(ctx, deliveryManPath(userID), fields)
}

// Delete revokes the target delivery man's sessions and removes the
// stored record. It never signs out any other caller.
func (s *DeliveryManService) Delete(ctx context.Context, userID string) error {
	if err := s.auth.SignOut(ctx, userID); err != nil {
		return err
	}
	return s.store.Delete(ctx, deliveryManPath(userID))
}

// AssignOrder appends the order id to the assigned list atomically, so
// concurrent assignments for the same delivery man are never lost.
func (s *DeliveryManService) AssignOrder(ctx context.Context, userID, orderID string) error {
	return s.store.Mutate(ctx, deliveryManPath(userID), store.Mutation{
		Push: bson.M{"userdata.assignedorders": orderID},
	})
}

// CompleteOrder removes the order id from the assigned list, appends it
// to the completed list and records a history entry, all in one atomic
// update.
func (s *DeliveryManService) CompleteOrder(ctx context.Context, userID, orderID, deliveryStatus string) error {
	item := models.DeliveryHistoryItem{
		OrderID:        orderID,
		DeliveryDate:   time.Now().UTC().Format(time.RFC3339),
		DeliveryStatus: deliveryStatus,
	}
	return s.store.Mutate(ctx, deliveryManPath(userID), store.Mutation{
		Pull: bson.M{"userdata.assignedorders": orderID},
		Push: bson.M{
			"userdata.completedorders": orderID,
			"userdata.deliveryhistory": item,
		},
	})
}

func (s *DeliveryManService) GetAssignedOrders(ctx context.Context, userID string) ([]string, error) {
	deliveryMan, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if deliveryMan.UserData.AssignedOrders == nil {
		return []string{}, nil
	}
	return deliveryMan.UserData.AssignedOrders, nil
}

func (s *DeliveryManService) GetCompletedOrders(ctx context.Context, userID string) ([]string, error) {
	deliveryMan, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if deliveryMan.UserData.CompletedOrders == nil {
		return []string{}, nil
	}
	return deliveryMan.UserData.CompletedOrders, nil
}

func (s *DeliveryManService) GetDeliveryHistory(ctx context.Context, userID string) ([]models.DeliveryHistoryItem, error) {
	deliveryMan, err := s.get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if deliveryMan.UserData.DeliveryHistory == nil {
		return []models.DeliveryHistoryItem{}, nil
	}
	return deliveryMan.UserData.DeliveryHistory, nil
}

func (s *DeliveryManService) get(ctx context.Context, userID string) (*models.DeliveryMan, error) {
	var deliveryMan models.DeliveryMan
	found, err := s.store.Get(ctx, deliveryManPath(userID), &deliveryMan)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRecordNotFound
	}
	return &deliveryMan, nil
}
