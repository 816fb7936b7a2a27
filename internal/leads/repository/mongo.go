package repository

import (
	"context"
	"fmt"

	"github.com/dentalsite/backend/internal/isotime"
	"github.com/dentalsite/backend/internal/leads"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo persists leads across the contact_messages and
// appointment_requests collections. created_at is stored as fixed-width
// ISO-8601 text, so sorting on the stored text is chronological.
type MongoRepo struct {
	contacts     *mongo.Collection
	appointments *mongo.Collection
}

func NewMongoRepo(contacts, appointments *mongo.Collection) *MongoRepo {
	return &MongoRepo{contacts: contacts, appointments: appointments}
}

func listOpts(limit int64) *options.FindOptions {
	return options.Find().
		SetProjection(bson.M{"_id": 0}).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
}

func (m *MongoRepo) InsertContact(ctx context.Context, msg *leads.ContactMessage) error {
	doc, err := isotime.EncodeRecord(msg, "created_at")
	if err != nil {
		return err
	}
	if _, err := m.contacts.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (m *MongoRepo) ListContacts(ctx context.Context, limit int64) ([]*leads.ContactMessage, error) {
	cur, err := m.contacts.Find(ctx, bson.M{}, listOpts(limit))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer cur.Close(ctx)

	out := []*leads.ContactMessage{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		var msg leads.ContactMessage
		if err := isotime.DecodeRecord(raw, &msg, "created_at"); err != nil {
			return nil, err
		}
		out = append(out, &msg)
	}
	return out, cur.Err()
}

func (m *MongoRepo) InsertAppointment(ctx context.Context, req *leads.AppointmentRequest) error {
	doc, err := isotime.EncodeRecord(req, "created_at")
	if err != nil {
		return err
	}
	if _, err := m.appointments.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert appointment request: %w", err)
	}
	return nil
}

func (m *MongoRepo) ListAppointments(ctx context.Context, limit int64) ([]*leads.AppointmentRequest, error) {
	cur, err := m.appointments.Find(ctx, bson.M{}, listOpts(limit))
	if err != nil {
		return nil, fmt.Errorf("list appointment requests: %w", err)
	}
	defer cur.Close(ctx)

	out := []*leads.AppointmentRequest{}
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}
		var req leads.AppointmentRequest
		if err := isotime.DecodeRecord(raw, &req, "created_at"); err != nil {
			return nil, err
		}
		out = append(out, &req)
	}
	return out, cur.Err()
}
