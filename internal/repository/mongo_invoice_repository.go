package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/invoicegen/invoice-generator-service/internal/database"
	"github.com/invoicegen/invoice-generator-service/internal/domain"
)

// invoiceCollection is the name of the collection holding invoice documents
const invoiceCollection = "invoices"

// MongoInvoiceRepository implements InvoiceRepository using MongoDB
type MongoInvoiceRepository struct {
	collection *mongo.Collection
}

// NewMongoInvoiceRepository creates a new MongoDB invoice repository
func NewMongoInvoiceRepository(db *database.MongoDB) *MongoInvoiceRepository {
	return &MongoInvoiceRepository{
		collection: db.Collection(invoiceCollection),
	}
}

// CreateInvoice inserts a new invoice document and returns the assigned
// ObjectID in its hex string form
func (r *MongoInvoiceRepository) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (string, error) {
	result, err := r.collection.InsertOne(ctx, invoice)
	if err != nil {
		return "", fmt.Errorf("failed to insert invoice: %w", err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}

	invoice.ID = objectID
	return objectID.Hex(), nil
}

// GetInvoiceByID retrieves a single invoice by its hex identifier. A
// malformed identifier is reported as not found rather than as an error.
func (r *MongoInvoiceRepository) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	objectID, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return nil, ErrInvoiceNotFound
	}

	var invoice domain.Invoice
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&invoice); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to find invoice: %w", err)
	}

	return &invoice, nil
}

// ListInvoices retrieves all invoices ordered by creation time, newest first
func (r *MongoInvoiceRepository) ListInvoices(ctx context.Context) ([]*domain.Invoice, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeInvoices(ctx, cursor)
}

// FindByClientName retrieves invoices whose client name matches the pattern
// as a case-insensitive substring, newest first
func (r *MongoInvoiceRepository) FindByClientName(ctx context.Context, pattern string) ([]*domain.Invoice, error) {
	filter := bson.M{
		"client_name": bson.M{"$regex": pattern, "$options": "i"},
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoices by client: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeInvoices(ctx, cursor)
}

// LatestInvoiceNumber returns the lexicographically greatest invoice number
// in the collection, or an empty string when no invoice exists
func (r *MongoInvoiceRepository) LatestInvoiceNumber(ctx context.Context) (string, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "invoice_number", Value: -1}})

	var doc struct {
		InvoiceNumber string `bson:"invoice_number"`
	}
	if err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", fmt.Errorf("failed to query latest invoice number: %w", err)
	}

	return doc.InvoiceNumber, nil
}

// decodeInvoices drains a cursor into a slice of invoices
func decodeInvoices(ctx context.Context, cursor *mongo.Cursor) ([]*domain.Invoice, error) {
	invoices := make([]*domain.Invoice, 0)
	for cursor.Next(ctx) {
		var invoice domain.Invoice
		if err := cursor.Decode(&invoice); err != nil {
			return nil, fmt.Errorf("failed to decode invoice: %w", err)
		}
		invoices = append(invoices, &invoice)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return invoices, nil
}
