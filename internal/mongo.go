package internal

import (
	"context"
	"errors"
	"fmt"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"log"
	"thepay/config"
	"thepay/entity"
	"thepay/services"
)

const (
	collectionLog      = "payment_log"
	collectionPayments = "payment_requests"
)

type MongoDB struct {
	ctx              context.Context
	clientOptions    *options.ClientOptions
	database         string
	logRecordsNumber int64
}

func NewMongoClient(conf *config.Config) (*MongoDB, error) {
	if !conf.Mongo.Enabled {
		return nil, nil
	}
	connectionUri := fmt.Sprintf("mongodb://%s:%s", conf.Mongo.Host, conf.Mongo.Port)
	clientOptions := options.Client().ApplyURI(connectionUri)
	if conf.Mongo.User != "" {
		clientOptions.SetAuth(options.Credential{
			Username:   conf.Mongo.User,
			Password:   conf.Mongo.Password,
			AuthSource: conf.Mongo.Database,
		})
	}
	client := &MongoDB{
		ctx:              context.Background(),
		clientOptions:    clientOptions,
		database:         conf.Mongo.Database,
		logRecordsNumber: conf.LogRecords,
	}
	return client, nil
}

func (m *MongoDB) connect(ctx context.Context) (*mongo.Client, error) {
	connection, err := mongo.Connect(ctx, m.clientOptions)
	if err != nil {
		return nil, err
	}
	return connection, nil
}

func (m *MongoDB) disconnect(ctx context.Context, connection *mongo.Client) {
	err := connection.Disconnect(ctx)
	if err != nil {
		log.Println("mongodb disconnect error", err)
	}
}

// WriteLogMessage stores a log entry; when log_records is set, only that many newest entries are kept.
func (m *MongoDB) WriteLogMessage(data services.Data) error {
	connection, err := m.connect(m.ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(m.ctx, connection)

	collection := connection.Database(m.database).Collection(collectionLog)
	if _, err = collection.InsertOne(m.ctx, data); err != nil {
		return err
	}
	if m.logRecordsNumber > 0 {
		return m.trimLog(collection)
	}
	return nil
}

func (m *MongoDB) trimLog(collection *mongo.Collection) error {
	opt := options.FindOne().SetSort(bson.D{{Key: "time", Value: -1}}).SetSkip(m.logRecordsNumber)
	var oldest entity.LogMessage
	err := collection.FindOne(m.ctx, bson.D{}, opt).Decode(&oldest)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	if err != nil {
		return err
	}
	filter := bson.D{{Key: "time", Value: bson.D{{Key: "$lte", Value: oldest.Time}}}}
	_, err = collection.DeleteMany(m.ctx, filter)
	return err
}

func (m *MongoDB) SavePaymentRecord(ctx context.Context, record *entity.PaymentRecord) error {
	connection, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(collectionPayments)
	_, err = collection.InsertOne(ctx, record)
	return err
}

func (m *MongoDB) GetPaymentRecord(ctx context.Context, signature string) (*entity.PaymentRecord, error) {
	connection, err := m.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer m.disconnect(ctx, connection)

	collection := connection.Database(m.database).Collection(collectionPayments)
	filter := bson.D{{Key: "signature", Value: signature}}
	opt := options.FindOne().SetSort(bson.D{{Key: "time_created", Value: -1}})
	var record entity.PaymentRecord
	err = collection.FindOne(ctx, filter, opt).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}
