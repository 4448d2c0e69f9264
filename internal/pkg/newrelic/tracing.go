package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartSegment creates a new segment for the given transaction.
// Returns nil if transaction is not available.
func StartSegment(txn *newrelic.Transaction, name string) *newrelic.Segment {
	if txn == nil {
		return nil
	}
	return txn.StartSegment(name)
}

// WithSegment executes fn within a segment of the transaction carried by ctx
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	segment := StartSegment(FromContext(ctx), segmentName)
	if segment != nil {
		defer segment.End()
	}
	return fn()
}

// WithSegmentAndReturn is WithSegment for functions returning a value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	segment := StartSegment(FromContext(ctx), segmentName)
	if segment != nil {
		defer segment.End()
	}
	return fn()
}

// StartDatastoreSegment opens a Postgres datastore segment for one query
func StartDatastoreSegment(ctx context.Context, collection, operation string) *newrelic.DatastoreSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}
	return &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastorePostgres,
		Collection: collection,
		Operation:  operation,
	}
}

// StartMessageProducerSegment opens a segment for publishing to a topic
func StartMessageProducerSegment(ctx context.Context, topic string) *newrelic.MessageProducerSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}
	return &newrelic.MessageProducerSegment{
		StartTime:       txn.StartSegmentNow(),
		Library:         "NSQ",
		DestinationType: newrelic.MessageTopic,
		DestinationName: topic,
	}
}

// NoticeError reports err on the transaction carried by ctx
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// StartExternalSegment instruments an outgoing HTTP request
func StartExternalSegment(ctx context.Context, req *http.Request) *newrelic.ExternalSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}
	return newrelic.StartExternalSegment(txn, req)
}
