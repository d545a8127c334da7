package logger

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	mu   sync.Mutex
	docs []LogDocument
}

func (f *fakeCollection) InsertMany(_ context.Context, docs []interface{}, _ ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range docs {
		f.docs = append(f.docs, d.(LogDocument))
	}
	return &mongo.InsertManyResult{}, nil
}

func (f *fakeCollection) all() []LogDocument {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]LogDocument(nil), f.docs...)
}

func TestMongoHandlerFlushesOnClose(t *testing.T) {
	col := &fakeCollection{}
	h := newMongoHandler(col)

	log := slog.New(h).With("request_id", "rid-1")
	log.Info("order created", "order_id", 7)
	log.WithGroup("store").Warn("slow query", "ms", 120)
	h.Close()
	h.Close()

	docs := col.all()
	require.Len(t, docs, 2)

	assert.Equal(t, "order created", docs[0].Msg)
	assert.Equal(t, "INFO", docs[0].Level)
	assert.Equal(t, "rid-1", docs[0].RequestID)
	assert.EqualValues(t, 7, docs[0].Attrs["order_id"])

	assert.Equal(t, "WARN", docs[1].Level)
	assert.Contains(t, docs[1].Attrs, "store.ms")
}

func TestMongoHandlerBatchesWithoutClose(t *testing.T) {
	col := &fakeCollection{}
	h := newMongoHandler(col)
	defer h.Close()

	log := slog.New(h)
	for i := 0; i < mongoBatchSize; i++ {
		log.Info("tick", "i", i)
	}

	assert.Eventually(t, func() bool { return len(col.all()) == mongoBatchSize }, mongoDrainTick*2, mongoDrainTick/20)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	log := slog.New(NewMultiHandler(
		slog.NewTextHandler(&a, nil),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	))

	log.Info("seeded", "rows", 10)
	log.Error("seed failed", "email", "bob@example.com")

	assert.Contains(t, a.String(), "seeded")
	assert.Contains(t, a.String(), "seed failed")
	assert.NotContains(t, b.String(), "seeded")
	assert.Contains(t, b.String(), `"email":"bob@example.com"`)
}

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))

	scoped := L.With("request_id", "abc")
	ctx := InjectLogger(context.Background(), scoped)
	assert.Same(t, scoped, WithCtx(ctx))
}
