package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"visacrony-gateway/internal/database"
	"visacrony-gateway/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.Open(sqlite.Open("file::memory:"), logger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, database.Migrate(db))
	return New(db)
}

func TestRecordSubmissionAndDeliveries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	sub := &models.Submission{Reference: "ref-1", Form: "visa_enquiry", Name: "Asha"}
	require.NoError(t, s.RecordSubmission(ctx, sub))
	require.NotZero(t, sub.ID)

	require.NoError(t, s.RecordDeliveries(ctx, sub.ID, []models.Delivery{
		{Channel: "whatsapp", Target: "https://wa.me/1", OK: true},
		{Channel: "mail", Target: "https://mail.google.com", OK: true},
	}))

	got, err := s.GetSubmission(ctx, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name)
	require.Len(t, got.Deliveries, 2)
	assert.Equal(t, "whatsapp", got.Deliveries[0].Channel)

	_, err = s.GetSubmission(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRecentSubmissions_FilterAndOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordSubmission(ctx, &models.Submission{Reference: "a", Form: "visa_enquiry"}))
	require.NoError(t, s.RecordSubmission(ctx, &models.Submission{Reference: "b", Form: "fresh_passport"}))
	require.NoError(t, s.RecordSubmission(ctx, &models.Submission{Reference: "c", Form: "visa_enquiry"}))

	all, err := s.RecentSubmissions(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].Reference)

	visa, err := s.RecentSubmissions(ctx, "visa_enquiry", 10)
	require.NoError(t, err)
	assert.Len(t, visa, 2)
}

func TestConversation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.RecordMessage(ctx, &models.Message{WaID: "w1", Sender: "9199", Content: "hi", Type: "text", Status: "received"}))
	require.NoError(t, s.RecordMessage(ctx, &models.Message{WaID: "w2", Sender: "9199", Content: "hello", Type: "text", Status: "sent"}))
	require.NoError(t, s.RecordMessage(ctx, &models.Message{WaID: "w3", Sender: "9100", Content: "x", Type: "text", Status: "received"}))

	msgs, err := s.Conversation(ctx, "9199", 0)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)
}

func TestRecentMessages(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, body := range []string{"one", "two", "three"} {
		require.NoError(t, s.RecordMessage(ctx, &models.Message{WaID: "w-" + body, Sender: "91900", Content: body, Type: "text", Status: "received"}))
	}

	msgs, err := s.RecentMessages(ctx, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "three", msgs[0].Content)
	assert.Equal(t, "two", msgs[1].Content)
}
