// Package store is the submission and message ledger on top of gorm.
package store

import (
	"context"
	"fmt"

	"visacrony-gateway/internal/models"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// RecordSubmission inserts the submission together with any deliveries already attached.
func (s *Store) RecordSubmission(ctx context.Context, sub *models.Submission) error {
	if err := s.db.WithContext(ctx).Create(sub).Error; err != nil {
		return fmt.Errorf("record submission: %w", err)
	}
	return nil
}

func (s *Store) RecordDeliveries(ctx context.Context, submissionID uint, deliveries []models.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}
	for i := range deliveries {
		deliveries[i].SubmissionID = submissionID
	}
	if err := s.db.WithContext(ctx).Create(&deliveries).Error; err != nil {
		return fmt.Errorf("record deliveries: %w", err)
	}
	return nil
}

// RecentSubmissions returns the newest submissions first, optionally filtered by form.
func (s *Store) RecentSubmissions(ctx context.Context, form string, limit int) ([]models.Submission, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := s.db.WithContext(ctx).Preload("Deliveries").Order("created_at desc, id desc").Limit(limit)
	if form != "" {
		q = q.Where("form = ?", form)
	}
	var subs []models.Submission
	if err := q.Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return subs, nil
}

func (s *Store) GetSubmission(ctx context.Context, reference string) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.WithContext(ctx).Preload("Deliveries").Where("reference = ?", reference).First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// RecordMessage stores one WhatsApp message.
func (s *Store) RecordMessage(ctx context.Context, msg *models.Message) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("record message: %w", err)
	}
	return nil
}

func (s *Store) Conversation(ctx context.Context, sender string, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.Message
	err := s.db.WithContext(ctx).Where("sender = ?", sender).Order("created_at asc, id asc").Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// RecentMessages returns the newest WhatsApp messages across all senders.
func (s *Store) RecentMessages(ctx context.Context, limit int) ([]models.Message, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var msgs []models.Message
	err := s.db.WithContext(ctx).Order("created_at desc, id desc").Limit(limit).Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}
