package services

import (
	"errors"
	"time"

	"github.com/godocompany/employeadmin-api/models"
	"gorm.io/gorm"
)

// ComplianceService manages policy documents and acknowledgements
type ComplianceService struct {
	DB *gorm.DB
}

// ListDocuments gets all of the policy documents, newest first
func (s *ComplianceService) ListDocuments() ([]*models.PolicyDocument, error) {
	var docs []*models.PolicyDocument
	if err := s.DB.Order("created_at DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// GetDocument gets the policy document with the provided id, or nil
func (s *ComplianceService) GetDocument(id uint64) (*models.PolicyDocument, error) {
	var doc models.PolicyDocument
	err := s.DB.First(&doc, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

// CreateDocument persists a new policy document
func (s *ComplianceService) CreateDocument(doc *models.PolicyDocument) error {
	return s.DB.Create(doc).Error
}

// UpdateDocument saves changes to a policy document
func (s *ComplianceService) UpdateDocument(doc *models.PolicyDocument) error {
	return s.DB.Save(doc).Error
}

// DeleteDocument deletes a policy document
func (s *ComplianceService) DeleteDocument(doc *models.PolicyDocument) error {
	return s.DB.Delete(doc).Error
}

// ListAcknowledgements gets all of the acknowledgement rows
func (s *ComplianceService) ListAcknowledgements() ([]*models.PolicyAcknowledgement, error) {
	var acks []*models.PolicyAcknowledgement
	if err := s.DB.Find(&acks).Error; err != nil {
		return nil, err
	}
	return acks, nil
}

// GetAcknowledgement gets the acknowledgement with the provided id, or nil
func (s *ComplianceService) GetAcknowledgement(id uint64) (*models.PolicyAcknowledgement, error) {
	var ack models.PolicyAcknowledgement
	err := s.DB.First(&ack, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ack, nil
}

// CreateAcknowledgement persists a new acknowledgement
func (s *ComplianceService) CreateAcknowledgement(ack *models.PolicyAcknowledgement) error {
	return s.DB.Create(ack).Error
}

// UpdateAcknowledgement saves changes to an acknowledgement
func (s *ComplianceService) UpdateAcknowledgement(ack *models.PolicyAcknowledgement) error {
	return s.DB.Save(ack).Error
}

// DeleteAcknowledgement deletes an acknowledgement
func (s *ComplianceService) DeleteAcknowledgement(ack *models.PolicyAcknowledgement) error {
	return s.DB.Delete(ack).Error
}

// AckHistoryEntry is one acknowledgement joined with its policy's title
type AckHistoryEntry struct {
	PolicyID  uint64    `json:"policy_id"`
	Title     string    `json:"title"`
	AckStatus string    `json:"ack_status"`
	AckDate   time.Time `json:"ack_date"`
}

// GetAckHistory gets the acknowledgement history for one user, joined with
// the acknowledged policies, most recent first
func (s *ComplianceService) GetAckHistory(userID uint64) ([]*AckHistoryEntry, error) {
	var entries []*AckHistoryEntry
	err := s.DB.
		Model(&models.PolicyAcknowledgement{}).
		Select("policy_documents.id AS policy_id, policy_documents.title AS title, policy_acknowledgements.ack_status AS ack_status, policy_acknowledgements.ack_date AS ack_date").
		Joins("JOIN policy_documents ON policy_acknowledgements.policy_id = policy_documents.id").
		Where("policy_acknowledgements.user_id = ?", userID).
		Order("policy_acknowledgements.ack_date DESC").
		Scan(&entries).
		Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
