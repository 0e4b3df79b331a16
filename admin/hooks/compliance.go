package hooks

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/godocompany/employeadmin-api/models"
	"github.com/godocompany/employeadmin-api/services"
)

func ListPolicyDocuments(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := complianceService.ListDocuments()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func GetPolicyDocument(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		doc, err := complianceService.GetDocument(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if doc == nil {
			notFound(c, "Policy document not found")
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

type PolicyDocumentReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DocURL      *string `json:"doc_url"`
}

func CreatePolicyDocument(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PolicyDocumentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "title is required")
			return
		}
		if req.Title == nil {
			badRequest(c, "title is required")
			return
		}

		doc := models.NewPolicyDocument(*req.Title)
		if req.Description != nil {
			doc.Description = *req.Description
		}
		if req.Status != nil {
			doc.Status = *req.Status
		}
		if req.DocURL != nil {
			doc.DocURL = *req.DocURL
		}

		if err := complianceService.CreateDocument(doc); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Policy document created",
			"doc_id":  doc.ID,
		})
	}
}

func UpdatePolicyDocument(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		doc, err := complianceService.GetDocument(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if doc == nil {
			notFound(c, "Policy document not found")
			return
		}

		var req PolicyDocumentReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.Title != nil {
			doc.Title = *req.Title
		}
		if req.Description != nil {
			doc.Description = *req.Description
		}
		if req.Status != nil {
			doc.Status = *req.Status
		}
		if req.DocURL != nil {
			doc.DocURL = *req.DocURL
		}

		if err := complianceService.UpdateDocument(doc); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Policy document updated"})
	}
}

func DeletePolicyDocument(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		doc, err := complianceService.GetDocument(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if doc == nil {
			notFound(c, "Policy document not found")
			return
		}
		if err := complianceService.DeleteDocument(doc); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Policy document deleted"})
	}
}

func ListAcknowledgements(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		acks, err := complianceService.ListAcknowledgements()
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, acks)
	}
}

func GetAcknowledgement(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ack, err := complianceService.GetAcknowledgement(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if ack == nil {
			notFound(c, "Acknowledgement not found")
			return
		}
		c.JSON(http.StatusOK, ack)
	}
}

type AcknowledgementReq struct {
	PolicyID  *uint64 `json:"policy_id"`
	UserID    *uint64 `json:"user_id"`
	AckStatus *string `json:"ack_status"`
}

func CreateAcknowledgement(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AcknowledgementReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "policy_id and user_id are required")
			return
		}
		if req.PolicyID == nil || req.UserID == nil {
			badRequest(c, "policy_id and user_id are required")
			return
		}

		ack := models.NewPolicyAcknowledgement(*req.PolicyID, *req.UserID)
		if req.AckStatus != nil {
			ack.AckStatus = *req.AckStatus
		}

		if err := complianceService.CreateAcknowledgement(ack); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"message": "Acknowledgement created",
			"ack_id":  ack.ID,
		})
	}
}

func UpdateAcknowledgement(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ack, err := complianceService.GetAcknowledgement(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if ack == nil {
			notFound(c, "Acknowledgement not found")
			return
		}

		var req AcknowledgementReq
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "No input data")
			return
		}
		if req.PolicyID != nil {
			ack.PolicyID = *req.PolicyID
		}
		if req.UserID != nil {
			ack.UserID = *req.UserID
		}
		if req.AckStatus != nil {
			ack.AckStatus = *req.AckStatus
		}

		if err := complianceService.UpdateAcknowledgement(ack); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Acknowledgement updated"})
	}
}

func DeleteAcknowledgement(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		ack, err := complianceService.GetAcknowledgement(id)
		if err != nil {
			serverError(c, err)
			return
		}
		if ack == nil {
			notFound(c, "Acknowledgement not found")
			return
		}
		if err := complianceService.DeleteAcknowledgement(ack); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Acknowledgement deleted"})
	}
}

// AckHistory returns one user's acknowledgements joined with the policy
// titles, most recent first. The user_id query param is required.
func AckHistory(complianceService *services.ComplianceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64)
		if err != nil || userID == 0 {
			badRequest(c, "user_id query param is required")
			return
		}
		entries, err := complianceService.GetAckHistory(userID)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
