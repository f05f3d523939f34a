package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Trigger emergency SOS
// @Description Store an SOS alert and notify emergency contacts
// @Tags Emergency
// @Accept json
// @Produce json
// @Param alert body SOSAlertRequest true "SOS alert"
// @Success 200 {object} SOSAlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Alert id already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency-sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	var input SOSAlertRequest
	log := h.logger.WithField("method", "triggerSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert := DTOToSOSAlertModel(input)
	if err := h.services.Emergency.TriggerSOS(c.Request.Context(), alert); err != nil {
		log.WithError(err).Error("Failed to trigger SOS in service")
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, SOSAlertResponse{
		AlertID:   alert.ID,
		Status:    "alert_sent",
		Message:   "Emergency alert sent to your contacts and authorities",
		Timestamp: alert.Timestamp,
	})
}

// @Summary Add emergency contact
// @Description Add a contact to notify on SOS. Requires API key when keys are configured.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param contact body EmergencyContactRequest true "Emergency contact"
// @Success 200 {object} ContactCreatedResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Contact id already exists"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency-contacts [post]
func (h *Handler) addEmergencyContact(c *gin.Context) {
	var input EmergencyContactRequest
	log := h.logger.WithField("method", "addEmergencyContact")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := DTOToContactModel(input)
	if err := h.services.Emergency.AddContact(c.Request.Context(), contact); err != nil {
		log.WithError(err).Error("Failed to add contact in service")
		status, msg := errorResponse(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, ContactCreatedResponse{
		Message:   "Emergency contact added successfully",
		ContactID: contact.ID,
	})
}

// @Summary List emergency contacts
// @Description Get stored emergency contacts. Requires API key when keys are configured.
// @Tags Emergency
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} EmergencyContactResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /emergency-contacts [get]
func (h *Handler) listEmergencyContacts(c *gin.Context) {
	log := h.logger.WithField("method", "listEmergencyContacts")

	contacts, err := h.services.Emergency.ListContacts(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list contacts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToContactResponses(contacts))
}
