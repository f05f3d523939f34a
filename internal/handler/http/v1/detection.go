package v1

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Analyze voice for distress
// @Description Upload an audio sample and get a (demo) emotion analysis with an SOS decision
// @Tags Detection
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio sample"
// @Success 200 {object} VoiceAnalysisResponse
// @Failure 400 {object} map[string]string "Audio file missing"
// @Failure 500 {object} map[string]string "Voice analysis failed"
// @Router /voice-analysis [post]
func (h *Handler) analyzeVoice(c *gin.Context) {
	log := h.logger.WithField("method", "analyzeVoice")

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		log.WithError(err).Warn("Audio file missing from request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}

	audio, err := readUpload(fileHeader)
	if err != nil {
		log.WithError(err).Error("Failed to read audio file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Voice analysis failed: %v", err)})
		return
	}

	res, err := h.services.Detection.AnalyzeVoice(c.Request.Context(), audio)
	if err != nil {
		log.WithError(err).Error("Failed to analyze voice in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Voice analysis failed: %v", err)})
		return
	}

	c.JSON(http.StatusOK, VoiceDetectionToResponse(res))
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// @Summary Detect SOS gesture
// @Description Classify a gesture reported by the client
// @Tags Detection
// @Accept json
// @Produce json
// @Param gesture body GestureRequest true "Gesture data"
// @Success 200 {object} GestureResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /gesture-detection [post]
func (h *Handler) detectGesture(c *gin.Context) {
	var input GestureRequest
	log := h.logger.WithField("method", "detectGesture")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res := h.services.Detection.DetectGesture(c.Request.Context(), GestureTypeFromDTO(input.Type))
	c.JSON(http.StatusOK, GestureToResponse(res))
}

// @Summary Detect emergency shake
// @Description Check an accelerometer shake pattern for the emergency signal
// @Tags Detection
// @Accept json
// @Produce json
// @Param shake body ShakeRequest true "Shake pattern"
// @Success 200 {object} ShakeResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /shake-detection [post]
func (h *Handler) detectShake(c *gin.Context) {
	var input ShakeRequest
	log := h.logger.WithField("method", "detectShake")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res := h.services.Detection.DetectShake(c.Request.Context(), ShakePatternFromDTO(input.Pattern), input.Intensity)
	c.JSON(http.StatusOK, ShakeToResponse(res))
}
