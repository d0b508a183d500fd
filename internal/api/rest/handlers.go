package rest

import (
	"net/http"
	"strconv"

	"payguard-risk-system/internal/generator"
	"payguard-risk-system/internal/logger"
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/services"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	scoringService services.ScoringService
	generator      *generator.RequestGenerator
}

// Создает новые обработчики REST API
func NewHandlers(scoringService services.ScoringService) *Handlers {
	return &Handlers{
		scoringService: scoringService,
		generator:      generator.NewRequestGenerator(),
	}
}

// ScoreTransaction обрабатывает POST запрос на оценку риска транзакции
// @Summary Оценить риск транзакции
// @Description Принимает транзакцию и синхронно вычисляет балл риска с решением (approve/review/decline). Решение сохраняется в БД, кэшируется в Redis и публикуется в Kafka для асинхронной обработки monitor-сервисом.
// @Tags scoring
// @Accept json
// @Produce json
// @Param transaction body models.ScoreRequest true "Данные транзакции и контекст мерчанта"
// @Success 200 {object} models.RiskScoreResponse "Результат оценки риска"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /score [post]
func (h *Handlers) ScoreTransaction(c *gin.Context) {
	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.scoringService.ScoreTransaction(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score transaction"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAllDecisions возвращает список последних решений
// @Summary Получить список решений
// @Description Возвращает последние решения по оцененным транзакциям
// @Tags decisions
// @Accept json
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Success 200 {object} map[string]interface{} "Список решений"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /decisions [get]
func (h *Handlers) GetAllDecisions(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	decisions, err := h.scoringService.GetAllDecisions(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get decisions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"decisions": decisions})
}

// GetDecision возвращает решение по transaction_id
// @Summary Получить решение по транзакции
// @Description Возвращает сохраненное решение с факторами риска и статусом проверки
// @Tags decisions
// @Accept json
// @Produce json
// @Param transaction_id path string true "ID транзакции"
// @Success 200 {object} models.DecisionResponse "Решение по транзакции"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /decisions/{transaction_id} [get]
func (h *Handlers) GetDecision(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	decision, err := h.scoringService.GetDecision(transactionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get decision"})
		return
	}

	if decision == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Decision not found"})
		return
	}

	c.JSON(http.StatusOK, decision)
}

// ClearAllDecisions очищает все решения
// @Summary Очистить все решения
// @Description Удаляет все решения из базы данных и сбрасывает кэш
// @Tags decisions
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Решения очищены"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /decisions [delete]
func (h *Handlers) ClearAllDecisions(c *gin.Context) {
	if err := h.scoringService.ClearAllDecisions(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear decisions"})
		return
	}

	logger.LogEvent(logger.EventDBUpdated, "scoring-service", "sqlite", map[string]interface{}{
		"action": "database_cleared",
	})

	c.JSON(http.StatusOK, gin.H{
		"message":       "All decisions cleared successfully",
		"clear_storage": true,
	})
}

// GenerateRequest генерирует случайный запрос на скоринг
// @Summary Сгенерировать запрос на скоринг
// @Description Генерирует случайный запрос для тестирования. Параметр risk_level управляет профилем риска
// @Tags scoring
// @Accept json
// @Produce json
// @Param risk_level query string false "Уровень риска (low, medium, high)"
// @Success 200 {object} models.RiskScoreRequest "Сгенерированный запрос"
// @Router /score/generate [get]
func (h *Handlers) GenerateRequest(c *gin.Context) {
	var req *models.RiskScoreRequest
	if riskLevel := c.Query("risk_level"); riskLevel != "" {
		req = h.generator.GenerateRequest(riskLevel)
	} else {
		req = h.generator.GenerateRandomRequest()
	}

	c.JSON(http.StatusOK, req)
}
