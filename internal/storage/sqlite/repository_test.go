package sqlite

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"payguard-risk-system/internal/config"
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (storage.DecisionRepository, func()) {
	// Создаем временный файл БД для тестов
	tmpFile := "test_" + time.Now().Format("20060102150405.000000000") + ".db"

	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath: tmpFile,
		},
	}

	db, err := NewConnection(cfg)
	require.NoError(t, err)

	repo := NewRepository(db)

	// Функция очистки
	cleanup := func() {
		db.Close()
		os.Remove(tmpFile)
		os.Remove(tmpFile + "-wal")
		os.Remove(tmpFile + "-shm")
	}

	return repo, cleanup
}

func testRequest(transactionID string) *models.RiskScoreRequest {
	return &models.RiskScoreRequest{
		TransactionID:   transactionID,
		AmountCents:     150000,
		Currency:        "USD",
		CardBIN:         "424242",
		CustomerEmail:   "user@example.com",
		CustomerIP:      "10.0.0.1",
		CustomerCountry: "US",
	}
}

func testResponse(transactionID string) *models.RiskScoreResponse {
	return &models.RiskScoreResponse{
		TransactionID: transactionID,
		RiskScore:     35,
		Decision:      models.DecisionReview,
		RiskFactors: []models.RiskFactor{
			{Factor: "high_amount", Score: 20, Description: "Amount exceeds 100000 cents", Severity: models.SeverityMedium},
		},
		ProcessingTimeMs: 2,
	}
}

func TestRepository_SaveDecision(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	req := testRequest("txn-001")
	resp := testResponse("txn-001")

	err := repo.SaveDecision(req, resp)
	require.NoError(t, err)

	// Проверяем, что решение сохранено
	saved, err := repo.GetDecisionByTransactionID("txn-001")
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "txn-001", saved.TransactionID)
	assert.Equal(t, req.AmountCents, saved.AmountCents)
	require.NotNil(t, saved.Currency)
	assert.Equal(t, req.Currency, *saved.Currency)
	require.NotNil(t, saved.CustomerEmail)
	assert.Equal(t, req.CustomerEmail, *saved.CustomerEmail)
	assert.Equal(t, resp.RiskScore, saved.RiskScore)
	assert.Equal(t, resp.Decision, saved.Decision)
	assert.Equal(t, models.ReviewStatusNone, saved.ReviewStatus)

	// Факторы сериализуются в JSON
	var factors []models.RiskFactor
	err = json.Unmarshal([]byte(saved.FactorsJSON), &factors)
	require.NoError(t, err)
	assert.Equal(t, resp.RiskFactors, factors)
}

func TestRepository_SaveDecision_NullableFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Запрос без опциональных полей
	req := &models.RiskScoreRequest{
		TransactionID: "txn-sparse",
		AmountCents:   5000,
	}
	resp := &models.RiskScoreResponse{
		TransactionID: "txn-sparse",
		RiskScore:     15,
		Decision:      models.DecisionApprove,
		RiskFactors:   []models.RiskFactor{},
	}

	err := repo.SaveDecision(req, resp)
	require.NoError(t, err)

	saved, err := repo.GetDecisionByTransactionID("txn-sparse")
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Nil(t, saved.Currency)
	assert.Nil(t, saved.CardBIN)
	assert.Nil(t, saved.CustomerEmail)
	assert.Nil(t, saved.CustomerIP)
	assert.Nil(t, saved.CustomerCountry)
}

func TestRepository_GetDecisionByTransactionID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveDecision(testRequest("txn-002"), testResponse("txn-002"))
	require.NoError(t, err)

	saved, err := repo.GetDecisionByTransactionID("txn-002")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "txn-002", saved.TransactionID)

	// Проверяем несуществующее решение
	notFound, err := repo.GetDecisionByTransactionID("NONEXISTENT")
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestRepository_GetAllDecisions(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Создаем несколько решений
	ids := []string{"txn-a", "txn-b", "txn-c", "txn-d", "txn-e"}
	for _, id := range ids {
		err := repo.SaveDecision(testRequest(id), testResponse(id))
		require.NoError(t, err)
	}

	// Получаем все решения
	decisions, err := repo.GetAllDecisions(10)
	require.NoError(t, err)
	assert.Len(t, decisions, 5)

	// Проверяем порядок (должны быть отсортированы по created_at DESC)
	assert.GreaterOrEqual(t, decisions[0].CreatedAt.Unix(), decisions[1].CreatedAt.Unix())

	// Проверяем лимит
	limited, err := repo.GetAllDecisions(3)
	require.NoError(t, err)
	assert.Len(t, limited, 3)
}

func TestRepository_UpdateReviewStatus(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveDecision(testRequest("txn-review"), testResponse("txn-review"))
	require.NoError(t, err)

	// Новое решение не в очереди
	saved, err := repo.GetDecisionByTransactionID("txn-review")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, models.ReviewStatusNone, saved.ReviewStatus)

	// Ставим в очередь на проверку
	err = repo.UpdateReviewStatus("txn-review", models.ReviewStatusQueued)
	require.NoError(t, err)

	updated, err := repo.GetDecisionByTransactionID("txn-review")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.ReviewStatusQueued, updated.ReviewStatus)
}

func TestRepository_GetReviewQueue(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Три решения, два из них в очереди
	for _, id := range []string{"txn-q1", "txn-q2", "txn-clean"} {
		err := repo.SaveDecision(testRequest(id), testResponse(id))
		require.NoError(t, err)
	}

	require.NoError(t, repo.UpdateReviewStatus("txn-q1", models.ReviewStatusQueued))
	require.NoError(t, repo.UpdateReviewStatus("txn-q2", models.ReviewStatusQueued))

	queue, err := repo.GetReviewQueue(10)
	require.NoError(t, err)
	assert.Len(t, queue, 2)
	for _, d := range queue {
		assert.Equal(t, models.ReviewStatusQueued, d.ReviewStatus)
	}
}

func TestRepository_ClearAllDecisions(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Создаем несколько решений
	for _, id := range []string{"txn-c1", "txn-c2", "txn-c3"} {
		err := repo.SaveDecision(testRequest(id), testResponse(id))
		require.NoError(t, err)
	}

	// Проверяем, что решения есть
	decisions, err := repo.GetAllDecisions(10)
	require.NoError(t, err)
	assert.Len(t, decisions, 3)

	// Очищаем все решения
	err = repo.ClearAllDecisions()
	require.NoError(t, err)

	// Проверяем, что решений нет
	decisions, err = repo.GetAllDecisions(10)
	require.NoError(t, err)
	assert.Len(t, decisions, 0)
}

func TestRepository_DuplicateTransactionID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.SaveDecision(testRequest("txn-dup"), testResponse("txn-dup"))
	require.NoError(t, err)

	// Повторная вставка с тем же transaction_id нарушает UNIQUE
	err = repo.SaveDecision(testRequest("txn-dup"), testResponse("txn-dup"))
	assert.Error(t, err)
}
