package services

import (
	"testing"

	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/risk"
	"payguard-risk-system/internal/velocity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRiskScorer(t *testing.T) {
	tracker := velocity.NewTracker(velocity.NewMemoryStore())
	scorer := NewRiskScorer(tracker, risk.DefaultRuleSet())
	require.NotNil(t, scorer)
}

func TestRiskScorer_CalculateRiskScore(t *testing.T) {
	tracker := velocity.NewTracker(velocity.NewMemoryStore())
	scorer := NewRiskScorer(tracker, risk.DefaultRuleSet())

	req := &models.RiskScoreRequest{
		TransactionID: "txn-scorer",
		AmountCents:   150000,
		CustomerIP:    "10.0.0.1",
	}
	rctx := models.NewRiskContext(50)

	resp := scorer.CalculateRiskScore(req, rctx)
	require.NotNil(t, resp)

	assert.Equal(t, "txn-scorer", resp.TransactionID)
	assert.GreaterOrEqual(t, resp.RiskScore, 0)
	assert.LessOrEqual(t, resp.RiskScore, 100)
	assert.NotEmpty(t, resp.Decision)
}
