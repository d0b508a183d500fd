package services

import (
	"payguard-risk-system/internal/models"
	"payguard-risk-system/internal/risk"
	"payguard-risk-system/internal/velocity"
)

// RiskScorerImpl реализует интерфейс RiskScorer
type RiskScorerImpl struct {
	engine *risk.Engine
}

// NewRiskScorer создает новый скорер на основе движка правил
func NewRiskScorer(tracker velocity.TrackerInterface, rules risk.RuleSet) RiskScorer {
	engine := risk.NewEngine(tracker, rules)
	return &RiskScorerImpl{engine: engine}
}

// CalculateRiskScore вычисляет балл риска транзакции в контексте мерчанта
func (r *RiskScorerImpl) CalculateRiskScore(req *models.RiskScoreRequest, rctx *models.RiskContext) *models.RiskScoreResponse {
	return r.engine.CalculateRiskScore(req, rctx)
}
