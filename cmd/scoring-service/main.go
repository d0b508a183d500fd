package main

import "payguard-risk-system/internal/bootstrap/scoring"

// @title PayGuard Risk Scoring API
// @version 1.0
// @description Сервис оценки риска платежных транзакций
// @host localhost:8080
// @BasePath /api/v1
func main() { scoring.StartScoringService() }
