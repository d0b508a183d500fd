package main

import "payguard-risk-system/internal/bootstrap/monitor"

func main() { monitor.StartRiskMonitorService() }
