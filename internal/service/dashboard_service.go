package service

import (
	"time"

	"go-pos-api/internal/repository"
)

type DashboardService interface {
	GetDashboardStats(days int) (*repository.DashboardStats, error)
}

type dashboardService struct {
	txRepo repository.TransactionRepository
}

func NewDashboardService(txRepo repository.TransactionRepository) DashboardService {
	return &dashboardService{txRepo: txRepo}
}

func (s *dashboardService) GetDashboardStats(days int) (*repository.DashboardStats, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.txRepo.GetDashboardStats(startDate, endDate)
}
