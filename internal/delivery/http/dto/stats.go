package dto

import "laborlink/internal/usecase"

type StatsResponse struct {
	Users        int `json:"users"`
	Workers      int `json:"workers"`
	Employers    int `json:"employers"`
	Jobs         int `json:"jobs"`
	ActiveJobs   int `json:"active_jobs"`
	UrgentJobs   int `json:"urgent_jobs"`
	Applications int `json:"applications"`
}

func NewStatsResponse(s usecase.DashboardStats) StatsResponse {
	return StatsResponse(s)
}
