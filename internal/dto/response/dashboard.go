package response

import "flight-booking/internal/data/entity"

type BookingMetrics struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Cancelled int64 `json:"cancelled"`
}

type RevenueMetrics struct {
	Total              float64 `json:"total"`
	SuccessfulPayments int64   `json:"successfulPayments"`
	FailedPayments     int64   `json:"failedPayments"`
}

type DashboardMetrics struct {
	Bookings BookingMetrics `json:"bookings"`
	Revenue  RevenueMetrics `json:"revenue"`
}

type DashboardResponse struct {
	Metrics        DashboardMetrics  `json:"metrics"`
	RecentBookings []BookingResponse `json:"recentBookings"`
	TimeRange      string            `json:"timeRange"`
}

func MetricsToResponse(counts *entity.BookingCounts, revenue *entity.RevenueTotals) DashboardMetrics {
	var m DashboardMetrics
	if counts != nil {
		m.Bookings = BookingMetrics{
			Total:     counts.Total,
			Pending:   counts.Pending,
			Confirmed: counts.Confirmed,
			Cancelled: counts.Cancelled,
		}
	}
	if revenue != nil {
		m.Revenue = RevenueMetrics{
			Total:              revenue.Total,
			SuccessfulPayments: revenue.SuccessfulPayments,
			FailedPayments:     revenue.FailedPayments,
		}
	}
	return m
}
