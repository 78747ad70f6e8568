package wire

import (
	"flight-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// ==================== PROTECTED ROUTES (session required) ====================
	// GET /api/bookings - Caller's own bookings, same filters as admin list
	r.Get("/api/bookings", bookingHandler.ListUserBookings)

	// GET /api/bookings/{reference} - One of the caller's bookings
	r.Get("/api/bookings/{reference}", bookingHandler.GetUserBooking)
}

func wireAdmin(r chi.Router, bookingHandler *adaptor.BookingHandler, dashboardHandler *adaptor.DashboardHandler) {
	// ==================== ADMIN ROUTES ====================
	// The gate has already required an admin role for /api/admin
	r.Route("/api/admin", func(r chi.Router) {
		// GET /api/admin/bookings?status&search&startDate&endDate&limit&offset
		r.Get("/bookings", bookingHandler.ListBookings)

		// GET /api/admin/bookings/{reference}
		r.Get("/bookings/{reference}", bookingHandler.GetBooking)

		// GET /api/admin/dashboard?timeRange=day|week|month|year
		r.Get("/dashboard", dashboardHandler.GetDashboard)
	})
}
