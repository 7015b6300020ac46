package wire

import (
	"theater-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReservation(r chi.Router, reservationHandler *adaptor.ReservationHandler) {
	r.Route("/api/theater", func(r chi.Router) {
		// GET /api/theater - name, rows, seats per row, accessible rows
		r.Get("/", reservationHandler.GetTheater)

		// GET /api/theater/seats - seat map (?format=text for plain text)
		r.Get("/seats", reservationHandler.GetSeatMap)
	})

	// POST /api/reservations - reserve a block of seats
	r.Post("/api/reservations", reservationHandler.ReserveSeats)
}
