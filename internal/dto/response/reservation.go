package response

import "fmt"

type Reason string

const (
	ReasonNone              Reason = ""
	ReasonInvalidCount      Reason = "invalid count"
	ReasonExceedsCapacity   Reason = "exceeds single-row capacity"
	ReasonNoSuitableRow     Reason = "no suitable row"
	ReasonInsufficientSeats Reason = "insufficient seats"
)

// Outcome is the result of one allocation attempt: a placement when Reason is
// ReasonNone, a rejection otherwise.
type Outcome struct {
	ReservationID string   `json:"reservation_id,omitempty"`
	Theater       string   `json:"theater"`
	Row           int      `json:"row,omitempty"`
	Count         int      `json:"count"`
	Name          string   `json:"name"`
	Seats         []string `json:"seats,omitempty"`
	SeatsPerRow   int      `json:"seats_per_row"`
	Reason        Reason   `json:"reason,omitempty"`
}

func (o Outcome) Success() bool {
	return o.Reason == ReasonNone
}

// Message renders the user-facing line for the outcome.
func (o Outcome) Message() string {
	switch o.Reason {
	case ReasonNone:
		return fmt.Sprintf("I've reserved %d seats for you at the %s in row %d, %s.", o.Count, o.Theater, o.Row, o.Name)
	case ReasonInvalidCount:
		return "Invalid number of seats."
	case ReasonExceedsCapacity:
		return fmt.Sprintf("Sorry, we can't reserve more than %d seats in a single row.", o.SeatsPerRow)
	default:
		return MessageNoSeatsTogether
	}
}

const MessageNoSeatsTogether = "Sorry, we don't have that many seats together for you."

// TheaterInfo describes the theater layout for help output.
type TheaterInfo struct {
	Name           string `json:"name"`
	TotalRows      int    `json:"total_rows"`
	SeatsPerRow    int    `json:"seats_per_row"`
	AccessibleRows []int  `json:"accessible_rows"`
}

type SeatMapResponse struct {
	Theater string   `json:"theater"`
	Rows    []string `json:"rows"`
	Text    string   `json:"text"`
}
