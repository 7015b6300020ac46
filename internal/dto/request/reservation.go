package request

// ReserveSeatsRequest is the structured request fed into the allocation core
// by the console loop and the HTTP handler alike.
type ReserveSeatsRequest struct {
	// Count is checked by the allocator so that 0 and negatives surface as a
	// rejection outcome rather than a validation failure.
	Count      int    `json:"count"`
	Name       string `json:"name" validate:"required,max=64"`
	Accessible bool   `json:"accessible"`
}
