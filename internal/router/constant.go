package router

import "agent-orchestrator/internal/model"

// DefaultKeywords is the routing table used in production. Lists must stay disjoint.
var DefaultKeywords = KeywordTable{
	model.DomainBooking: {
		"booking", "book", "reserve", "reservation",
		"cancel", "cancellation", "my bookings",
		"booking status", "booking #", "booking id",
		"cost estimate", "how much", "price for booking",
		"confirm", "pending", "completed",
	},
	model.DomainSitter: {
		"find", "search", "looking for", "need",
		"sitter", "pet sitter", "caregiver",
		"available", "availability", "recommend",
		"profile", "review", "rating", "services",
		"sitter #", "sitter id", "tell me about",
	},
}
