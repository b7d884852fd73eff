package dto

// Result shapes mirror the document store's own acknowledgements; the web
// client was built against them.

type InsertResult struct {
	InsertedID string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type RoleResponse struct {
	Role string `json:"role"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
