package models

// Client represents a customer record from the upstream API
type Client struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Streetplace  string `json:"streetplace,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Number       string `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	CNPJ         string `json:"cnpj,omitempty"`
	CityID       string `json:"fkCityId,omitempty"`
}

// City is reference data used for client addresses
type City struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state,omitempty"`
}

// User represents a dashboard user account
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}
