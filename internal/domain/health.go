package domain

// TableStatus reports one table's health in the flat error envelope the API
// uses everywhere.
type TableStatus struct {
	Error    bool   `json:"error"`
	ErrorMsg string `json:"errorMsg"`
}
