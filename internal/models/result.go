package models

// ExecResult is what a mutating statement reports back.
type ExecResult struct {
	ID      int64 `json:"id"`
	Changes int64 `json:"changes"`
}
